package models

// NaN is the value all three latency fields take when the output carries no
// round-trip summary, e.g. when every probe was lost.
const NaN = "NaN"

// PingSummary represents the statistics extracted from one ping session.
// Every field holds the text exactly as it appeared in the ping output.
type PingSummary struct {
	Host       string `json:"host"`
	Sent       string `json:"sent"`
	Received   string `json:"received"`
	PacketLoss string `json:"packet_loss"` // percentage, sign preserved
	MinPing    string `json:"min_ping"`    // milliseconds
	AvgPing    string `json:"avg_ping"`    // milliseconds
	MaxPing    string `json:"max_ping"`    // milliseconds
}

// HasLatency reports whether the round-trip triplet was found
func (s PingSummary) HasLatency() bool {
	return s.MinPing != NaN
}
