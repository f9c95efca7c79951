// Package parser extracts summary statistics from the text printed by the
// system ping command.
package parser

import (
	"regexp"

	"pingparser/internal/models"
)

// Each pattern is searched independently over the whole output, so the order
// and wording of the surrounding lines may vary between ping implementations.
var (
	hostPattern    = regexp.MustCompile(`PING ([a-zA-Z0-9.\-]+) \(`)
	packetsPattern = regexp.MustCompile(`(\d+) packets tra(?:ns)?mitted, (\d+) packets received, ([-\d]+)% packet loss`)
	latencyPattern = regexp.MustCompile(`(\d+.\d+)/(\d+.\d+)/(\d+.\d+)`)
)

// Parser implements the models.Parser interface
type Parser struct{}

// New creates a new Parser
func New() *Parser {
	return &Parser{}
}

// Parse extracts a summary from output
func (p *Parser) Parse(output string) (models.PingSummary, error) {
	return Parse(output)
}

// Parse extracts host, packet counts, loss and the round-trip triplet from
// ping output. Host and packet statistics are required; a missing round-trip
// line yields models.NaN for all three latency fields.
func Parse(output string) (models.PingSummary, error) {
	host, err := findGroups(output, hostPattern, "host")
	if err != nil {
		return models.PingSummary{}, err
	}

	packets, err := findGroups(output, packetsPattern, "packet statistics")
	if err != nil {
		return models.PingSummary{}, err
	}

	summary := models.PingSummary{
		Host:       host[0],
		Sent:       packets[0],
		Received:   packets[1],
		PacketLoss: packets[2],
		MinPing:    models.NaN,
		AvgPing:    models.NaN,
		MaxPing:    models.NaN,
	}

	if rtt := latencyPattern.FindStringSubmatch(output); rtt != nil {
		summary.MinPing, summary.AvgPing, summary.MaxPing = rtt[1], rtt[2], rtt[3]
	}

	return summary, nil
}

// findGroups returns the capture groups of the first match of re
func findGroups(output string, re *regexp.Regexp, field string) ([]string, error) {
	matches := re.FindStringSubmatch(output)
	if matches == nil {
		return nil, &MalformedInputError{Field: field, Input: output}
	}
	return matches[1:], nil
}
