package report

import (
	"errors"

	"pingparser/internal/models"
)

// HistoryLimit caps how many recorded summaries a chart covers
const HistoryLimit = 500

// ErrNotEnoughData is returned when fewer than two recorded summaries of a
// host carry a round-trip triplet
var ErrNotEnoughData = errors.New("not enough latency data to chart")

// Generator renders charts from the summary history
type Generator struct {
	history models.History
}

// NewGenerator creates a new report generator
func NewGenerator(history models.History) *Generator {
	return &Generator{history: history}
}
