// Package format renders a ping summary through a user supplied template.
package format

import (
	"strings"

	"pingparser/internal/models"
)

// DefaultTemplate lists every field, comma separated
const DefaultTemplate = "%h,%s,%r,%m,%a,%M,%l"

// Token is a two character placeholder and the field it stands for
type Token struct {
	Text        string
	Description string
	value       func(models.PingSummary) string
}

var tokens = []Token{
	{"%h", "host name or IP address", func(s models.PingSummary) string { return s.Host }},
	{"%s", "packets sent", func(s models.PingSummary) string { return s.Sent }},
	{"%r", "packets received", func(s models.PingSummary) string { return s.Received }},
	{"%m", "minimum ping in milliseconds", func(s models.PingSummary) string { return s.MinPing }},
	{"%a", "average ping in milliseconds", func(s models.PingSummary) string { return s.AvgPing }},
	{"%M", "maximum ping in milliseconds", func(s models.PingSummary) string { return s.MaxPing }},
	{"%l", "packet loss", func(s models.PingSummary) string { return s.PacketLoss }},
}

// Tokens returns the recognized placeholders in their default order
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// Format substitutes every recognized token in template with the matching
// field of summary. Substituted text is never scanned again, and unknown
// sequences such as "%x" are left as they are.
func Format(summary models.PingSummary, template string) string {
	pairs := make([]string, 0, 2*len(tokens))
	for _, t := range tokens {
		pairs = append(pairs, t.Text, t.value(summary))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
