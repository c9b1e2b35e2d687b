package llm

import "regexp"

// Price is a model's list price in USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost returns the USD cost of a token count.
func (p Price) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*p.Input + float64(outputTokens)*p.Output) / 1e6
}

// prices covers the default model of every backend.
var prices = map[string]Price{
	"gemini-2.5-flash":        {Input: 0.30, Output: 2.50},
	"gpt-4o-mini":             {Input: 0.15, Output: 0.60},
	"claude-haiku-4-5":        {Input: 1.00, Output: 5.00},
	"google/gemini-2.5-flash": {Input: 0.30, Output: 2.50},
}

// snapshotSuffix matches the date providers append to model IDs in
// responses, e.g. "-20251001" or "-2024-07-18".
var snapshotSuffix = regexp.MustCompile(`-(\d{8}|\d{4}-\d{2}-\d{2})$`)

// LookupPrice returns the price of a model. Dated snapshots are priced
// as their base model.
func LookupPrice(model string) (Price, bool) {
	if p, ok := prices[model]; ok {
		return p, true
	}
	p, ok := prices[snapshotSuffix.ReplaceAllString(model, "")]
	return p, ok
}
