// Package ledger tracks per-session spend and enforces budget policy.
package ledger

import "strings"

// ModelPricing holds the cost per 1000 tokens of each kind, in USD.
type ModelPricing struct {
	InputPer1K  float64
	OutputPer1K float64
}

// defaultPricing is the conservative fallback for model identifiers the
// table doesn't know. Overestimating beats silently undercounting spend.
var defaultPricing = ModelPricing{InputPer1K: 0.015, OutputPer1K: 0.075}

// pricingTable maps model identifier prefixes to their published rates.
// Longest matching prefix wins.
var pricingTable = map[string]ModelPricing{
	"claude-opus-4":    {InputPer1K: 0.015, OutputPer1K: 0.075},
	"claude-sonnet-4":  {InputPer1K: 0.003, OutputPer1K: 0.015},
	"claude-3-5-haiku": {InputPer1K: 0.0008, OutputPer1K: 0.004},
	"gpt-4o-mini":      {InputPer1K: 0.00015, OutputPer1K: 0.0006},
	"gpt-4o":           {InputPer1K: 0.0025, OutputPer1K: 0.01},
	"gpt-4-turbo":      {InputPer1K: 0.01, OutputPer1K: 0.03},
	"o3":               {InputPer1K: 0.002, OutputPer1K: 0.008},
	"gemini-2.5-pro":   {InputPer1K: 0.00125, OutputPer1K: 0.01},
	"gemini-2.5-flash": {InputPer1K: 0.0003, OutputPer1K: 0.0025},
	"gemini-2.0-flash": {InputPer1K: 0.0001, OutputPer1K: 0.0004},
}

// Pricing returns the rate for a model identifier. Unknown identifiers
// get the conservative default rather than an error.
func Pricing(model string) ModelPricing {
	best := ""
	for prefix := range pricingTable {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return defaultPricing
	}
	return pricingTable[best]
}

// EstimateCost computes the USD cost of a call from token counts.
func EstimateCost(model string, tokensIn, tokensOut int) float64 {
	p := Pricing(model)
	return float64(tokensIn)/1000*p.InputPer1K + float64(tokensOut)/1000*p.OutputPer1K
}
