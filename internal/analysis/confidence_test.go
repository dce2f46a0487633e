package analysis

import "testing"

func TestExtractConfidence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"colon form", "The answer is 42. Confidence: 85%", 85},
		{"colon no space", "Confidence:90%", 90},
		{"percent confident", "I am 75% confident in this answer", 75},
		{"percent confidence", "roughly 60% confidence here", 60},
		{"level form", "My confidence level of 95 reflects strong evidence", 95},
		{"is form", "confidence is 70", 70},
		{"nothing stated", "The answer is 42 and nothing else.", DefaultConfidence},
		{"empty", "", DefaultConfidence},
		{"over 100 ignored", "confidence: 250%", DefaultConfidence},
		{"zero is valid", "confidence: 0%", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractConfidence(tt.text); got != tt.want {
				t.Errorf("ExtractConfidence(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
