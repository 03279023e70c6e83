package textnorm

import "testing"

func TestPrecompose(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "ASCII passthrough",
			input:    "/music/Artist/Album/01 Track.mp3",
			expected: "/music/Artist/Album/01 Track.mp3",
		},
		{
			name:     "Combining acute accent",
			input:    "Carlos Núñez", // Núñez decomposed
			expected: "Carlos Núñez",   // Núñez precomposed
		},
		{
			name:     "Already precomposed",
			input:    "Björk",
			expected: "Björk",
		},
		{
			name:     "Japanese dakuten",
			input:    "バッハ", // ハ + combining dakuten
			expected: "バッハ",       // バッハ
		},
		{
			name:     "Leading combining mark unchanged",
			input:    "́abc",
			expected: "́abc",
		},
		{
			name:     "Only a combining mark",
			input:    "́",
			expected: "́",
		},
		{
			name:     "Mark with no composition stays decomposed",
			input:    "q́", // no precomposed q-acute exists
			expected: "q́",
		},
		{
			name:     "Mixed path",
			input:    "/música/Sérgio Mendes.flac",
			expected: "/música/Sérgio Mendes.flac",
		},
		{
			name:     "Multiple marks on one base",
			input:    "é̂", // e + acute + circumflex
			expected: "é̂",  // é + circumflex (no further composition)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Precompose(tt.input)
			if got != tt.expected {
				t.Errorf("Precompose(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPrecomposeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"Carlos Núñez",
		"́leading mark",
		"q́",
		"é̂",
		"/música/mixed and plain.mp3",
	}

	for _, input := range inputs {
		once := Precompose(input)
		twice := Precompose(once)
		if once != twice {
			t.Errorf("Precompose not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestIsCombining(t *testing.T) {
	tests := []struct {
		r        rune
		expected bool
	}{
		{'a', false},
		{'/', false},
		{0x0301, true}, // combining acute
		{0x0303, true}, // combining tilde
		{0x3099, true}, // combining dakuten
		{0x00e9, false}, // precomposed é
	}

	for _, tt := range tests {
		if got := isCombining(tt.r); got != tt.expected {
			t.Errorf("isCombining(%U) = %v, want %v", tt.r, got, tt.expected)
		}
	}
}
