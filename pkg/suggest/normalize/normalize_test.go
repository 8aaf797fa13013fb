package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "accents stripped",
			input:    "Memória de Vídeo",
			expected: "memoria de video",
		},
		{
			name:     "punctuation removed",
			input:    "play-station: 5!",
			expected: "playstation 5",
		},
		{
			name:     "whitespace collapsed",
			input:    "  xbox \t series\n x ",
			expected: "xbox series x",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: "",
		},
		{
			name:     "cedilla and tilde",
			input:    "Promoção de Lançamento",
			expected: "promocao de lancamento",
		},
		{
			name:     "digits kept",
			input:    "FIFA 23",
			expected: "fifa 23",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"PlayStation 5", "côncavo & convexo", "", "ação!!!", "ジョイスティック"}
	for _, input := range inputs {
		once := Normalize(input)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("xbox series x")
	if len(got) != 3 || got[0] != "xbox" || got[2] != "x" {
		t.Errorf("Words() = %v; want [xbox series x]", got)
	}
}
