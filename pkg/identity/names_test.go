package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldTurkish(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"YILMAZ", "yilmaz"},
		{"yılmaz", "yilmaz"},
		{"İstanbul", "istanbul"},
		{"Gül", "gul"},
		{"Çağla Şen", "cagla sen"},
		{"Özgür", "ozgur"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, foldTurkish(tt.input), "folding %q", tt.input)
	}
}

func TestCompareTurkishNames(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		stored   string
		match    bool
	}{
		{"full name exact", "Ahmet Yılmaz", "Ahmet Yılmaz", true},
		{"case and diacritics folded", "Ahmet Yılmaz", "AHMET YILMAZ", true},
		{"dotless i folding", "ahmet yilmaz", "Ahmet Yılmaz", true},
		{"first name only against full stored", "Ahmet", "Ahmet Yılmaz", false},
		{"single stored token", "Ahmet", "Ahmet", true},
		{"token order irrelevant", "Yılmaz Ahmet", "Ahmet Yılmaz", true},
		{"partial token containment", "Ahmet Yılmazoğlu", "Ahmet Yılmaz", true},
		{"wrong surname", "Ahmet Demir", "Ahmet Yılmaz", false},
		{"empty provided", "", "Ahmet Yılmaz", false},
		{"empty stored", "Ahmet", "", false},
		{"same token cannot match twice", "Ahmet Ahmet", "Ahmet Yılmaz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, CompareTurkishNames(tt.provided, tt.stored))
		})
	}
}
