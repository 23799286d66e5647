package dataimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocaleNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"comma decimal", "10,50", "10.50"},
		{"thousands and comma", "1.234,56", "1234.56"},
		{"currency prefix", "R$ 1.234,56", "1234.56"},
		{"plain dot decimal", "1234.56", "1234.56"},
		{"integer", "42", "42.00"},
		{"negative", "-15,90", "-15.90"},
		{"whitespace", "  99,90  ", "99.90"},
		{"empty", "", "0.00"},
		{"garbage", "abc", "0.00"},
		{"currency only", "R$", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLocaleNumber(tt.input)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
