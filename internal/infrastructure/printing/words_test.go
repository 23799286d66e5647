package printing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIntegerInWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "um"},
		{15, "quinze"},
		{21, "vinte e um"},
		{100, "cem"},
		{101, "cento e um"},
		{199, "cento e noventa e nove"},
		{200, "duzentos"},
		{1000, "mil"},
		{1001, "mil e um"},
		{1500, "mil e quinhentos"},
		{1234, "mil duzentos e trinta e quatro"},
		{2000, "dois mil"},
		{100000, "cem mil"},
		{1_000_000, "um milhão"},
		{1_100_000, "um milhão e cem mil"},
		{1_200_000, "um milhão e duzentos mil"},
		{1_000_050, "um milhão e cinquenta"},
		{1_234_567, "um milhão duzentos e trinta e quatro mil quinhentos e sessenta e sete"},
		{2_000_000, "dois milhões"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, IntegerInWords(tt.n))
		})
	}
}

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "zero reais"},
		{"one real singular", 1, "um real"},
		{"one hundred", 100, "cem reais"},
		{"real and centavo singular", 1.01, "um real e um centavo"},
		{"plural everything", 2.50, "dois reais e cinquenta centavos"},
		{"cents only", 0.75, "setenta e cinco centavos"},
		{"one cent only", 0.01, "um centavo"},
		{"thousands", 1500, "mil e quinhentos reais"},
		{"sign ignored", -249.9, "duzentos e quarenta e nove reais e noventa centavos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AmountInWords(decimal.NewFromFloat(tt.amount)))
		})
	}
}

func TestAmountInWords_Million(t *testing.T) {
	got := AmountInWords(decimal.NewFromInt(1_000_000))
	assert.True(t, strings.HasPrefix(got, "um milhão"), got)
	assert.Equal(t, "um milhão de reais", got)

	assert.Equal(t, "um milhão e duzentos mil reais", AmountInWords(decimal.NewFromInt(1_200_000)))
	assert.Equal(t, "um milhão e cem mil reais", AmountInWords(decimal.NewFromInt(1_100_000)))
}
