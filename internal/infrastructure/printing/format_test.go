package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"simple", 10.5, "R$ 10,50"},
		{"thousands", 1234.56, "R$ 1.234,56"},
		{"millions", 1234567.89, "R$ 1.234.567,89"},
		{"zero", 0, "R$ 0,00"},
		{"negative", -1500, "-R$ 1.500,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.NewFromFloat(tt.amount)))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1.000,00", FormatNumber(decimal.NewFromInt(1000)))
	assert.Equal(t, "-0,50", FormatNumber(decimal.NewFromFloat(-0.5)))
}

func TestFormatTaxID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"cnpj", "12345678000190", "12.345.678/0001-90"},
		{"cnpj already formatted", "12.345.678/0001-90", "12.345.678/0001-90"},
		{"cpf", "12345678901", "123.456.789-01"},
		{"unknown length", "1234", "1234"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTaxID(tt.input))
		})
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12/06/2024", FormatDate(d))
	assert.Equal(t, "12 de junho de 2024", FormatLongDate(d))
}
