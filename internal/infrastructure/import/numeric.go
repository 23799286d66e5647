package dataimport

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocaleNumber converts a numeric string as found in Brazilian
// spreadsheets and invoices into a decimal. It tolerates a leading currency
// marker ("R$ 1.234,56"), thousands dots and a comma decimal separator, as
// well as plain dot-decimal input ("1234.56"). Anything unparsable yields
// zero so a single bad cell does not abort a whole import.
func ParseLocaleNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero
	}

	if strings.Contains(s, ",") {
		// pt-BR layout: dots are thousands separators, comma is the decimal
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
