package printing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatMoney renders an amount in pt-BR currency notation: "R$ 1.234,56".
// Negative amounts keep the sign in front of the symbol.
func FormatMoney(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + formatGrouped(amount.Abs())
}

// FormatNumber renders a plain pt-BR decimal: "1.234,56".
func FormatNumber(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + formatGrouped(amount.Abs())
}

func formatGrouped(abs decimal.Decimal) string {
	fixed := abs.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(digit)
	}
	return sb.String() + "," + fracPart
}

// FormatTaxID formats a CNPJ (14 digits) or CPF (11 digits). Anything else
// is returned as given.
func FormatTaxID(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch len(digits) {
	case 14:
		return fmt.Sprintf("%s.%s.%s/%s-%s",
			digits[0:2], digits[2:5], digits[5:8], digits[8:12], digits[12:14])
	case 11:
		return fmt.Sprintf("%s.%s.%s-%s",
			digits[0:3], digits[3:6], digits[6:9], digits[9:11])
	default:
		return raw
	}
}

// FormatDate renders the short pt-BR date: "12/06/2024".
func FormatDate(d time.Time) string {
	return d.Format("02/01/2006")
}

// FormatLongDate renders the prose date used in document signatures:
// "12 de junho de 2024".
func FormatLongDate(d time.Time) string {
	return fmt.Sprintf("%d de %s de %d", d.Day(), monthNames[d.Month()-1], d.Year())
}
