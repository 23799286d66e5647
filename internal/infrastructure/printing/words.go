package printing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	wordUnits = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	wordTeens = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	wordTens  = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	wordCents = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// groupInWords spells out 0..999. "cem" only for the exact hundred; any
// remainder turns it into "cento e ...".
func groupInWords(n int) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "cem"
	}

	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, wordCents[h])
	}
	r := n % 100
	switch {
	case r == 0:
	case r < 10:
		parts = append(parts, wordUnits[r])
	case r < 20:
		parts = append(parts, wordTeens[r-10])
	default:
		tens := wordTens[r/10]
		if u := r % 10; u > 0 {
			tens += " e " + wordUnits[u]
		}
		parts = append(parts, tens)
	}
	return strings.Join(parts, " e ")
}

// IntegerInWords spells out a non-negative integer in Portuguese, lowercase.
func IntegerInWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	scales := []struct {
		value    int64
		singular string
		plural   string
	}{
		{1_000_000_000, "bilhão", "bilhões"},
		{1_000_000, "milhão", "milhões"},
		{1_000, "mil", "mil"},
	}

	var b strings.Builder
	for _, s := range scales {
		q := n / s.value
		if q == 0 {
			continue
		}
		n %= s.value

		if s.value == 1_000 && q == 1 {
			// "mil", never "um mil"
			b.WriteString("mil")
		} else if q > 1 {
			b.WriteString(groupInWords(int(q)) + " " + s.plural)
		} else {
			b.WriteString(groupInWords(int(q)) + " " + s.singular)
		}
		if n == 0 {
			return b.String()
		}

		// "e" links a scale group to its remainder only when the remainder
		// reads as a unit: below one hundred, or a round hundred
		// ("mil e quinhentos", "um milhão e duzentos mil"); otherwise the
		// groups follow plainly ("mil duzentos e trinta e quatro")
		if n < 100 || n%100 == 0 {
			b.WriteString(" e ")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString(groupInWords(int(n)))
	return b.String()
}

// AmountInWords spells out a monetary amount in Portuguese for legal
// documents: "mil duzentos e trinta e quatro reais e cinquenta e seis
// centavos". The sign is ignored; documents always state magnitudes.
func AmountInWords(amount decimal.Decimal) string {
	rounded := amount.Abs().Round(2)
	reais := rounded.IntPart()
	centavos := rounded.Sub(decimal.NewFromInt(reais)).Mul(decimal.NewFromInt(100)).IntPart()

	if reais == 0 && centavos == 0 {
		return "zero reais"
	}

	var parts []string
	if reais > 0 {
		currency := "reais"
		if reais == 1 {
			currency = "real"
		} else if reais%1_000_000 == 0 {
			// "um milhão de reais", "dois bilhões de reais"
			currency = "de reais"
		}
		parts = append(parts, IntegerInWords(reais)+" "+currency)
	}
	if centavos > 0 {
		coin := "centavos"
		if centavos == 1 {
			coin = "centavo"
		}
		parts = append(parts, IntegerInWords(centavos)+" "+coin)
	}
	return strings.Join(parts, " e ")
}
