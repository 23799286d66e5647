package dataimport

import (
	"strings"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/shopspring/decimal"
)

// Column layout for delimited item files. Only description and quantity are
// mandatory; everything after them is optional and defaulted.
const (
	colDescription = 0
	colQuantity    = 1
	colUnit        = 2
	colUnitPrice   = 3
	colCompetitorA = 4
	colCompetitorB = 5
)

// DelimitedResult carries the parsed items plus per-row problems that did not
// abort the import.
type DelimitedResult struct {
	Items  []procurement.ImportedItem
	Errors *ErrorCollection
}

// ParseDelimited parses spreadsheet-style text pasted or uploaded by the
// user. The delimiter is detected per file: tab wins over semicolon, which
// wins over comma. A first line that looks like a header (mentions
// "descrição" or "quantidade") is skipped. Rows with fewer than two columns
// are reported and skipped; a file where nothing survives is an error.
func ParseDelimited(content string) (*DelimitedResult, error) {
	text := strings.TrimSpace(content)
	if text == "" {
		return nil, ErrEmptyFile
	}

	delimiter := detectDelimiter(text)
	lines := strings.Split(text, "\n")

	result := &DelimitedResult{Errors: NewErrorCollection(100)}
	for i, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i == 0 && isHeaderLine(line) {
			continue
		}

		fields := strings.Split(line, delimiter)
		if len(fields) < 2 {
			result.Errors.Add(NewRowError(i+1, "", ErrCodeImportMalformedRow,
				"expected at least description and quantity columns"))
			continue
		}

		description := strings.TrimSpace(fields[colDescription])
		if description == "" {
			result.Errors.Add(NewRowError(i+1, "description", ErrCodeImportMalformedRow,
				"description is empty"))
			continue
		}

		item := procurement.ImportedItem{
			Description:      description,
			Quantity:         ParseLocaleNumber(fields[colQuantity]),
			Unit:             "un",
			WinningUnitPrice: decimal.Zero,
		}
		if len(fields) > colUnit {
			if unit := strings.TrimSpace(fields[colUnit]); unit != "" {
				item.Unit = unit
			}
		}
		if len(fields) > colUnitPrice {
			item.WinningUnitPrice = ParseLocaleNumber(fields[colUnitPrice])
		}
		for _, ci := range []int{colCompetitorA, colCompetitorB} {
			if len(fields) > ci {
				item.CompetitorPrices = append(item.CompetitorPrices, ParseLocaleNumber(fields[ci]))
			}
		}

		result.Items = append(result.Items, item)
	}

	if len(result.Items) == 0 {
		return nil, ErrNoItems
	}
	return result, nil
}

// detectDelimiter inspects the first non-empty line
func detectDelimiter(text string) string {
	firstLine := text
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine = text[:idx]
	}
	switch {
	case strings.Contains(firstLine, "\t"):
		return "\t"
	case strings.Contains(firstLine, ";"):
		return ";"
	default:
		return ","
	}
}

func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "descrição") ||
		strings.Contains(lower, "descricao") ||
		strings.Contains(lower, "quantidade")
}
