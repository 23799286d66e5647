package dataimport

import (
	"bytes"
	"encoding/xml"
	"io"
	"regexp"
	"strings"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/shopspring/decimal"
)

// InvoiceKind tells which fiscal document layout was recognized.
type InvoiceKind string

const (
	InvoiceKindProduct InvoiceKind = "NFE"  // NF-e, itemized product invoice
	InvoiceKindService InvoiceKind = "NFSE" // NFS-e, free-text service invoice
)

// InvoiceResult carries the items extracted from a fiscal XML document.
type InvoiceResult struct {
	Kind  InvoiceKind
	Items []procurement.ImportedItem
}

// Competitor price synthesis factors. Imported invoices carry only the price
// actually paid, so reference quotes are derived from it at fixed markups and
// flagged as synthetic for later review.
var (
	competitorFactorA = decimal.NewFromFloat(1.016)
	competitorFactorB = decimal.NewFromFloat(1.0185)
)

// SynthesizeCompetitorPrices derives the two reference quotes for a winning
// unit price, rounded to cents.
func SynthesizeCompetitorPrices(price decimal.Decimal) []decimal.Decimal {
	return []decimal.Decimal{
		price.Mul(competitorFactorA).Round(2),
		price.Mul(competitorFactorB).Round(2),
	}
}

// nfeProduct mirrors the prod element of an NF-e det entry. Field names
// follow the fiscal schema, not Go convention.
type nfeProduct struct {
	XProd  string `xml:"xProd"`
	QCom   string `xml:"qCom"`
	UCom   string `xml:"uCom"`
	VUnCom string `xml:"vUnCom"`
}

// serviceAmountPattern extracts "R$ 12,34: some description" style entries
// from NFS-e service descriptions.
var serviceAmountPattern = regexp.MustCompile(`(?i)R\$\s*([0-9.,]+)\s*[:\-]?\s*(.*)`)

// ParseInvoiceXML extracts line items from an NF-e or NFS-e XML document.
// NF-e documents are itemized and map directly; NFS-e documents carry a
// single free-text service description, optionally split into segments by
// "***" markers with embedded "R$ value: description" entries. Items with a
// recognized price get synthetic competitor quotes attached.
func ParseInvoiceXML(data []byte) (*InvoiceResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyFile
	}

	products, descServ, vServ, err := scanInvoice(data)
	if err != nil {
		return nil, err
	}

	if len(products) > 0 {
		return productInvoice(products), nil
	}
	if descServ != "" {
		return serviceInvoice(descServ, vServ), nil
	}
	return nil, ErrUnrecognizedDocument
}

// scanInvoice walks the token stream instead of unmarshalling a rigid
// document struct: det entries sit at different depths depending on whether
// the file is a bare NFe or a signed nfeProc envelope, and NFS-e layouts vary
// by municipality.
func scanInvoice(data []byte) (products []nfeProduct, descServ, vServ string, err error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, terr := decoder.Token()
		if terr == io.EOF {
			return products, descServ, vServ, nil
		}
		if terr != nil {
			return nil, "", "", ErrUnrecognizedDocument
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "prod":
			var p nfeProduct
			if derr := decoder.DecodeElement(&p, &start); derr == nil && p.XProd != "" {
				products = append(products, p)
			}
		case "xDescServ", "Discriminacao", "discriminacao":
			if text, terr := elementText(decoder, &start); terr == nil && descServ == "" {
				descServ = text
			}
		case "vServ", "ValorServicos":
			if text, terr := elementText(decoder, &start); terr == nil && vServ == "" {
				vServ = text
			}
		}
	}
}

func elementText(decoder *xml.Decoder, start *xml.StartElement) (string, error) {
	var text string
	if err := decoder.DecodeElement(&text, start); err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func productInvoice(products []nfeProduct) *InvoiceResult {
	result := &InvoiceResult{Kind: InvoiceKindProduct}
	for _, p := range products {
		item := procurement.ImportedItem{
			Description:      strings.TrimSpace(p.XProd),
			Quantity:         ParseLocaleNumber(p.QCom),
			Unit:             strings.TrimSpace(p.UCom),
			WinningUnitPrice: ParseLocaleNumber(p.VUnCom),
			Synthetic:        true,
		}
		if item.Unit == "" {
			item.Unit = "un"
		}
		if item.WinningUnitPrice.IsPositive() {
			item.CompetitorPrices = SynthesizeCompetitorPrices(item.WinningUnitPrice)
		}
		result.Items = append(result.Items, item)
	}
	return result
}

func serviceInvoice(description, serviceValue string) *InvoiceResult {
	result := &InvoiceResult{Kind: InvoiceKindService}

	segmented := strings.Contains(description, "***")
	segments := strings.Split(description, "***")
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		item := procurement.ImportedItem{
			Description: segment,
			Quantity:    decimal.NewFromInt(1),
			Unit:        "un",
			Synthetic:   true,
		}
		if m := serviceAmountPattern.FindStringSubmatch(segment); m != nil {
			item.WinningUnitPrice = ParseLocaleNumber(m[1])
			if desc := strings.TrimSpace(m[2]); desc != "" {
				item.Description = desc
			}
		}
		if item.WinningUnitPrice.IsPositive() {
			item.CompetitorPrices = SynthesizeCompetitorPrices(item.WinningUnitPrice)
		}
		result.Items = append(result.Items, item)
	}

	// An unsegmented note with no inline price is still one billable item
	// worth the note's total. Segmented notes keep unmatched entries at
	// zero for manual pricing.
	if !segmented && len(result.Items) == 1 && result.Items[0].WinningUnitPrice.IsZero() {
		result.Items[0].WinningUnitPrice = ParseLocaleNumber(serviceValue)
		if result.Items[0].WinningUnitPrice.IsPositive() {
			result.Items[0].CompetitorPrices = SynthesizeCompetitorPrices(result.Items[0].WinningUnitPrice)
		}
	}

	if len(result.Items) == 0 {
		result.Items = append(result.Items, procurement.ImportedItem{
			Description:      description,
			Quantity:         decimal.NewFromInt(1),
			Unit:             "un",
			WinningUnitPrice: ParseLocaleNumber(serviceValue),
			Synthetic:        true,
		})
	}
	return result
}
