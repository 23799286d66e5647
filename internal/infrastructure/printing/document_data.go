package printing

import (
	"time"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/shopspring/decimal"
)

// DocumentProposal is one supplier column in the printed comparison sheet.
type DocumentProposal struct {
	SupplierName  string          `json:"supplier_name"`
	SupplierTaxID string          `json:"supplier_tax_id"`
	IsWinner      bool            `json:"is_winner"`
	Total         decimal.Decimal `json:"total"`
	TotalText     string          `json:"total_text"`
}

// DocumentItem is one row of the printed comparison sheet.
type DocumentItem struct {
	Index        int               `json:"index"`
	Description  string            `json:"description"`
	Unit         string            `json:"unit"`
	Quantity     decimal.Decimal   `json:"quantity"`
	UnitPrices   []decimal.Decimal `json:"unit_prices"`
	BestProposal int               `json:"best_proposal"`
	BestPrice    decimal.Decimal   `json:"best_price"`
}

// DocumentData is the finished snapshot handed to document assembly. All
// derived facts are computed here once so templates only format, never
// calculate.
type DocumentData struct {
	TransactionDescription string `json:"transaction_description"`
	SupplierName           string `json:"supplier_name"`
	SupplierTaxID          string `json:"supplier_tax_id"`
	InvoiceNumber          string `json:"invoice_number"`

	PaymentDate       time.Time `json:"payment_date"`
	DocumentDate      time.Time `json:"document_date"`
	PriceResearchDate time.Time `json:"price_research_date"`
	MeetingTime       string    `json:"meeting_time"`

	DocumentDateText      string `json:"document_date_text"`
	PriceResearchDateText string `json:"price_research_date_text"`

	Proposals []DocumentProposal `json:"proposals"`
	Items     []DocumentItem     `json:"items"`

	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	NetTotal      decimal.Decimal `json:"net_total"`
	NetTotalText  string          `json:"net_total_text"`
	NetTotalWords string          `json:"net_total_words"`

	Checklist []procurement.ChecklistEntry `json:"checklist"`
}

// Printed comparison sheets carry the winner plus two competitor columns;
// extra reference proposals stay in the data store but not on paper.
const maxDocumentProposals = 3

// BuildDocumentData assembles the printable snapshot for a process. The
// process should already have passed validation; this function formats, it
// does not re-check invariants.
func BuildDocumentData(p *procurement.Process) DocumentData {
	c := procurement.Consolidate(p)

	proposals := c.Proposals
	if len(proposals) > maxDocumentProposals {
		proposals = proposals[:maxDocumentProposals]
	}

	data := DocumentData{
		TransactionDescription: p.Transaction.Description,
		SupplierName:           p.Transaction.SupplierName,
		SupplierTaxID:          FormatTaxID(p.Transaction.SupplierTaxID),
		InvoiceNumber:          p.Transaction.InvoiceNumber,

		PaymentDate:       p.Transaction.Date,
		DocumentDate:      DocumentDate(p.Transaction.Date),
		PriceResearchDate: PriceResearchDate(p.Transaction.Date),
		MeetingTime:       MeetingTime(p.Transaction.Date),

		Subtotal: p.Subtotal(),
		Discount: p.Discount,
		NetTotal: p.NetTotal(),

		Checklist: p.Checklist,
	}
	data.DocumentDateText = FormatLongDate(data.DocumentDate)
	data.PriceResearchDateText = FormatLongDate(data.PriceResearchDate)
	data.NetTotalText = FormatMoney(data.NetTotal)
	data.NetTotalWords = AmountInWords(data.NetTotal)

	data.Proposals = make([]DocumentProposal, len(proposals))
	for i, prop := range proposals {
		data.Proposals[i] = DocumentProposal{
			SupplierName:  prop.SupplierName,
			SupplierTaxID: FormatTaxID(prop.SupplierTaxID),
			IsWinner:      prop.IsWinner,
			Total:         prop.Total,
			TotalText:     FormatMoney(prop.Total),
		}
	}

	data.Items = make([]DocumentItem, len(c.Rows))
	for i, row := range c.Rows {
		prices := row.UnitPrices
		if len(prices) > maxDocumentProposals {
			prices = prices[:maxDocumentProposals]
		}
		data.Items[i] = DocumentItem{
			Index:        row.Index,
			Description:  row.Description,
			Unit:         row.Unit,
			Quantity:     row.Quantity,
			UnitPrices:   prices,
			BestProposal: row.BestProposal,
			BestPrice:    row.BestPrice,
		}
	}
	return data
}
