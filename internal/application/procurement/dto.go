package procurement

import (
	"time"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Process DTOs ====================

// TransactionInput identifies the financial transaction a process reconciles
type TransactionInput struct {
	ID            uuid.UUID       `json:"id" binding:"required"`
	Description   string          `json:"description" binding:"required,min=1,max=500"`
	Value         decimal.Decimal `json:"value" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	SupplierID    *uuid.UUID      `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name" binding:"required,min=1,max=200"`
	SupplierTaxID string          `json:"supplier_tax_id" binding:"omitempty,taxid"`
	InvoiceNumber string          `json:"invoice_number"`
}

// LineItemInput is one line item in a create or update request
type LineItemInput struct {
	Description      string            `json:"description" binding:"required,min=1,max=500"`
	Quantity         decimal.Decimal   `json:"quantity" binding:"required"`
	Unit             string            `json:"unit"`
	WinningUnitPrice decimal.Decimal   `json:"winning_unit_price"`
	CompetitorPrices []decimal.Decimal `json:"competitor_prices"`
}

// CompetitorInput is one competing proposal's supplier identity
type CompetitorInput struct {
	SupplierID    *uuid.UUID `json:"supplier_id"`
	SupplierName  string     `json:"supplier_name"`
	SupplierTaxID string     `json:"supplier_tax_id"`
}

// CreateProcessRequest represents a request to open an accountability process
type CreateProcessRequest struct {
	Transaction TransactionInput `json:"transaction" binding:"required"`
	Items       []LineItemInput  `json:"items"`
}

// UpdateProcessRequest replaces a process's editable state wholesale. Items
// and competitors are full snapshots, matching how the editor works: the
// client always sends the complete current picture.
type UpdateProcessRequest struct {
	Discount    *decimal.Decimal             `json:"discount"`
	Items       []LineItemInput              `json:"items"`
	Competitors []CompetitorInput            `json:"competitors"`
	Checklist   []procurement.ChecklistEntry `json:"checklist"`
	Attachments []procurement.Attachment     `json:"attachments"`
}

// AddLineItemRequest appends one line item to a process
type AddLineItemRequest struct {
	Description      string          `json:"description" binding:"required,min=1,max=500"`
	Quantity         decimal.Decimal `json:"quantity" binding:"required"`
	Unit             string          `json:"unit"`
	WinningUnitPrice decimal.Decimal `json:"winning_unit_price"`
}

// EditLineItemRequest patches one line item; nil fields are left unchanged
type EditLineItemRequest struct {
	Description      *string          `json:"description"`
	Quantity         *decimal.Decimal `json:"quantity"`
	Unit             *string          `json:"unit"`
	WinningUnitPrice *decimal.Decimal `json:"winning_unit_price"`
}

// SetCompetitorPriceRequest sets one competitor's quote for one line item
type SetCompetitorPriceRequest struct {
	CompetitorIndex int             `json:"competitor_index" binding:"min=0"`
	ItemIndex       int             `json:"item_index" binding:"min=0"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// SetCompetitorSupplierRequest binds a supplier to a competitor slot
type SetCompetitorSupplierRequest struct {
	CompetitorIndex int       `json:"competitor_index" binding:"min=0"`
	SupplierID      uuid.UUID `json:"supplier_id" binding:"required"`
	SupplierName    string    `json:"supplier_name" binding:"required,min=1,max=200"`
	SupplierTaxID   string    `json:"supplier_tax_id" binding:"omitempty,taxid"`
}

// ImportTextRequest carries pasted or uploaded delimited text
type ImportTextRequest struct {
	Content string `json:"content" binding:"required"`
}

// ImportXMLRequest carries a fiscal XML document, base64 left to transport
type ImportXMLRequest struct {
	XML string `json:"xml" binding:"required"`
}

// ProcessListFilter represents filter options for the process list
type ProcessListFilter struct {
	Status *string `form:"status" binding:"omitempty,oneof=IN_PROGRESS COMPLETED"`
}

// ==================== Responses ====================

// ProposalLineResponse is one quoted line inside a proposal
type ProposalLineResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// ProposalResponse is one supplier's priced response
type ProposalResponse struct {
	SupplierID    *uuid.UUID             `json:"supplier_id"`
	SupplierName  string                 `json:"supplier_name"`
	SupplierTaxID string                 `json:"supplier_tax_id"`
	IsWinner      bool                   `json:"is_winner"`
	Total         decimal.Decimal        `json:"total"`
	Lines         []ProposalLineResponse `json:"lines"`
}

// LineItemResponse is one line item of a process
type LineItemResponse struct {
	Description      string          `json:"description"`
	Quantity         decimal.Decimal `json:"quantity"`
	Unit             string          `json:"unit"`
	WinningUnitPrice decimal.Decimal `json:"winning_unit_price"`
	Total            decimal.Decimal `json:"total"`
}

// ValueCheckResponse reports the value reconciliation outcome
type ValueCheckResponse struct {
	OK       bool             `json:"ok"`
	Expected decimal.Decimal  `json:"expected"`
	Actual   decimal.Decimal  `json:"actual"`
	Delta    *decimal.Decimal `json:"delta,omitempty"`
}

// ProcessResponse is the full process snapshot returned to clients
type ProcessResponse struct {
	ID            uuid.UUID                    `json:"id"`
	TransactionID uuid.UUID                    `json:"transaction_id"`
	Description   string                       `json:"description"`
	SupplierName  string                       `json:"supplier_name"`
	Status        string                       `json:"status"`
	Discount      decimal.Decimal              `json:"discount"`
	Subtotal      decimal.Decimal              `json:"subtotal"`
	NetTotal      decimal.Decimal              `json:"net_total"`
	ValueCheck    ValueCheckResponse           `json:"value_check"`
	Items         []LineItemResponse           `json:"items"`
	Proposals     []ProposalResponse           `json:"proposals"`
	Checklist     []procurement.ChecklistEntry `json:"checklist"`
	Attachments   []procurement.Attachment     `json:"attachments"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

// ProcessListItemResponse is the condensed row for process lists
type ProcessListItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Description   string          `json:"description"`
	SupplierName  string          `json:"supplier_name"`
	Status        string          `json:"status"`
	NetTotal      decimal.Decimal `json:"net_total"`
	ItemCount     int             `json:"item_count"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ImportResultResponse summarizes one import attempt
type ImportResultResponse struct {
	ImportedItems int             `json:"imported_items"`
	Kind          string          `json:"kind,omitempty"`
	Synthetic     bool            `json:"synthetic"`
	RowErrors     []string        `json:"row_errors,omitempty"`
	Process       ProcessResponse `json:"process"`
}

// ConsolidationRowResponse is one row of the price comparison table
type ConsolidationRowResponse struct {
	Index        int               `json:"index"`
	Description  string            `json:"description"`
	Unit         string            `json:"unit"`
	Quantity     decimal.Decimal   `json:"quantity"`
	UnitPrices   []decimal.Decimal `json:"unit_prices"`
	BestProposal int               `json:"best_proposal"`
	BestPrice    decimal.Decimal   `json:"best_price"`
}

// ConsolidationResponse is the full consolidation of a process
type ConsolidationResponse struct {
	Proposals   []ProposalSummaryResponse  `json:"proposals"`
	Rows        []ConsolidationRowResponse `json:"rows"`
	WinnerTotal decimal.Decimal            `json:"winner_total"`
	NetTotal    decimal.Decimal            `json:"net_total"`
}

// ProposalSummaryResponse is one proposal column header of the comparison table
type ProposalSummaryResponse struct {
	SupplierName  string          `json:"supplier_name"`
	SupplierTaxID string          `json:"supplier_tax_id"`
	IsWinner      bool            `json:"is_winner"`
	Total         decimal.Decimal `json:"total"`
	Efficiency    decimal.Decimal `json:"efficiency"`
}

// ==================== Mappers ====================

// ToProcessResponse converts a domain process to its response DTO
func ToProcessResponse(p *procurement.Process) ProcessResponse {
	resp := ProcessResponse{
		ID:            p.ID,
		TransactionID: p.Transaction.ID,
		Description:   p.Transaction.Description,
		SupplierName:  p.Transaction.SupplierName,
		Status:        p.Status.String(),
		Discount:      p.Discount,
		Subtotal:      p.Subtotal(),
		NetTotal:      p.NetTotal(),
		Checklist:     p.Checklist,
		Attachments:   p.Attachments,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}

	resp.ValueCheck = ValueCheckResponse{
		OK:       true,
		Expected: p.Transaction.AbsValue(),
		Actual:   p.NetTotal(),
	}
	if mismatch := p.ValidateValue(); mismatch != nil {
		delta := mismatch.Delta()
		resp.ValueCheck.OK = false
		resp.ValueCheck.Delta = &delta
	}

	for _, item := range p.Items {
		resp.Items = append(resp.Items, LineItemResponse{
			Description:      item.Description,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			WinningUnitPrice: item.WinningUnitPrice,
			Total:            item.Total(),
		})
	}
	for _, prop := range p.Proposals() {
		resp.Proposals = append(resp.Proposals, toProposalResponse(prop))
	}
	return resp
}

func toProposalResponse(prop procurement.Proposal) ProposalResponse {
	r := ProposalResponse{
		SupplierID:    prop.SupplierID,
		SupplierName:  prop.SupplierName,
		SupplierTaxID: prop.SupplierTaxID,
		IsWinner:      prop.IsWinner,
		Total:         prop.TotalValue(),
	}
	for _, line := range prop.Lines {
		r.Lines = append(r.Lines, ProposalLineResponse{
			Description: line.Description,
			Quantity:    line.Quantity,
			Unit:        line.Unit,
			UnitPrice:   line.UnitPrice,
		})
	}
	return r
}

// ToProcessListItemResponse converts a domain process to its list row DTO
func ToProcessListItemResponse(p *procurement.Process) ProcessListItemResponse {
	return ProcessListItemResponse{
		ID:            p.ID,
		TransactionID: p.Transaction.ID,
		Description:   p.Transaction.Description,
		SupplierName:  p.Transaction.SupplierName,
		Status:        p.Status.String(),
		NetTotal:      p.NetTotal(),
		ItemCount:     len(p.Items),
		UpdatedAt:     p.UpdatedAt,
	}
}

// ToConsolidationResponse converts a consolidation to its response DTO
func ToConsolidationResponse(c procurement.Consolidation) ConsolidationResponse {
	resp := ConsolidationResponse{
		WinnerTotal: c.WinnerTotal,
		NetTotal:    c.NetTotal,
	}
	for _, prop := range c.Proposals {
		resp.Proposals = append(resp.Proposals, ProposalSummaryResponse{
			SupplierName:  prop.SupplierName,
			SupplierTaxID: prop.SupplierTaxID,
			IsWinner:      prop.IsWinner,
			Total:         prop.Total,
			Efficiency:    procurement.EfficiencyRatio(c.WinnerTotal, prop.Total),
		})
	}
	for _, row := range c.Rows {
		resp.Rows = append(resp.Rows, ConsolidationRowResponse{
			Index:        row.Index,
			Description:  row.Description,
			Unit:         row.Unit,
			Quantity:     row.Quantity,
			UnitPrices:   row.UnitPrices,
			BestProposal: row.BestProposal,
			BestPrice:    row.BestPrice,
		})
	}
	return resp
}
