package procurement

import (
	"fmt"
	"time"

	"github.com/brnsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessStatus represents the status of an accountability process
type ProcessStatus string

const (
	ProcessStatusInProgress ProcessStatus = "IN_PROGRESS"
	ProcessStatusCompleted  ProcessStatus = "COMPLETED"
)

// IsValid checks if the status is a valid ProcessStatus
func (s ProcessStatus) IsValid() bool {
	switch s {
	case ProcessStatusInProgress, ProcessStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of ProcessStatus
func (s ProcessStatus) String() string {
	return string(s)
}

// Transaction is the recorded financial entry an accountability process is tied
// to. It is an immutable external fact: the process must reconcile against it,
// never change it. Value keeps the sign it was recorded with (expenses are
// negative); reconciliation always compares against the absolute value.
type Transaction struct {
	ID            uuid.UUID
	Description   string
	Value         decimal.Decimal
	Date          time.Time
	SupplierID    *uuid.UUID
	SupplierName  string
	SupplierTaxID string
	InvoiceNumber string
}

// AbsValue returns the transaction amount as a non-negative decimal
func (t Transaction) AbsValue() decimal.Decimal {
	return t.Value.Abs()
}

// LineItem is one purchased item. Its description is the reconciliation key
// shared with every proposal's line at the same position.
type LineItem struct {
	Description      string
	Quantity         decimal.Decimal
	Unit             string
	WinningUnitPrice decimal.Decimal
}

// Total returns quantity times winning unit price
func (i LineItem) Total() decimal.Decimal {
	return i.Quantity.Mul(i.WinningUnitPrice)
}

// ProposalLine is one competitor's quoted price for a line item. Description,
// quantity and unit always mirror the process line item at the same index;
// only the unit price belongs to the proposal.
type ProposalLine struct {
	Description string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
}

// Total returns quantity times quoted unit price
func (l ProposalLine) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// Proposal is one supplier's priced response to the price research
type Proposal struct {
	SupplierID    *uuid.UUID
	SupplierName  string
	SupplierTaxID string
	IsWinner      bool
	Lines         []ProposalLine
}

// TotalValue returns the sum of all line totals
func (p Proposal) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, line := range p.Lines {
		total = total.Add(line.Total())
	}
	return total
}

// HasSupplier returns true when the proposal carries a resolved supplier identity
func (p Proposal) HasSupplier() bool {
	return p.SupplierID != nil && p.SupplierName != ""
}

// ChecklistEntry is one named boolean flag on the process checklist
type ChecklistEntry struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// DefaultChecklist returns the ordered checklist every new process starts with
func DefaultChecklist() []ChecklistEntry {
	return []ChecklistEntry{
		{ID: "quotations", Label: "3 Orçamentos anexados"},
		{ID: "winner_price", Label: "Vencedor validado com menor preço"},
		{ID: "invoice", Label: "Nota Fiscal anexa"},
		{ID: "certificates", Label: "Certidões negativas válidas"},
		{ID: "minutes", Label: "Ata de Assembleia assinada"},
	}
}

// Attachment is a document attached to the process, with its audit state
type Attachment struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	URL       string            `json:"url"`
	Category  string            `json:"category"`
	Checks    map[string]string `json:"checks,omitempty"`
	AuditDone bool              `json:"audit_done"`
}

// Process is the procurement accountability aggregate. It owns the line item
// list and keeps every competitor proposal's line list isomorphic to it:
// same length, same order, same descriptions, quantities and units. Only unit
// prices differ between proposals.
//
// The winning proposal is not stored: it is derived from the transaction's
// supplier and the line items' winning unit prices, so the invariant that the
// winner's prices equal the recorded winning prices holds by construction.
type Process struct {
	ID          uuid.UUID
	Transaction Transaction
	Status      ProcessStatus
	Discount    decimal.Decimal
	Checklist   []ChecklistEntry
	Attachments []Attachment
	Items       []LineItem
	Competitors []Proposal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MinCompetitors is the number of non-winning proposals a process must carry
// before it can be finalized.
const MinCompetitors = 2

// ValueTolerance is the absolute tolerance, in currency units, used when
// reconciling the item subtotal against the recorded transaction amount.
var ValueTolerance = decimal.NewFromFloat(0.01)

// NewProcess creates a new accountability process for a transaction, with the
// default checklist and two empty competitor slots.
func NewProcess(tx Transaction) (*Process, error) {
	if tx.ID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRANSACTION", "Transaction ID cannot be empty")
	}

	now := time.Now()
	p := &Process{
		ID:          uuid.New(),
		Transaction: tx,
		Status:      ProcessStatusInProgress,
		Discount:    decimal.Zero,
		Checklist:   DefaultChecklist(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for i := 0; i < MinCompetitors; i++ {
		p.Competitors = append(p.Competitors, Proposal{})
	}
	return p, nil
}

// SetDiscount sets the discount applied to the winning total
func (p *Process) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	p.Discount = discount
	p.touch()
	return nil
}

// AddLineItem appends a line item and mirrors a zero-priced line into every
// competitor proposal, keeping the line lists aligned.
func (p *Process) AddLineItem(description, unit string, quantity, winningUnitPrice decimal.Decimal) error {
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if winningUnitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Winning unit price cannot be negative")
	}

	p.Items = append(p.Items, LineItem{
		Description:      description,
		Quantity:         quantity,
		Unit:             unit,
		WinningUnitPrice: winningUnitPrice,
	})
	for ci := range p.Competitors {
		p.Competitors[ci].Lines = append(p.Competitors[ci].Lines, ProposalLine{
			Description: description,
			Quantity:    quantity,
			Unit:        unit,
			UnitPrice:   decimal.Zero,
		})
	}
	p.touch()
	return p.checkAlignment()
}

// RemoveLineItem removes the line item at index and the proposal line at the
// same index from every competitor. A process must keep at least one item.
func (p *Process) RemoveLineItem(index int) error {
	if index < 0 || index >= len(p.Items) {
		return shared.NewDomainError("INDEX_OUT_OF_RANGE", fmt.Sprintf("No line item at index %d", index))
	}
	if len(p.Items) <= 1 {
		return shared.NewDomainError("LAST_LINE_ITEM", "A process must keep at least one line item")
	}

	p.Items = append(p.Items[:index], p.Items[index+1:]...)
	for ci := range p.Competitors {
		lines := p.Competitors[ci].Lines
		p.Competitors[ci].Lines = append(lines[:index], lines[index+1:]...)
	}
	p.touch()
	return p.checkAlignment()
}

// LineItemPatch carries the fields of a line item edit. Nil fields are left
// unchanged.
type LineItemPatch struct {
	Description      *string
	Quantity         *decimal.Decimal
	Unit             *string
	WinningUnitPrice *decimal.Decimal
}

// EditLineItem applies a patch to the line item at index. Description,
// quantity and unit changes propagate to every competitor's line at the same
// index so the match key never desynchronizes; the winning unit price never
// propagates.
func (p *Process) EditLineItem(index int, patch LineItemPatch) error {
	if index < 0 || index >= len(p.Items) {
		return shared.NewDomainError("INDEX_OUT_OF_RANGE", fmt.Sprintf("No line item at index %d", index))
	}

	item := &p.Items[index]
	if patch.Description != nil {
		if *patch.Description == "" {
			return shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
		}
		item.Description = *patch.Description
	}
	if patch.Quantity != nil {
		if patch.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		item.Quantity = *patch.Quantity
	}
	if patch.Unit != nil {
		item.Unit = *patch.Unit
	}
	if patch.WinningUnitPrice != nil {
		if patch.WinningUnitPrice.IsNegative() {
			return shared.NewDomainError("INVALID_PRICE", "Winning unit price cannot be negative")
		}
		item.WinningUnitPrice = *patch.WinningUnitPrice
	}

	for ci := range p.Competitors {
		line := &p.Competitors[ci].Lines[index]
		line.Description = item.Description
		line.Quantity = item.Quantity
		line.Unit = item.Unit
	}
	p.touch()
	return p.checkAlignment()
}

// ImportedItem is one row produced by an importer: a line item plus the
// competitor unit prices that came with it, aligned to the process's
// competitor slots. Synthetic marks prices that were derived by markup rather
// than quoted, so callers can present them as editable estimates.
type ImportedItem struct {
	Description      string
	Quantity         decimal.Decimal
	Unit             string
	WinningUnitPrice decimal.Decimal
	CompetitorPrices []decimal.Decimal
	Synthetic        bool
}

// BulkMerge appends every imported item and, per competitor, either consumes
// the supplied price for that slot or defaults to zero when none was supplied.
func (p *Process) BulkMerge(items []ImportedItem) error {
	if len(items) == 0 {
		return shared.NewDomainError("EMPTY_IMPORT", "Import produced no line items")
	}

	for _, imp := range items {
		if imp.Description == "" {
			return shared.NewDomainError("INVALID_DESCRIPTION", "Imported line item description cannot be empty")
		}
		qty := imp.Quantity
		if qty.LessThanOrEqual(decimal.Zero) {
			qty = decimal.NewFromInt(1)
		}
		p.Items = append(p.Items, LineItem{
			Description:      imp.Description,
			Quantity:         qty,
			Unit:             imp.Unit,
			WinningUnitPrice: imp.WinningUnitPrice,
		})
		for ci := range p.Competitors {
			price := decimal.Zero
			if ci < len(imp.CompetitorPrices) {
				price = imp.CompetitorPrices[ci]
			}
			p.Competitors[ci].Lines = append(p.Competitors[ci].Lines, ProposalLine{
				Description: imp.Description,
				Quantity:    qty,
				Unit:        imp.Unit,
				UnitPrice:   price,
			})
		}
	}
	p.touch()
	return p.checkAlignment()
}

// SetCompetitorPrice sets a competitor's quoted unit price for one line item
func (p *Process) SetCompetitorPrice(competitorIndex, itemIndex int, price decimal.Decimal) error {
	if competitorIndex < 0 || competitorIndex >= len(p.Competitors) {
		return shared.NewDomainError("INDEX_OUT_OF_RANGE", fmt.Sprintf("No competitor at index %d", competitorIndex))
	}
	if itemIndex < 0 || itemIndex >= len(p.Items) {
		return shared.NewDomainError("INDEX_OUT_OF_RANGE", fmt.Sprintf("No line item at index %d", itemIndex))
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	p.Competitors[competitorIndex].Lines[itemIndex].UnitPrice = price
	p.touch()
	return nil
}

// SetCompetitorSupplier binds a supplier identity to a competitor slot. The
// supplier must differ from the transaction's own supplier and from every
// other competitor's supplier.
func (p *Process) SetCompetitorSupplier(index int, supplierID uuid.UUID, name, taxID string) error {
	if index < 0 || index >= len(p.Competitors) {
		return shared.NewDomainError("INDEX_OUT_OF_RANGE", fmt.Sprintf("No competitor at index %d", index))
	}
	if name == "" {
		return shared.NewDomainError("INVALID_SUPPLIER", "Supplier name cannot be empty")
	}
	if p.Transaction.SupplierID != nil && *p.Transaction.SupplierID == supplierID {
		return shared.NewDomainError("SUPPLIER_IS_WINNER", "This supplier is already the winner of the process")
	}
	for ci, comp := range p.Competitors {
		if ci != index && comp.SupplierID != nil && *comp.SupplierID == supplierID {
			return shared.NewDomainError("DUPLICATE_SUPPLIER", "This supplier is already bound to another proposal")
		}
	}

	id := supplierID
	p.Competitors[index].SupplierID = &id
	p.Competitors[index].SupplierName = name
	p.Competitors[index].SupplierTaxID = taxID
	p.touch()
	return nil
}

// AddCompetitor appends an empty competitor slot with lines mirrored from the
// current item list.
func (p *Process) AddCompetitor() {
	comp := Proposal{}
	for _, item := range p.Items {
		comp.Lines = append(comp.Lines, ProposalLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   decimal.Zero,
		})
	}
	p.Competitors = append(p.Competitors, comp)
	p.touch()
}

// WinnerProposal derives the winning proposal from the transaction supplier
// and the line items' winning unit prices.
func (p *Process) WinnerProposal() Proposal {
	winner := Proposal{
		SupplierID:    p.Transaction.SupplierID,
		SupplierName:  p.Transaction.SupplierName,
		SupplierTaxID: p.Transaction.SupplierTaxID,
		IsWinner:      true,
	}
	for _, item := range p.Items {
		winner.Lines = append(winner.Lines, ProposalLine{
			Description: item.Description,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.WinningUnitPrice,
		})
	}
	return winner
}

// Proposals returns every proposal, winner first, competitors in input order
func (p *Process) Proposals() []Proposal {
	proposals := make([]Proposal, 0, len(p.Competitors)+1)
	proposals = append(proposals, p.WinnerProposal())
	proposals = append(proposals, p.Competitors...)
	return proposals
}

// Subtotal returns the sum of quantity times winning unit price over all items
func (p *Process) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Total())
	}
	return total
}

// NetTotal returns the subtotal minus the discount
func (p *Process) NetTotal() decimal.Decimal {
	return p.Subtotal().Sub(p.Discount)
}

// ValueMismatchError reports a failed value reconciliation with the figures
// involved, so callers can present an exact message.
type ValueMismatchError struct {
	Expected decimal.Decimal // absolute transaction value
	Actual   decimal.Decimal // item subtotal net of discount
}

// Error implements the error interface
func (e *ValueMismatchError) Error() string {
	return fmt.Sprintf("net item total %s does not match the recorded transaction value %s (delta %s)",
		e.Actual.StringFixed(2), e.Expected.StringFixed(2), e.Delta().StringFixed(2))
}

// Delta returns the absolute difference between expected and actual
func (e *ValueMismatchError) Delta() decimal.Decimal {
	return e.Expected.Sub(e.Actual).Abs()
}

// ValidateValue checks that the item subtotal net of discount matches the
// recorded transaction amount within ValueTolerance. This is the invariant
// that keeps the accountability record arithmetically honest; it must pass
// before the process is persisted or completed.
func (p *Process) ValidateValue() *ValueMismatchError {
	expected := p.Transaction.AbsValue()
	actual := p.NetTotal()
	if expected.Sub(actual).Abs().GreaterThan(ValueTolerance) {
		return &ValueMismatchError{Expected: expected, Actual: actual}
	}
	return nil
}

// ValidateProposals checks the proposal-side invariants: at least
// MinCompetitors competitors with a resolved supplier identity, all suppliers
// distinct and distinct from the transaction supplier.
func (p *Process) ValidateProposals() error {
	resolved := 0
	seen := make(map[uuid.UUID]bool)
	for _, comp := range p.Competitors {
		if !comp.HasSupplier() {
			continue
		}
		if p.Transaction.SupplierID != nil && *comp.SupplierID == *p.Transaction.SupplierID {
			return shared.NewDomainError("SUPPLIER_IS_WINNER", "A competing proposal cannot use the transaction's own supplier")
		}
		if seen[*comp.SupplierID] {
			return shared.NewDomainError("DUPLICATE_SUPPLIER", "Two proposals share the same supplier")
		}
		seen[*comp.SupplierID] = true
		resolved++
	}
	if resolved < MinCompetitors {
		return shared.NewDomainError("NOT_ENOUGH_PROPOSALS",
			fmt.Sprintf("At least %d competing proposals with a resolved supplier are required, got %d", MinCompetitors, resolved))
	}
	return nil
}

// Validate runs every save-time invariant: structural alignment, proposal
// coverage and value reconciliation.
func (p *Process) Validate() error {
	if len(p.Items) == 0 {
		return shared.NewDomainError("NO_LINE_ITEMS", "A process must have at least one line item")
	}
	if err := p.checkAlignment(); err != nil {
		return err
	}
	if err := p.ValidateProposals(); err != nil {
		return err
	}
	if err := p.ValidateValue(); err != nil {
		return err
	}
	return nil
}

// Complete marks the process as completed after all invariants pass
func (p *Process) Complete() error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.Status = ProcessStatusCompleted
	p.touch()
	return nil
}

// Reopen puts a completed process back in progress
func (p *Process) Reopen() error {
	if p.Status != ProcessStatusCompleted {
		return shared.ErrInvalidState
	}
	p.Status = ProcessStatusInProgress
	p.touch()
	return nil
}

// SetChecklist replaces the checklist
func (p *Process) SetChecklist(entries []ChecklistEntry) {
	p.Checklist = entries
	p.touch()
}

// SetAttachments replaces the attachment records
func (p *Process) SetAttachments(attachments []Attachment) {
	p.Attachments = attachments
	p.touch()
}

// checkAlignment verifies that every competitor's line list mirrors the item
// list: same length and, per index, the same description key. Structural
// edits always run it so a desynchronized snapshot can never escape the
// aggregate unnoticed.
func (p *Process) checkAlignment() error {
	for ci, comp := range p.Competitors {
		if len(comp.Lines) != len(p.Items) {
			return shared.NewDomainError("LINES_MISALIGNED",
				fmt.Sprintf("Competitor %d has %d lines, expected %d", ci+1, len(comp.Lines), len(p.Items)))
		}
		for i, line := range comp.Lines {
			if line.Description != p.Items[i].Description {
				return shared.NewDomainError("LINES_MISALIGNED",
					fmt.Sprintf("Competitor %d line %d keyed %q, expected %q", ci+1, i+1, line.Description, p.Items[i].Description))
			}
		}
	}
	return nil
}

func (p *Process) touch() {
	p.UpdatedAt = time.Now()
}
