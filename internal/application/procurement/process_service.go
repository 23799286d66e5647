package procurement

import (
	"context"

	"github.com/brnsuite/backend/internal/domain/procurement"
	dataimport "github.com/brnsuite/backend/internal/infrastructure/import"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcessService handles accountability process business operations
type ProcessService struct {
	processRepo procurement.ProcessRepository
}

// NewProcessService creates a new ProcessService
func NewProcessService(processRepo procurement.ProcessRepository) *ProcessService {
	return &ProcessService{processRepo: processRepo}
}

// Create opens a new accountability process for a transaction
func (s *ProcessService) Create(ctx context.Context, req CreateProcessRequest) (*ProcessResponse, error) {
	process, err := procurement.NewProcess(procurement.Transaction{
		ID:            req.Transaction.ID,
		Description:   req.Transaction.Description,
		Value:         req.Transaction.Value,
		Date:          req.Transaction.Date,
		SupplierID:    req.Transaction.SupplierID,
		SupplierName:  req.Transaction.SupplierName,
		SupplierTaxID: req.Transaction.SupplierTaxID,
		InvoiceNumber: req.Transaction.InvoiceNumber,
	})
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if err := applyItemInput(process, item); err != nil {
			return nil, err
		}
	}

	if err := s.processRepo.Save(ctx, process); err != nil {
		return nil, err
	}

	response := ToProcessResponse(process)
	return &response, nil
}

// GetByID retrieves a process by ID
func (s *ProcessService) GetByID(ctx context.Context, id uuid.UUID) (*ProcessResponse, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProcessResponse(process)
	return &response, nil
}

// GetByTransaction retrieves the process bound to a transaction
func (s *ProcessService) GetByTransaction(ctx context.Context, transactionID uuid.UUID) (*ProcessResponse, error) {
	process, err := s.processRepo.FindByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	response := ToProcessResponse(process)
	return &response, nil
}

// List retrieves processes, optionally filtered by status
func (s *ProcessService) List(ctx context.Context, filter ProcessListFilter) ([]ProcessListItemResponse, error) {
	var status *procurement.ProcessStatus
	if filter.Status != nil {
		st := procurement.ProcessStatus(*filter.Status)
		status = &st
	}

	processes, err := s.processRepo.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	items := make([]ProcessListItemResponse, 0, len(processes))
	for i := range processes {
		items = append(items, ToProcessListItemResponse(&processes[i]))
	}
	return items, nil
}

// Update replaces a process's editable state from a full snapshot. The domain
// operations rebuild the line and proposal structure so the alignment
// invariant is re-checked on the way in, rather than trusting the client.
// The snapshot save carries the full save gate: supplier coverage and value
// reconciliation must hold before anything is persisted. Drafts in the middle
// of editing go through the incremental item and competitor endpoints instead.
func (s *ProcessService) Update(ctx context.Context, id uuid.UUID, req UpdateProcessRequest) (*ProcessResponse, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Items != nil {
		rebuilt, err := procurement.NewProcess(process.Transaction)
		if err != nil {
			return nil, err
		}
		rebuilt.ID = process.ID
		rebuilt.Status = process.Status
		rebuilt.CreatedAt = process.CreatedAt
		rebuilt.Checklist = process.Checklist
		rebuilt.Attachments = process.Attachments
		rebuilt.Discount = process.Discount

		for len(rebuilt.Competitors) < len(req.Competitors) {
			rebuilt.AddCompetitor()
		}
		for _, item := range req.Items {
			if err := applyItemInput(rebuilt, item); err != nil {
				return nil, err
			}
		}
		for ci, comp := range req.Competitors {
			if comp.SupplierID == nil || comp.SupplierName == "" {
				continue
			}
			if err := rebuilt.SetCompetitorSupplier(ci, *comp.SupplierID, comp.SupplierName, comp.SupplierTaxID); err != nil {
				return nil, err
			}
		}
		process = rebuilt
	}

	if req.Discount != nil {
		if err := process.SetDiscount(*req.Discount); err != nil {
			return nil, err
		}
	}
	if req.Checklist != nil {
		process.SetChecklist(req.Checklist)
	}
	if req.Attachments != nil {
		process.SetAttachments(req.Attachments)
	}

	if err := process.Validate(); err != nil {
		return nil, err
	}

	if err := s.processRepo.Save(ctx, process); err != nil {
		return nil, err
	}

	response := ToProcessResponse(process)
	return &response, nil
}

// AddLineItem appends a line item to a process
func (s *ProcessService) AddLineItem(ctx context.Context, id uuid.UUID, req AddLineItemRequest) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		unit := req.Unit
		if unit == "" {
			unit = "un"
		}
		return p.AddLineItem(req.Description, unit, req.Quantity, req.WinningUnitPrice)
	})
}

// RemoveLineItem removes the line item at index from a process
func (s *ProcessService) RemoveLineItem(ctx context.Context, id uuid.UUID, index int) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.RemoveLineItem(index)
	})
}

// EditLineItem patches the line item at index
func (s *ProcessService) EditLineItem(ctx context.Context, id uuid.UUID, index int, req EditLineItemRequest) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.EditLineItem(index, procurement.LineItemPatch{
			Description:      req.Description,
			Quantity:         req.Quantity,
			Unit:             req.Unit,
			WinningUnitPrice: req.WinningUnitPrice,
		})
	})
}

// SetCompetitorPrice sets one competitor's quote for one line item
func (s *ProcessService) SetCompetitorPrice(ctx context.Context, id uuid.UUID, req SetCompetitorPriceRequest) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.SetCompetitorPrice(req.CompetitorIndex, req.ItemIndex, req.UnitPrice)
	})
}

// SetCompetitorSupplier binds a supplier identity to a competitor slot
func (s *ProcessService) SetCompetitorSupplier(ctx context.Context, id uuid.UUID, req SetCompetitorSupplierRequest) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.SetCompetitorSupplier(req.CompetitorIndex, req.SupplierID, req.SupplierName, req.SupplierTaxID)
	})
}

// Finalize validates every invariant and marks the process completed
func (s *ProcessService) Finalize(ctx context.Context, id uuid.UUID) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.Complete()
	})
}

// Reopen puts a completed process back in progress
func (s *ProcessService) Reopen(ctx context.Context, id uuid.UUID) (*ProcessResponse, error) {
	return s.mutate(ctx, id, func(p *procurement.Process) error {
		return p.Reopen()
	})
}

// Delete removes a process and its children
func (s *ProcessService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.processRepo.Delete(ctx, id)
}

// GetConsolidation computes the price comparison table for a process
func (s *ProcessService) GetConsolidation(ctx context.Context, id uuid.UUID) (*ConsolidationResponse, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToConsolidationResponse(procurement.Consolidate(process))
	return &response, nil
}

// ImportDelimited parses delimited text and merges the items into a process
func (s *ProcessService) ImportDelimited(ctx context.Context, id uuid.UUID, req ImportTextRequest) (*ImportResultResponse, error) {
	parsed, err := dataimport.ParseDelimited(req.Content)
	if err != nil {
		return nil, err
	}

	process, err := s.mergeImported(ctx, id, parsed.Items)
	if err != nil {
		return nil, err
	}

	result := &ImportResultResponse{
		ImportedItems: len(parsed.Items),
		Process:       ToProcessResponse(process),
	}
	for _, rowErr := range parsed.Errors.Errors() {
		result.RowErrors = append(result.RowErrors, rowErr.Error())
	}
	return result, nil
}

// ImportInvoiceXML parses a fiscal XML document and merges the items into a
// process. Competitor prices are synthetic markups, flagged as such.
func (s *ProcessService) ImportInvoiceXML(ctx context.Context, id uuid.UUID, req ImportXMLRequest) (*ImportResultResponse, error) {
	parsed, err := dataimport.ParseInvoiceXML([]byte(req.XML))
	if err != nil {
		return nil, err
	}

	process, err := s.mergeImported(ctx, id, parsed.Items)
	if err != nil {
		return nil, err
	}

	return &ImportResultResponse{
		ImportedItems: len(parsed.Items),
		Kind:          string(parsed.Kind),
		Synthetic:     true,
		Process:       ToProcessResponse(process),
	}, nil
}

func (s *ProcessService) mergeImported(ctx context.Context, id uuid.UUID, items []procurement.ImportedItem) (*procurement.Process, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := process.BulkMerge(items); err != nil {
		return nil, err
	}
	if err := s.processRepo.Save(ctx, process); err != nil {
		return nil, err
	}
	return process, nil
}

// mutate loads, applies and saves in one place so every edit path persists
// the same way
func (s *ProcessService) mutate(ctx context.Context, id uuid.UUID, fn func(*procurement.Process) error) (*ProcessResponse, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(process); err != nil {
		return nil, err
	}
	if err := s.processRepo.Save(ctx, process); err != nil {
		return nil, err
	}
	response := ToProcessResponse(process)
	return &response, nil
}

func applyItemInput(p *procurement.Process, item LineItemInput) error {
	unit := item.Unit
	if unit == "" {
		unit = "un"
	}
	qty := item.Quantity
	if qty.LessThanOrEqual(decimal.Zero) {
		qty = decimal.NewFromInt(1)
	}
	if err := p.AddLineItem(item.Description, unit, qty, item.WinningUnitPrice); err != nil {
		return err
	}
	index := len(p.Items) - 1
	for ci, price := range item.CompetitorPrices {
		if ci >= len(p.Competitors) {
			break
		}
		if err := p.SetCompetitorPrice(ci, index, price); err != nil {
			return err
		}
	}
	return nil
}
