package procurement

import (
	"context"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/brnsuite/backend/internal/infrastructure/printing"
	"github.com/google/uuid"
)

// DocumentService assembles the data snapshots consumed by document printing
type DocumentService struct {
	processRepo procurement.ProcessRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(processRepo procurement.ProcessRepository) *DocumentService {
	return &DocumentService{processRepo: processRepo}
}

// GetDocumentData builds the printable snapshot for a process. The process
// must pass every save-time invariant first: legal documents are only
// generated from arithmetically honest records.
func (s *DocumentService) GetDocumentData(ctx context.Context, id uuid.UUID) (*printing.DocumentData, error) {
	process, err := s.processRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := process.Validate(); err != nil {
		return nil, err
	}

	data := printing.BuildDocumentData(process)
	return &data, nil
}
