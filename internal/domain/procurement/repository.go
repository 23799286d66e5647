package procurement

import (
	"context"

	"github.com/google/uuid"
)

// ProcessRepository persists accountability processes. Save replaces the
// process's line items and proposals wholesale inside a single transaction;
// implementations must never leave a process with a partial child set.
type ProcessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Process, error)
	FindByTransaction(ctx context.Context, transactionID uuid.UUID) (*Process, error)
	FindAll(ctx context.Context, status *ProcessStatus) ([]Process, error)
	Save(ctx context.Context, process *Process) error
	Delete(ctx context.Context, id uuid.UUID) error
}
