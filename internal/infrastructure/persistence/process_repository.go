package persistence

import (
	"context"
	"errors"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/brnsuite/backend/internal/domain/shared"
	"github.com/brnsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProcessRepository implements ProcessRepository using GORM
type GormProcessRepository struct {
	db *gorm.DB
}

// NewGormProcessRepository creates a new GormProcessRepository
func NewGormProcessRepository(db *gorm.DB) *GormProcessRepository {
	return &GormProcessRepository{db: db}
}

func (r *GormProcessRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Proposals", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("Proposals.Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") })
}

// FindByID finds a process by its ID
func (r *GormProcessRepository) FindByID(ctx context.Context, id uuid.UUID) (*procurement.Process, error) {
	var model models.ProcessModel
	if err := r.preloaded(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTransaction finds the process bound to a transaction
func (r *GormProcessRepository) FindByTransaction(ctx context.Context, transactionID uuid.UUID) (*procurement.Process, error) {
	var model models.ProcessModel
	if err := r.preloaded(ctx).First(&model, "transaction_id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all processes, optionally filtered by status, newest first
func (r *GormProcessRepository) FindAll(ctx context.Context, status *procurement.ProcessStatus) ([]procurement.Process, error) {
	query := r.preloaded(ctx).Order("updated_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var processModels []models.ProcessModel
	if err := query.Find(&processModels).Error; err != nil {
		return nil, err
	}

	processes := make([]procurement.Process, len(processModels))
	for i := range processModels {
		processes[i] = *processModels[i].ToDomain()
	}
	return processes, nil
}

// Save persists a process and replaces its line items and proposals
// wholesale. The delete and reinsert run inside one transaction: a process is
// never observable with a partial child set, and a failed save leaves the
// previous snapshot intact.
func (r *GormProcessRepository) Save(ctx context.Context, process *procurement.Process) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.ProcessModelFromDomain(process)

		if err := tx.Omit("Items", "Proposals").Save(model).Error; err != nil {
			return err
		}
		if err := deleteChildren(tx, process.ID); err != nil {
			return err
		}

		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		for i := range model.Proposals {
			lines := model.Proposals[i].Lines
			model.Proposals[i].Lines = nil
			if err := tx.Create(&model.Proposals[i]).Error; err != nil {
				return err
			}
			if len(lines) > 0 {
				if err := tx.Create(&lines).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return shared.NewDomainError(shared.ErrProcessInconsistent.Code,
			"Saving the process failed and was rolled back: "+err.Error())
	}
	return nil
}

// Delete removes a process and all its children
func (r *GormProcessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChildren(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.ProcessModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func deleteChildren(tx *gorm.DB, processID uuid.UUID) error {
	if err := tx.Where("process_id = ?", processID).
		Delete(&models.ProcessItemModel{}).Error; err != nil {
		return err
	}
	if err := tx.Where("proposal_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.ProposalModel{}).
			Select("id").
			Where("process_id = ?", processID)).
		Delete(&models.ProposalLineModel{}).Error; err != nil {
		return err
	}
	return tx.Where("process_id = ?", processID).
		Delete(&models.ProposalModel{}).Error
}
