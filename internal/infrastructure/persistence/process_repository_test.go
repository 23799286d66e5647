package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/brnsuite/backend/internal/domain/shared"
	"github.com/brnsuite/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	db, err := NewDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func repositoryFixture(t *testing.T) *procurement.Process {
	t.Helper()
	supplierID := uuid.New()
	p, err := procurement.NewProcess(procurement.Transaction{
		ID:            uuid.New(),
		Description:   "Gêneros alimentícios",
		Value:         decimal.NewFromFloat(-90.00),
		Date:          time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		SupplierID:    &supplierID,
		SupplierName:  "Mercado Central LTDA",
		SupplierTaxID: "12345678000190",
	})
	require.NoError(t, err)
	require.NoError(t, p.AddLineItem("Arroz", "kg", decimal.NewFromInt(10), decimal.NewFromFloat(5.00)))
	require.NoError(t, p.AddLineItem("Feijão", "kg", decimal.NewFromInt(5), decimal.NewFromFloat(8.00)))
	require.NoError(t, p.SetCompetitorSupplier(0, uuid.New(), "Distribuidora Norte", "98765432000110"))
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(5.20)))
	require.NoError(t, p.SetCompetitorPrice(0, 1, decimal.NewFromFloat(8.30)))
	return p
}

func TestGormProcessRepository_SaveAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProcessRepository(db.DB)
	ctx := context.Background()

	p := repositoryFixture(t)
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, loaded.ID)
	assert.Equal(t, p.Transaction.ID, loaded.Transaction.ID)
	assert.Equal(t, "Gêneros alimentícios", loaded.Transaction.Description)
	assert.Equal(t, procurement.ProcessStatusInProgress, loaded.Status)

	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Arroz", loaded.Items[0].Description)
	assert.Equal(t, "Feijão", loaded.Items[1].Description)
	assert.Equal(t, "5.00", loaded.Items[0].WinningUnitPrice.StringFixed(2))

	require.Len(t, loaded.Competitors, 2)
	assert.Equal(t, "Distribuidora Norte", loaded.Competitors[0].SupplierName)
	require.Len(t, loaded.Competitors[0].Lines, 2)
	assert.Equal(t, "5.20", loaded.Competitors[0].Lines[0].UnitPrice.StringFixed(2))
	assert.True(t, loaded.Competitors[1].Lines[0].UnitPrice.IsZero())

	require.Len(t, loaded.Checklist, 5)
}

func TestGormProcessRepository_SaveReplacesChildren(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProcessRepository(db.DB)
	ctx := context.Background()

	p := repositoryFixture(t)
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, p.RemoveLineItem(0))
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)

	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Feijão", loaded.Items[0].Description)
	for _, comp := range loaded.Competitors {
		assert.Len(t, comp.Lines, 1)
	}
}

func TestGormProcessRepository_FindByTransaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProcessRepository(db.DB)
	ctx := context.Background()

	p := repositoryFixture(t)
	require.NoError(t, repo.Save(ctx, p))

	loaded, err := repo.FindByTransaction(ctx, p.Transaction.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, loaded.ID)

	_, err = repo.FindByTransaction(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormProcessRepository_FindAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProcessRepository(db.DB)
	ctx := context.Background()

	first := repositoryFixture(t)
	require.NoError(t, repo.Save(ctx, first))

	second := repositoryFixture(t)
	require.NoError(t, second.SetCompetitorSupplier(1, uuid.New(), "Comercial Sul", ""))
	require.NoError(t, second.Complete())
	require.NoError(t, repo.Save(ctx, second))

	all, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed := procurement.ProcessStatusCompleted
	done, err := repo.FindAll(ctx, &completed)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, second.ID, done[0].ID)
}

func TestGormProcessRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormProcessRepository(db.DB)
	ctx := context.Background()

	p := repositoryFixture(t)
	require.NoError(t, repo.Save(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.FindByID(ctx, p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
