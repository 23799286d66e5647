package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app "github.com/brnsuite/backend/internal/application/procurement"
	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/brnsuite/backend/internal/infrastructure/printing"
)

func setupDocumentRouter(t *testing.T) (*gin.Engine, *memoryProcessRepository) {
	t.Helper()
	repo := newMemoryProcessRepository()
	handler := NewDocumentHandler(app.NewDocumentService(repo))

	engine := gin.New()
	api := engine.Group("/api/v1")
	handler.RegisterRoutes(api)
	return engine, repo
}

func documentFixture(t *testing.T) *procurement.Process {
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
	require.NoError(t, p.SetCompetitorSupplier(1, uuid.New(), "Comercial Sul", ""))
	return p
}

func TestDocumentHandler_GetDocumentData(t *testing.T) {
	engine, repo := setupDocumentRouter(t)

	p := documentFixture(t)
	require.NoError(t, repo.Save(context.Background(), p))

	w := performJSON(t, engine, http.MethodGet,
		"/api/v1/processes/"+p.ID.String()+"/document-data", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Success bool                  `json:"success"`
		Data    printing.DocumentData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "noventa reais", env.Data.NetTotalWords)
	assert.Equal(t, "Mercado Central LTDA", env.Data.Proposals[0].SupplierName)
	assert.NotEmpty(t, env.Data.DocumentDate)
}

func TestDocumentHandler_GetDocumentData_BlockedByMismatch(t *testing.T) {
	engine, repo := setupDocumentRouter(t)

	p := documentFixture(t)
	require.NoError(t, p.SetDiscount(decimal.NewFromInt(10)))
	require.NoError(t, repo.Save(context.Background(), p))

	w := performJSON(t, engine, http.MethodGet,
		"/api/v1/processes/"+p.ID.String()+"/document-data", nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeProcess(t, w)
	assert.Equal(t, "ERR_VALUE_MISMATCH", env.Error.Code)
}

func TestDocumentHandler_GetDocumentData_NotFound(t *testing.T) {
	engine, _ := setupDocumentRouter(t)

	w := performJSON(t, engine, http.MethodGet,
		"/api/v1/processes/"+uuid.NewString()+"/document-data", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
