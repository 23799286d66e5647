package printing

import (
	"testing"
	"time"

	"github.com/brnsuite/backend/internal/domain/procurement"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func documentFixture(t *testing.T) *procurement.Process {
	t.Helper()
	supplierID := uuid.New()
	p, err := procurement.NewProcess(procurement.Transaction{
		ID:            uuid.New(),
		Description:   "Material de limpeza",
		Value:         decimal.NewFromFloat(-90.00),
		Date:          time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
		SupplierID:    &supplierID,
		SupplierName:  "Mercado Central LTDA",
		SupplierTaxID: "12345678000190",
		InvoiceNumber: "000123",
	})
	require.NoError(t, err)

	require.NoError(t, p.AddLineItem("Detergente", "un", decimal.NewFromInt(10), decimal.NewFromFloat(5.00)))
	require.NoError(t, p.AddLineItem("Sabão em pó", "cx", decimal.NewFromInt(5), decimal.NewFromFloat(8.00)))
	require.NoError(t, p.SetCompetitorSupplier(0, uuid.New(), "Distribuidora Norte", "98765432000110"))
	require.NoError(t, p.SetCompetitorSupplier(1, uuid.New(), "Comercial Sul", ""))
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(5.20)))
	require.NoError(t, p.SetCompetitorPrice(0, 1, decimal.NewFromFloat(8.30)))
	require.NoError(t, p.SetCompetitorPrice(1, 0, decimal.NewFromFloat(5.10)))
	require.NoError(t, p.SetCompetitorPrice(1, 1, decimal.NewFromFloat(8.50)))
	return p
}

func TestBuildDocumentData(t *testing.T) {
	p := documentFixture(t)

	data := BuildDocumentData(p)

	assert.Equal(t, "Material de limpeza", data.TransactionDescription)
	assert.Equal(t, "12.345.678/0001-90", data.SupplierTaxID)
	assert.Equal(t, "000123", data.InvoiceNumber)

	// payment Wednesday 2024-06-12
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), data.DocumentDate)
	assert.Equal(t, time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC), data.PriceResearchDate)
	assert.Equal(t, "15:30", data.MeetingTime)
	assert.Equal(t, "10 de junho de 2024", data.DocumentDateText)

	assert.Equal(t, "90.00", data.NetTotal.StringFixed(2))
	assert.Equal(t, "R$ 90,00", data.NetTotalText)
	assert.Equal(t, "noventa reais", data.NetTotalWords)

	require.Len(t, data.Proposals, 3)
	assert.True(t, data.Proposals[0].IsWinner)
	assert.Equal(t, "98.765.432/0001-10", data.Proposals[1].SupplierTaxID)

	require.Len(t, data.Items, 2)
	assert.Equal(t, 0, data.Items[0].BestProposal)
	assert.Equal(t, "5.00", data.Items[0].BestPrice.StringFixed(2))
}

func TestBuildDocumentData_CapsProposals(t *testing.T) {
	p := documentFixture(t)
	p.AddCompetitor()
	require.NoError(t, p.SetCompetitorSupplier(2, uuid.New(), "Atacadão Oeste", ""))

	data := BuildDocumentData(p)

	assert.Len(t, data.Proposals, 3)
	for _, item := range data.Items {
		assert.LessOrEqual(t, len(item.UnitPrices), 3)
	}
}
