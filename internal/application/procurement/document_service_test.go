package procurement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDocumentService_GetDocumentData(t *testing.T) {
	mockRepo := new(MockProcessRepository)
	service := NewDocumentService(mockRepo)

	p := storedProcess(t)
	require.NoError(t, p.SetCompetitorSupplier(0, uuid.New(), "Distribuidora Norte", ""))
	require.NoError(t, p.SetCompetitorSupplier(1, uuid.New(), "Comercial Sul", ""))
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(10.20)))
	require.NoError(t, p.SetCompetitorPrice(1, 0, decimal.NewFromFloat(10.40)))
	mockRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

	data, err := service.GetDocumentData(context.Background(), p.ID)

	require.NoError(t, err)
	assert.Equal(t, "Gêneros alimentícios", data.TransactionDescription)
	assert.Equal(t, "cem reais", data.NetTotalWords)
	assert.Equal(t, "R$ 100,00", data.NetTotalText)
	assert.Len(t, data.Proposals, 3)
}

func TestDocumentService_GetDocumentData_InvalidProcess(t *testing.T) {
	mockRepo := new(MockProcessRepository)
	service := NewDocumentService(mockRepo)

	// no competitor suppliers: validation must block document generation
	p := storedProcess(t)
	mockRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

	_, err := service.GetDocumentData(context.Background(), p.ID)

	assert.Error(t, err)
}
