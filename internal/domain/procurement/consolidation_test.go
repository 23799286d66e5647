package procurement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consolidationFixture(t *testing.T) *Process {
	t.Helper()
	p := createTestProcess(t)
	addTestItem(t, p, "Arroz", 10, 5.00)
	addTestItem(t, p, "Feijão", 5, 8.00)
	bindTestSuppliers(t, p)
	return p
}

func TestConsolidate_WinnerFirst(t *testing.T) {
	p := consolidationFixture(t)

	c := Consolidate(p)

	require.Len(t, c.Proposals, 3)
	assert.True(t, c.Proposals[0].IsWinner)
	assert.Equal(t, "Mercado Central LTDA", c.Proposals[0].SupplierName)
	assert.Equal(t, "Distribuidora Norte", c.Proposals[1].SupplierName)
	assert.Equal(t, "Comercial Sul", c.Proposals[2].SupplierName)
}

func TestConsolidate_CheapestPerItem(t *testing.T) {
	p := consolidationFixture(t)
	// competitor 0 undercuts on item 0, competitor 1 on item 1
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(4.50)))
	require.NoError(t, p.SetCompetitorPrice(0, 1, decimal.NewFromFloat(9.00)))
	require.NoError(t, p.SetCompetitorPrice(1, 0, decimal.NewFromFloat(5.20)))
	require.NoError(t, p.SetCompetitorPrice(1, 1, decimal.NewFromFloat(7.50)))

	c := Consolidate(p)

	require.Len(t, c.Rows, 2)
	assert.Equal(t, 1, c.Rows[0].BestProposal)
	assert.Equal(t, "4.50", c.Rows[0].BestPrice.StringFixed(2))
	assert.Equal(t, 2, c.Rows[1].BestProposal)
	assert.Equal(t, "7.50", c.Rows[1].BestPrice.StringFixed(2))
}

func TestConsolidate_TieGoesToFirstListed(t *testing.T) {
	p := consolidationFixture(t)
	// competitor 0 matches the winner's price exactly
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(5.00)))
	require.NoError(t, p.SetCompetitorPrice(1, 0, decimal.NewFromFloat(5.00)))

	c := Consolidate(p)

	assert.Equal(t, 0, c.Rows[0].BestProposal)
	assert.Equal(t, "5.00", c.Rows[0].BestPrice.StringFixed(2))
}

func TestConsolidate_ZeroPricesNeverWin(t *testing.T) {
	p := consolidationFixture(t)
	// competitors never quoted item 1; the winner's price stands
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(4.00)))

	c := Consolidate(p)

	assert.Equal(t, 1, c.Rows[0].BestProposal)
	assert.Equal(t, 0, c.Rows[1].BestProposal)
	assert.Equal(t, "8.00", c.Rows[1].BestPrice.StringFixed(2))
}

func TestConsolidate_ItemWinnerIsGlobalMinimum(t *testing.T) {
	p := consolidationFixture(t)
	require.NoError(t, p.SetCompetitorPrice(0, 0, decimal.NewFromFloat(5.10)))
	require.NoError(t, p.SetCompetitorPrice(0, 1, decimal.NewFromFloat(7.90)))
	require.NoError(t, p.SetCompetitorPrice(1, 0, decimal.NewFromFloat(5.30)))
	require.NoError(t, p.SetCompetitorPrice(1, 1, decimal.NewFromFloat(8.40)))

	c := Consolidate(p)

	for _, row := range c.Rows {
		require.NotEqual(t, -1, row.BestProposal)
		for pi, price := range row.UnitPrices {
			if !price.IsPositive() {
				continue
			}
			assert.True(t, row.BestPrice.LessThanOrEqual(price),
				"row %d: best price %s exceeds proposal %d price %s",
				row.Index, row.BestPrice, pi, price)
		}
	}
}

func TestConsolidate_Totals(t *testing.T) {
	p := consolidationFixture(t)
	require.NoError(t, p.SetDiscount(decimal.NewFromFloat(10.00)))

	c := Consolidate(p)

	// winner: 10*5.00 + 5*8.00 = 90.00
	assert.Equal(t, "90.00", c.WinnerTotal.StringFixed(2))
	assert.Equal(t, "80.00", c.NetTotal.StringFixed(2))
}

func TestEfficiencyRatio(t *testing.T) {
	tests := []struct {
		name       string
		winner     float64
		competitor float64
		want       string
	}{
		{"cheaper winner", 90, 100, "90.00"},
		{"equal", 100, 100, "100.00"},
		{"zero competitor", 90, 0, "0.00"},
		{"rounding", 100, 3, "3333.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EfficiencyRatio(decimal.NewFromFloat(tt.winner), decimal.NewFromFloat(tt.competitor))
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
