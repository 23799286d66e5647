package procurement

import (
	"github.com/shopspring/decimal"
)

// ProposalSummary is one proposal's identity and aggregate total inside a
// consolidation.
type ProposalSummary struct {
	SupplierName  string
	SupplierTaxID string
	IsWinner      bool
	Total         decimal.Decimal
}

// ItemPriceRow is the per-item price comparison across all proposals. Indexes
// into UnitPrices follow the proposal order of the consolidation (winner
// first, competitors in input order).
type ItemPriceRow struct {
	Index       int
	Description string
	Unit        string
	Quantity    decimal.Decimal
	UnitPrices  []decimal.Decimal

	// BestProposal is the index of the proposal quoting the lowest positive
	// price for this item, -1 when no proposal quoted one. Ties go to the
	// first listed proposal: the scan order is stable and deliberate, so the
	// designated winner prevails over a competitor matching its price.
	BestProposal int
	BestPrice    decimal.Decimal
}

// Consolidation holds the pricing facts derived from a process: the itemized
// cheapest-price table and the per-proposal totals. The business-designated
// winner is carried independently of the per-item cheapest computation, so
// documents can show "best price per item" alongside "who was actually paid".
type Consolidation struct {
	Proposals   []ProposalSummary
	Rows        []ItemPriceRow
	WinnerTotal decimal.Decimal
	NetTotal    decimal.Decimal // winner total minus discount
}

// Consolidate computes the consolidation for the process's current snapshot
func Consolidate(p *Process) Consolidation {
	proposals := p.Proposals()

	c := Consolidation{
		Proposals: make([]ProposalSummary, len(proposals)),
		Rows:      make([]ItemPriceRow, len(p.Items)),
	}
	for pi, prop := range proposals {
		c.Proposals[pi] = ProposalSummary{
			SupplierName:  prop.SupplierName,
			SupplierTaxID: prop.SupplierTaxID,
			IsWinner:      prop.IsWinner,
			Total:         prop.TotalValue(),
		}
	}

	for i, item := range p.Items {
		row := ItemPriceRow{
			Index:        i + 1,
			Description:  item.Description,
			Unit:         item.Unit,
			Quantity:     item.Quantity,
			UnitPrices:   make([]decimal.Decimal, len(proposals)),
			BestProposal: -1,
			BestPrice:    decimal.Zero,
		}
		for pi, prop := range proposals {
			price := prop.Lines[i].UnitPrice
			row.UnitPrices[pi] = price
			// Zero means "did not quote", not "free": it never wins.
			if !price.IsPositive() {
				continue
			}
			if row.BestProposal == -1 || price.LessThan(row.BestPrice) {
				row.BestProposal = pi
				row.BestPrice = price
			}
		}
		c.Rows[i] = row
	}

	c.WinnerTotal = c.Proposals[0].Total
	c.NetTotal = c.WinnerTotal.Sub(p.Discount)
	return c
}

// EfficiencyRatio returns winnerTotal over competitorTotal as a percentage,
// rounded to two places. A zero competitor total yields 0 rather than a
// division fault.
func EfficiencyRatio(winnerTotal, competitorTotal decimal.Decimal) decimal.Decimal {
	if competitorTotal.IsZero() {
		return decimal.Zero
	}
	return winnerTotal.Div(competitorTotal).Mul(decimal.NewFromInt(100)).Round(2)
}
