// Package report renders summaries of an already-loaded ledger. It is
// a pure consumer of the model: nothing here touches persistence.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/propledger/internal/models"
)

// csvHeader is the column layout of exported expense files.
var csvHeader = []string{"date", "category", "amount", "note"}

// WriteCSV exports the property's expenses in insertion order.
func WriteCSV(w io.Writer, p *models.Property) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, e := range p.Expenses {
		row := []string{e.Date.String(), e.Category, e.Amount.String(), e.Note}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// CategoryTotal is one line of a per-category breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	// Share is the category's part of the property total, in percent.
	// Zero when the property has no spending.
	Share float64
}

// Summarize aggregates the property's expenses per category, largest
// amount first. Categories with equal amounts are ordered by name so
// the output is deterministic.
func Summarize(p *models.Property) []CategoryTotal {
	byCategory := map[string]decimal.Decimal{}
	for _, e := range p.Expenses {
		sum, ok := byCategory[e.Category]
		if !ok {
			sum = decimal.Zero
		}
		byCategory[e.Category] = sum.Add(e.Amount)
	}

	total := p.Total()
	result := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		ct := CategoryTotal{Category: category, Amount: amount}
		if total.Sign() > 0 {
			ct.Share, _ = amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		result = append(result, ct)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result
}
