package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/propledger/internal/models"
)

func sampleProperty() *models.Property {
	return &models.Property{
		Name: "seaside flat",
		Expenses: []models.Expense{
			{Date: models.NewDate(2024, 1, 1), Category: models.CategoryTransferTax, Amount: decimal.RequireFromString("5000.0")},
			{Date: models.NewDate(2024, 1, 5), Category: models.CategoryRenovation, Amount: decimal.RequireFromString("2000"), Note: "floors"},
			{Date: models.NewDate(2024, 2, 1), Category: models.CategoryRenovation, Amount: decimal.RequireFromString("3000"), Note: "walls, \"rough\""},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleProperty()))

	want := "date,category,amount,note\n" +
		"2024-01-01,transfer-tax,5000.0,\n" +
		"2024-01-05,renovation,2000,floors\n" +
		"2024-02-01,renovation,3000,\"walls, \"\"rough\"\"\"\n"
	require.Equal(t, want, buf.String())
}

func TestWriteCSV_EmptyPropertyHasHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &models.Property{Name: "empty"}))
	require.Equal(t, "date,category,amount,note\n", buf.String())
}

func TestSummarize(t *testing.T) {
	p := &models.Property{
		Name: "flat",
		Expenses: []models.Expense{
			{Category: models.CategoryTransferTax, Amount: decimal.RequireFromString("6000")},
			{Category: models.CategoryRenovation, Amount: decimal.RequireFromString("1000")},
			{Category: models.CategoryRenovation, Amount: decimal.RequireFromString("2000")},
			{Category: models.CategoryAgencyFee, Amount: decimal.RequireFromString("1000")},
		},
	}

	got := Summarize(p)
	require.Len(t, got, 3)

	require.Equal(t, models.CategoryTransferTax, got[0].Category)
	require.True(t, got[0].Amount.Equal(decimal.RequireFromString("6000")))
	require.InDelta(t, 60.0, got[0].Share, 0.001)

	require.Equal(t, models.CategoryRenovation, got[1].Category)
	require.True(t, got[1].Amount.Equal(decimal.RequireFromString("3000")))
	require.InDelta(t, 30.0, got[1].Share, 0.001)

	require.Equal(t, models.CategoryAgencyFee, got[2].Category)
	require.InDelta(t, 10.0, got[2].Share, 0.001)
}

func TestSummarize_EqualAmountsOrderedByName(t *testing.T) {
	got := Summarize(sampleProperty())
	// transfer-tax 5000.0 and renovation 5000 are equal, so names decide.
	require.Equal(t, models.CategoryRenovation, got[0].Category)
	require.Equal(t, models.CategoryTransferTax, got[1].Category)
}

func TestSummarize_Empty(t *testing.T) {
	require.Empty(t, Summarize(&models.Property{Name: "empty"}))
}
