package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/propledger/internal/common"
)

func TestDocumentRoundTrip(t *testing.T) {
	l := NewLedger("alice")
	require.NoError(t, l.AddProperty("seaside flat"))
	require.NoError(t, l.AddExpense(DefaultPropertyName, Expense{
		Date:     NewDate(2024, 1, 1),
		Category: CategoryTransferTax,
		Amount:   decimal.RequireFromString("5000.0"),
	}))
	require.NoError(t, l.AddExpense("seaside flat", Expense{
		Date:     NewDate(2024, 2, 10),
		Category: CategoryRenovation,
		Amount:   decimal.RequireFromString("120.55"),
		Note:     "kitchen tiles",
	}))

	data, err := EncodeDocument(l)
	require.NoError(t, err)

	got, err := DecodeDocument(data)
	require.NoError(t, err)

	require.Equal(t, l.Username, got.Username)
	require.Equal(t, l.PropertyNames(), got.PropertyNames(), "property order must survive the round trip")
	for _, name := range l.PropertyNames() {
		want, _ := l.Property(name)
		have, ok := got.Property(name)
		require.True(t, ok)
		require.Len(t, have.Expenses, len(want.Expenses))
		for i := range want.Expenses {
			require.Equal(t, want.Expenses[i].Date, have.Expenses[i].Date)
			require.Equal(t, want.Expenses[i].Category, have.Expenses[i].Category)
			require.Equal(t, want.Expenses[i].Note, have.Expenses[i].Note)
			require.True(t, want.Expenses[i].Amount.Equal(have.Expenses[i].Amount))
		}
	}

	// Encoding the decoded ledger reproduces the document exactly.
	again, err := EncodeDocument(got)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestDecodeDocument_AmountPreservedExactly(t *testing.T) {
	doc := []byte(`{
  "username": "bob",
  "properties": [
    {"name": "default", "expenses": [
      {"date": "2024-01-01", "category": "transfer-tax", "amount": "5000.0", "note": ""}
    ]}
  ]
}`)
	l, err := DecodeDocument(doc)
	require.NoError(t, err)

	p, _ := l.Property("default")
	require.Len(t, p.Expenses, 1)
	require.Equal(t, "5000.0", p.Expenses[0].Amount.String(), "decimal representation must not drift")
	require.Equal(t, NewDate(2024, 1, 1), p.Expenses[0].Date)
	require.Equal(t, CategoryTransferTax, p.Expenses[0].Category)
}

func TestDecodeDocument_HealsMissingProperties(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"absent properties key", `{"username": "bob"}`},
		{"empty properties array", `{"username": "bob", "properties": []}`},
		{"null properties", `{"username": "bob", "properties": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := DecodeDocument([]byte(tt.doc))
			require.NoError(t, err)
			require.Equal(t, []string{DefaultPropertyName}, l.PropertyNames())
			p := l.CurrentProperty()
			require.NotNil(t, p)
			require.Empty(t, p.Expenses)
		})
	}
}

func TestDecodeDocument_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"garbage", `{{{`},
		{"non-numeric amount", `{"username":"b","properties":[{"name":"d","expenses":[{"date":"2024-01-01","category":"x","amount":"abc"}]}]}`},
		{"negative amount", `{"username":"b","properties":[{"name":"d","expenses":[{"date":"2024-01-01","category":"x","amount":"-3"}]}]}`},
		{"bad date", `{"username":"b","properties":[{"name":"d","expenses":[{"date":"01/02/2024","category":"x","amount":"3"}]}]}`},
		{"nameless property", `{"username":"b","properties":[{"expenses":[]}]}`},
		{"duplicate property", `{"username":"b","properties":[{"name":"d","expenses":[]},{"name":"d","expenses":[]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.doc))
			require.ErrorIs(t, err, common.ErrMalformedDocument)
		})
	}
}
