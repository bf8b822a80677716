// Package models defines the ledger entity graph: users own named
// properties, each holding an ordered list of expense records. The
// model is independent of how it is stored; see internal/storage.
package models

import "github.com/shopspring/decimal"

// Preset expense categories offered by the UI. Free-form categories
// are equally valid; these are only suggestions.
const (
	CategoryTransferTax = "transfer-tax"
	CategoryLandGrant   = "land-grant"
	CategoryAgencyFee   = "agency-fee"
	CategoryRenovation  = "renovation"
)

// PresetCategories lists the suggested categories in display order.
var PresetCategories = []string{
	CategoryTransferTax,
	CategoryLandGrant,
	CategoryAgencyFee,
	CategoryRenovation,
}

// Expense is one dated, categorized, amount-bearing record. Records are
// immutable once appended; they are only ever removed, never edited.
type Expense struct {
	Date     Date            `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note,omitempty"`
}
