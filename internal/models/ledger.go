package models

import (
	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/propledger/internal/common"
)

// DefaultPropertyName is the name of the property materialized when a
// ledger would otherwise be empty.
const DefaultPropertyName = "default"

// Property is a named grouping of expenses (one real-estate asset).
// Expense order is insertion order and is significant for display.
type Property struct {
	Name     string    `json:"name"`
	Expenses []Expense `json:"expenses"`
}

// Total returns the sum of all expense amounts of the property.
func (p *Property) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// Ledger is one user's full state: an ordered collection of uniquely
// named properties. Properties are kept as a slice so that encoding
// preserves insertion order.
//
// The current-property pointer is session state and is not persisted.
type Ledger struct {
	Username   string      `json:"username"`
	Properties []*Property `json:"properties"`

	current string
}

// NewLedger returns a ledger for username holding one empty default
// property. A ledger never has zero properties.
func NewLedger(username string) *Ledger {
	l := &Ledger{Username: username}
	l.Normalize()
	return l
}

// Normalize restores the ledger invariants: at least one property
// exists, expense slices are non-nil, and the current-property pointer
// references an existing property (falling back to the first one).
func (l *Ledger) Normalize() {
	if len(l.Properties) == 0 {
		l.Properties = []*Property{{Name: DefaultPropertyName, Expenses: []Expense{}}}
	}
	for _, p := range l.Properties {
		if p.Expenses == nil {
			p.Expenses = []Expense{}
		}
	}
	if _, ok := l.Property(l.current); !ok {
		l.current = l.Properties[0].Name
	}
}

// Property looks up a property by name.
func (l *Ledger) Property(name string) (*Property, bool) {
	for _, p := range l.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// PropertyNames returns the property names in insertion order.
func (l *Ledger) PropertyNames() []string {
	names := make([]string, 0, len(l.Properties))
	for _, p := range l.Properties {
		names = append(names, p.Name)
	}
	return names
}

// CurrentProperty returns the active property of the session, healing
// the pointer if its referent is gone.
func (l *Ledger) CurrentProperty() *Property {
	l.Normalize()
	p, _ := l.Property(l.current)
	return p
}

// SetCurrentProperty repoints the session's active property.
func (l *Ledger) SetCurrentProperty(name string) error {
	if _, ok := l.Property(name); !ok {
		return common.ErrNotFound
	}
	l.current = name
	return nil
}

// AddProperty inserts a new empty property at the end of the ledger.
func (l *Ledger) AddProperty(name string) error {
	if name == "" {
		return common.ErrEmptyName
	}
	if _, ok := l.Property(name); ok {
		return common.ErrDuplicateName
	}
	l.Properties = append(l.Properties, &Property{Name: name, Expenses: []Expense{}})
	return nil
}

// RemoveProperty deletes a property and repoints the current-property
// pointer to the first remaining one. Removing the only property is
// refused so the ledger never becomes empty.
func (l *Ledger) RemoveProperty(name string) error {
	if _, ok := l.Property(name); !ok {
		return common.ErrNotFound
	}
	if len(l.Properties) == 1 {
		return common.ErrLastProperty
	}
	kept := make([]*Property, 0, len(l.Properties)-1)
	for _, p := range l.Properties {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	l.Properties = kept
	l.current = l.Properties[0].Name
	return nil
}

// AddExpense appends a record to the named property. Amounts must be
// strictly positive.
func (l *Ledger) AddExpense(property string, e Expense) error {
	p, ok := l.Property(property)
	if !ok {
		return common.ErrNotFound
	}
	if e.Amount.Sign() <= 0 {
		return common.ErrInvalidAmount
	}
	if e.Date.IsZero() {
		e.Date = Today()
	}
	p.Expenses = append(p.Expenses, e)
	return nil
}

// RemoveExpenseAt deletes the record at index i of the named property.
func (l *Ledger) RemoveExpenseAt(property string, i int) error {
	p, ok := l.Property(property)
	if !ok {
		return common.ErrNotFound
	}
	if i < 0 || i >= len(p.Expenses) {
		return common.ErrIndexOutOfRange
	}
	p.Expenses = append(p.Expenses[:i], p.Expenses[i+1:]...)
	return nil
}

// ClearProperty empties the expense list of the named property.
func (l *Ledger) ClearProperty(property string) error {
	p, ok := l.Property(property)
	if !ok {
		return common.ErrNotFound
	}
	p.Expenses = []Expense{}
	return nil
}
