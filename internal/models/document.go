package models

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/propledger/internal/common"
)

// EncodeDocument serializes a ledger into its portable document form:
// indented JSON with the username and the properties in insertion
// order. Encoding then decoding yields an equal ledger.
func EncodeDocument(l *Ledger) ([]byte, error) {
	l.Normalize()
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}

// DecodeDocument parses a persisted document back into a ledger.
//
// Structurally broken input (invalid JSON, bad dates, non-numeric or
// negative amounts, duplicate property names) fails with
// common.ErrMalformedDocument. A document whose properties are absent
// or empty is healed to the single-default-property state instead of
// failing, matching the state a brand-new ledger starts in.
func DecodeDocument(data []byte) (*Ledger, error) {
	var l Ledger
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedDocument, err)
	}

	seen := make(map[string]struct{}, len(l.Properties))
	for _, p := range l.Properties {
		if p == nil || p.Name == "" {
			return nil, fmt.Errorf("%w: property without a name", common.ErrMalformedDocument)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate property %q", common.ErrMalformedDocument, p.Name)
		}
		seen[p.Name] = struct{}{}
		for _, e := range p.Expenses {
			if e.Amount.Sign() < 0 {
				return nil, fmt.Errorf("%w: negative amount in property %q", common.ErrMalformedDocument, p.Name)
			}
		}
	}

	l.Normalize()
	return &l, nil
}
