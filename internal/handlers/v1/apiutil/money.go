package apiutil

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
)

// Money is a decimal amount carried on the wire as a bare JSON number.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(data []byte) error {
	return m.Decimal.UnmarshalJSON(data)
}

// Schema describes Money as a number in the OpenAPI document.
func (Money) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{Type: huma.TypeNumber}
}

// DecimalPtr returns the amount held by m, or nil when m is nil.
func (m *Money) DecimalPtr() *decimal.Decimal {
	if m == nil {
		return nil
	}
	d := m.Decimal
	return &d
}
