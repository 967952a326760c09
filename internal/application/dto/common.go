package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/hamedsh/dokandar-api/pkg/persian"
)

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Money is a decimal amount that accepts localized input. It unmarshals from
// a JSON number or from a string that may carry Persian or Arabic-Indic
// digits and thousands commas, the way the original entry fields let the
// operator type them. It marshals as a plain JSON number.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal for response building.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		d, err := persian.ParseAmount(raw)
		if err != nil {
			return fmt.Errorf("invalid amount %q", raw)
		}
		m.Decimal = d
		return nil
	}
	return m.Decimal.UnmarshalJSON(data)
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

// Quantity is a whole unit count that accepts the same localized input
// shapes as Money.
type Quantity int

// UnmarshalJSON implements json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	n, err := persian.ParseInt(s)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", s)
	}
	*q = Quantity(n)
	return nil
}
