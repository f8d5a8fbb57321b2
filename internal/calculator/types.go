package calculator

import (
	"encoding/json"

	"tiptime/internal/currency"
)

// RawInput is user-typed text. JSON strings are taken verbatim and JSON
// numbers as their literal text, so clients may send either.
type RawInput string

func (r *RawInput) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = RawInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RawInput(n.String())
	return nil
}

// CalculateRequest is the JSON body for POST /tip/calculate. The same fields
// are read from the query string for GET.
type CalculateRequest struct {
	BillAmount  RawInput `json:"bill_amount"`
	TipPercent  RawInput `json:"tip_percent"`
	PeopleCount RawInput `json:"people_count"`
	RoundUp     bool     `json:"round_up"`

	Locale   string `json:"locale" validate:"omitempty,bcp47_language_tag"`
	Currency string `json:"currency" validate:"omitempty,iso4217"`
}

// CalculateResponse is the JSON response for both calculate endpoints.
type CalculateResponse struct {
	BillAmount  float64 `json:"bill_amount"`
	TipPercent  float64 `json:"tip_percent"`
	PeopleCount int     `json:"people_count"`
	RoundUp     bool    `json:"round_up"`

	Tip       float64 `json:"tip"`
	Total     float64 `json:"total"`
	PerPerson float64 `json:"per_person"`

	Formatted currency.Display `json:"formatted"` // "$ 9.00"
	Display   currency.Display `json:"display"`   // "Tip Amount: $ 9.00"

	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// PresetsResponse is the JSON response for GET /tip/presets.
type PresetsResponse struct {
	Presets []int `json:"presets"`
}
