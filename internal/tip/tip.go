// Package tip computes tips, totals and per-person shares from raw user input.
package tip

import (
	"math"
	"strconv"
	"strings"
)

// Input is the raw state collected by a presentation layer.
type Input struct {
	BillAmount  string
	TipPercent  string
	PeopleCount string
	RoundUp     bool
}

// Result holds the parsed inputs and every derived amount.
type Result struct {
	BillAmount  float64
	TipPercent  float64
	PeopleCount int
	RoundUp     bool

	Tip       float64
	Total     float64
	PerPerson float64
}

// CalculateTip returns tipPercent percent of billAmount, rounded up to the
// next whole unit when roundUp is set.
func CalculateTip(billAmount, tipPercent float64, roundUp bool) float64 {
	tip := tipPercent / 100 * billAmount
	if roundUp {
		tip = math.Ceil(tip)
	}
	return tip
}

// Calculate parses in and derives the tip, total and per-person share.
// It never fails: malformed text falls back to safe defaults.
func Calculate(in Input) Result {
	bill := ParseAmount(in.BillAmount)
	percent := ParsePercent(in.TipPercent)
	people := ParsePeopleCount(in.PeopleCount)

	tip := CalculateTip(bill, percent, in.RoundUp)
	total := bill + tip

	return Result{
		BillAmount:  bill,
		TipPercent:  percent,
		PeopleCount: people,
		RoundUp:     in.RoundUp,
		Tip:         tip,
		Total:       total,
		PerPerson:   total / float64(people),
	}
}

// ParseAmount parses a bill amount. Empty or non-numeric text yields 0.
func ParseAmount(text string) float64 {
	return parseDecimal(text)
}

// ParsePercent parses a tip percentage. Empty or non-numeric text yields 0.
func ParsePercent(text string) float64 {
	return parseDecimal(text)
}

// ParsePeopleCount parses the number of people sharing the bill.
// Unparsable text yields 1 and the result is never below 1.
func ParsePeopleCount(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		n = 1
	}
	return max(n, 1)
}

func parseDecimal(text string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
