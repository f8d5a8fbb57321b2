package tip

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateTip(t *testing.T) {
	tests := []struct {
		name    string
		bill    float64
		percent float64
		roundUp bool
		want    float64
	}{
		{name: "plain", bill: 50, percent: 18, want: 9},
		{name: "fractional", bill: 10, percent: 15, want: 1.5},
		{name: "round up fractional", bill: 10, percent: 15, roundUp: true, want: 2},
		{name: "round up whole", bill: 50, percent: 18, roundUp: true, want: 9},
		{name: "zero percent", bill: 80, percent: 0, want: 0},
		{name: "zero bill rounded", bill: 0, percent: 20, roundUp: true, want: 0},
		{name: "negative bill kept", bill: -20, percent: 10, want: -2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, CalculateTip(tc.bill, tc.percent, tc.roundUp), 1e-9)
		})
	}
}

func TestCalculateTipRoundUpProperties(t *testing.T) {
	for _, bill := range []float64{0, 0.01, 1, 9.99, 12.34, 50, 123.45, 1000} {
		for _, percent := range []float64{0, 5, 10, 12.5, 15, 18, 20, 33.3} {
			plain := CalculateTip(bill, percent, false)
			rounded := CalculateTip(bill, percent, true)

			require.InDelta(t, percent/100*bill, plain, 1e-9)
			require.Equal(t, math.Ceil(plain), rounded)
			require.Equal(t, math.Trunc(rounded), rounded, "rounded tip must be whole")
			require.GreaterOrEqual(t, rounded, plain)
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{in: "", want: 0},
		{in: "50.00", want: 50},
		{in: " 12.5 ", want: 12.5},
		{in: "abc", want: 0},
		{in: "1,5", want: 0},
		{in: "NaN", want: 0},
		{in: "Inf", want: 0},
		{in: "1e400", want: 0},
		{in: "-3", want: -3},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, ParseAmount(tc.in))
			require.Equal(t, tc.want, ParsePercent(tc.in))
		})
	}
}

func TestParsePeopleCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{in: "", want: 1},
		{in: "3", want: 3},
		{in: " 4 ", want: 4},
		{in: "0", want: 1},
		{in: "-5", want: 1},
		{in: "2.5", want: 1},
		{in: "many", want: 1},
		{in: "99999999999999999999", want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, ParsePeopleCount(tc.in))
		})
	}
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name          string
		in            Input
		wantTip       float64
		wantTotal     float64
		wantPerPerson float64
	}{
		{
			name:          "three people",
			in:            Input{BillAmount: "50.00", TipPercent: "18", PeopleCount: "3"},
			wantTip:       9,
			wantTotal:     59,
			wantPerPerson: 59.0 / 3,
		},
		{
			name:          "three people rounded",
			in:            Input{BillAmount: "50.00", TipPercent: "18", PeopleCount: "3", RoundUp: true},
			wantTip:       9,
			wantTotal:     59,
			wantPerPerson: 59.0 / 3,
		},
		{
			name:          "single person rounded",
			in:            Input{BillAmount: "10.00", TipPercent: "15", PeopleCount: "1", RoundUp: true},
			wantTip:       2,
			wantTotal:     12,
			wantPerPerson: 12,
		},
		{
			name: "all empty",
			in:   Input{},
		},
		{
			name:          "zero people divides by one",
			in:            Input{BillAmount: "40", TipPercent: "10", PeopleCount: "0"},
			wantTip:       4,
			wantTotal:     44,
			wantPerPerson: 44,
		},
		{
			name:          "negative people divides by one",
			in:            Input{BillAmount: "40", TipPercent: "10", PeopleCount: "-2"},
			wantTip:       4,
			wantTotal:     44,
			wantPerPerson: 44,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.in)
			require.InDelta(t, tc.wantTip, got.Tip, 1e-9)
			require.InDelta(t, tc.wantTotal, got.Total, 1e-9)
			require.InDelta(t, tc.wantPerPerson, got.PerPerson, 1e-9)
			require.GreaterOrEqual(t, got.PeopleCount, 1)
			require.Equal(t, tc.in.RoundUp, got.RoundUp)
		})
	}
}

func TestPerPersonNonIncreasingWithPeople(t *testing.T) {
	prev := math.Inf(1)
	for people := 1; people <= 20; people++ {
		got := Calculate(Input{
			BillAmount:  "87.40",
			TipPercent:  "17.5",
			PeopleCount: strconv.Itoa(people),
		})
		require.LessOrEqual(t, got.PerPerson, prev)
		prev = got.PerPerson
	}
}

func TestPresets(t *testing.T) {
	require.Equal(t, []int{10, 15, 20}, Presets())

	p := Presets()
	p[0] = 99
	require.Equal(t, []int{10, 15, 20}, Presets(), "callers must not be able to mutate presets")

	require.True(t, IsPreset(15))
	require.False(t, IsPreset(18))
	require.Equal(t, "20", PresetText(20))
}
