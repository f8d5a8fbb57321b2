package tip

import "strconv"

var presets = [...]int{10, 15, 20}

// Presets returns the quick-pick tip percentages offered next to the tip field.
func Presets() []int {
	out := make([]int, len(presets))
	copy(out, presets[:])
	return out
}

// PresetText is the literal a preset writes into the tip percent field.
func PresetText(percent int) string {
	return strconv.Itoa(percent)
}

// IsPreset reports whether percent is one of the offered presets.
func IsPreset(percent int) bool {
	for _, p := range presets {
		if p == percent {
			return true
		}
	}
	return false
}
