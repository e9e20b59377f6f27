package models

// ChartBar is a single bar of a rendered bar chart.
type ChartBar struct {
	Name  string
	Value int
	Color string
}

// Width returns the bar length in percent, clamped to [0,100] for display.
// Value itself is left untouched.
func (b ChartBar) Width() int {
	switch {
	case b.Value < 0:
		return 0
	case b.Value > 100:
		return 100
	default:
		return b.Value
	}
}
