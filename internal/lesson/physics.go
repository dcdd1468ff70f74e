package lesson

import "fmt"

// Speed bounds of the explorer slider, in m/s
const (
	MinSpeed     = 0
	MaxSpeed     = 10
	DefaultSpeed = 5
)

// Pressure returns the relative pressure of the simplified model P = 100 - 5v^2.
//
// This is a teaching toy, not a physical measurement: it only shows that
// pressure falls as speed rises.
func Pressure(v float64) float64 {
	return 100 - 5*v*v
}

// ClampSpeed limits v to the slider range
func ClampSpeed(v int) int {
	if v < MinSpeed {
		return MinSpeed
	}
	if v > MaxSpeed {
		return MaxSpeed
	}
	return v
}

// SpeedSummary is the text panel shown next to the chart
type SpeedSummary struct {
	Speed    int
	Pressure float64
}

// Formula is the simplified expression shown to students
const Formula = "P = 100 - 5v²"

// Lines returns the summary as markdown lines
func (s SpeedSummary) Lines() []string {
	return []string{
		"**Explanation:** As the slider increases the fluid speed (v), the graph shows that the pressure (P) decreases. The red dot represents the current value.",
		fmt.Sprintf("**Current Speed (v):** %d m/s", s.Speed),
		fmt.Sprintf("**Corresponding Pressure (P):** %.2f (relative units)", s.Pressure),
		fmt.Sprintf("**Mathematical Expression (Simplified):** `%s`", Formula),
		"This shows the inverse quadratic relationship between speed and pressure.",
	}
}
