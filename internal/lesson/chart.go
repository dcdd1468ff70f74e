package lesson

// ChartSamples is the fixed resolution of the pressure curve
const ChartSamples = 100

// Point is a sample in chart space
type Point struct {
	X float64
	Y float64
}

// Range is a closed axis interval
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ChartSpec describes the pressure plot independently of any renderer.
// The curve is always sampled over the same domain; only Marker follows the
// current speed.
type ChartSpec struct {
	Title  string
	XLabel string
	YLabel string
	Curve  []Point
	Marker Point
	X      Range
	Y      Range
}

// MarkerVisible reports whether the marker falls inside the plotted area.
// Above v = sqrt(20) the pressure is negative and drops below the y axis.
func (c ChartSpec) MarkerVisible() bool {
	return c.X.Contains(c.Marker.X) && c.Y.Contains(c.Marker.Y)
}

// RenderChart builds the chart description for speed v
func RenderChart(v int) ChartSpec {
	curve := make([]Point, ChartSamples)
	for i := range curve {
		x := MinSpeed + float64(MaxSpeed-MinSpeed)*float64(i)/float64(ChartSamples-1)
		curve[i] = Point{X: x, Y: Pressure(x)}
	}

	return ChartSpec{
		Title:  "Simplified Model of Bernoulli's Principle",
		XLabel: "Fluid Speed (v) [m/s]",
		YLabel: "Relative Pressure (P)",
		Curve:  curve,
		Marker: Point{X: float64(v), Y: Pressure(float64(v))},
		X:      Range{Min: MinSpeed, Max: MaxSpeed},
		Y:      Range{Min: 0, Max: 100},
	}
}
