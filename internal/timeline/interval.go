package timeline

// Interval is a half-open [Start, End) time range in seconds over one audio
// source.
type Interval struct {
	Start float64
	End   float64
}

// Duration returns End - Start.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}
