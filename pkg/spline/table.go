package spline

// DefaultSamplesPerSegment is the arc-length table resolution used by Track.
const DefaultSamplesPerSegment = 100

// Sample pairs a global curve parameter with the arc length travelled from
// the start of the loop. The integer part of Param is the segment index.
type Sample struct {
	Param  float64
	Length float64
}

// ArcTable maps curve parameters to cumulative length along a chain of
// segments. Lengths are non-decreasing with index.
type ArcTable struct {
	samples  []Sample
	segments int
}

// BuildArcTable samples each segment at samplesPerSegment evenly spaced local
// parameters and accumulates chord lengths. The table holds one entry at the
// start of every segment followed by its samples, so a segment boundary
// appears twice with the same length.
func BuildArcTable(segments []Bezier, samplesPerSegment int) ArcTable {
	if samplesPerSegment <= 0 {
		samplesPerSegment = DefaultSamplesPerSegment
	}
	t := ArcTable{
		samples:  make([]Sample, 0, len(segments)*(samplesPerSegment+1)),
		segments: len(segments),
	}
	total := 0.0
	for i, seg := range segments {
		t.samples = append(t.samples, Sample{Param: float64(i), Length: total})
		last := seg[0]
		for j := 1; j <= samplesPerSegment; j++ {
			u := float64(j) / float64(samplesPerSegment)
			p := seg.Point(u)
			total += last.Dist(p)
			t.samples = append(t.samples, Sample{Param: float64(i) + u, Length: total})
			last = p
		}
	}
	return t
}

// Len returns the number of samples.
func (t ArcTable) Len() int { return len(t.samples) }

// At returns sample i.
func (t ArcTable) At(i int) Sample { return t.samples[i] }

// Samples returns the backing slice. Callers must not modify it.
func (t ArcTable) Samples() []Sample { return t.samples }

// Segments reports how many segments the table covers.
func (t ArcTable) Segments() int { return t.segments }

// Total returns the cumulative length of the whole chain.
func (t ArcTable) Total() float64 {
	if len(t.samples) == 0 {
		return 0
	}
	return t.samples[len(t.samples)-1].Length
}

// ParamAt inverts the table. It scans for the first sample whose length is at
// least target and interpolates the parameter linearly between it and its
// predecessor. Targets at or below zero map to the start and targets past the
// end return the segment count. An empty or zero-length table returns 0.
func (t ArcTable) ParamAt(target float64) float64 {
	total := t.Total()
	if total == 0 || len(t.samples) < 2 {
		return 0
	}
	if target <= 0 {
		return t.samples[0].Param
	}
	if target > total {
		return float64(t.segments)
	}

	low := t.samples[0]
	high := t.samples[len(t.samples)-1]
	for i := 1; i < len(t.samples); i++ {
		if t.samples[i].Length >= target {
			low = t.samples[i-1]
			high = t.samples[i]
			break
		}
	}
	if high.Length == low.Length {
		return low.Param
	}
	frac := (target - low.Length) / (high.Length - low.Length)
	return low.Param + frac*(high.Param-low.Param)
}
