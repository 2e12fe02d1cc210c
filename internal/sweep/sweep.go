// Package sweep measures how well the arc-length table approximates a loop
// across tensions and sample densities.
package sweep

import (
	"fmt"
	"sort"
	"sync"

	"railsnake/pkg/spline"
)

// Scenario is one tension and table density to evaluate.
type Scenario struct {
	Tension float64
	Samples int
}

func (s Scenario) String() string {
	return fmt.Sprintf("tension=%+.2f samples=%d", s.Tension, s.Samples)
}

// Result summarises a scenario against a high-resolution reference.
type Result struct {
	Scenario
	Total        float64
	RefTotal     float64
	Monotonic    bool
	MaxDeviation float64
}

// LengthError is the relative error of the table's total length.
func (r Result) LengthError() float64 {
	if r.RefTotal == 0 {
		return 0
	}
	return (r.RefTotal - r.Total) / r.RefTotal
}

// Analyze builds a table at the scenario's density and compares it with one
// at refSamples per segment. probes positions are checked at equal fractions
// of the loop length.
func Analyze(points []spline.Vec2, sc Scenario, refSamples, probes int) Result {
	coarse := spline.NewTrack(points, sc.Tension)
	coarse.SetResolution(sc.Samples)
	ref := spline.NewTrack(points, sc.Tension)
	ref.SetResolution(refSamples)

	res := Result{
		Scenario:  sc,
		Total:     coarse.Total(),
		RefTotal:  ref.Total(),
		Monotonic: monotonic(coarse.Table()),
	}
	if !coarse.Valid() || probes <= 0 {
		return res
	}
	for k := 0; k < probes; k++ {
		f := float64(k) / float64(probes)
		got, _ := coarse.Eval(coarse.ParamAtLength(f*res.Total, false))
		want, _ := ref.Eval(ref.ParamAtLength(f*res.RefTotal, false))
		if d := got.Dist(want); d > res.MaxDeviation {
			res.MaxDeviation = d
		}
	}
	return res
}

func monotonic(t spline.ArcTable) bool {
	samples := t.Samples()
	for i := 1; i < len(samples); i++ {
		if samples[i].Length < samples[i-1].Length || samples[i].Param < samples[i-1].Param {
			return false
		}
	}
	return true
}

// Run analyses every scenario on a pool of workers and returns the results
// ordered by tension, then samples.
func Run(points []spline.Vec2, scenarios []Scenario, workers, refSamples, probes int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Scenario)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- Analyze(points, sc, refSamples, probes)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range scenarios {
			jobs <- sc
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(scenarios))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Tension != all[j].Tension {
			return all[i].Tension < all[j].Tension
		}
		return all[i].Samples < all[j].Samples
	})
	return all
}

// Grid returns scenarios for tensions from lo to hi in steps, crossed with
// each sample density.
func Grid(lo, hi float64, steps int, samples []int) []Scenario {
	if steps < 1 {
		steps = 1
	}
	var out []Scenario
	for i := 0; i <= steps; i++ {
		tension := lo + (hi-lo)*float64(i)/float64(steps)
		for _, n := range samples {
			out = append(out, Scenario{Tension: tension, Samples: n})
		}
	}
	return out
}
