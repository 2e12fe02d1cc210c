package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"railsnake/internal/sims/train"
	"railsnake/internal/sweep"
	"railsnake/pkg/spline"
)

func main() {
	steps := flag.Int("steps", 8, "tension steps between -1 and 1")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	samples := flag.String("samples", "10,25,50,100", "comma separated samples per segment to compare")
	ref := flag.Int("ref", 2000, "samples per segment for the reference table")
	probes := flag.Int("probes", 500, "positions compared along each loop")
	points := flag.String("points", "", "control points as x,y;x,y;... (defaults to the demo loop)")
	flag.Parse()

	pts := train.DefaultPoints()
	if *points != "" {
		parsed, err := train.ParsePoints(*points)
		if err != nil {
			log.Fatalf("points: %v", err)
		}
		pts = parsed
	}
	densities, err := parseInts(*samples)
	if err != nil {
		log.Fatalf("samples: %v", err)
	}

	scenarios := sweep.Grid(-1, 1, *steps, densities)
	fmt.Printf("Sweeping %d scenarios over %d points (%d workers, ref %d samples)\n", len(scenarios), len(pts), *workers, *ref)

	start := time.Now()
	results := sweep.Run(pts, scenarios, *workers, *ref, *probes)
	elapsed := time.Since(start)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tension\tsamples\tlength\tref\trel err\tmax dev px\tmonotonic\t")
	worst := sweep.Result{}
	for _, res := range results {
		fmt.Fprintf(tw, "%+.2f\t%d\t%.2f\t%.2f\t%.2e\t%.4f\t%v\t\n",
			res.Tension, res.Samples, res.Total, res.RefTotal, res.LengthError(), res.MaxDeviation, res.Monotonic)
		if res.Samples == spline.DefaultSamplesPerSegment && res.MaxDeviation > worst.MaxDeviation {
			worst = res
		}
	}
	tw.Flush()

	fmt.Printf("\nelapsed %s\n", elapsed.Round(time.Millisecond))
	if worst.Samples > 0 {
		fmt.Printf("worst at default density: %s deviates %.4f px\n", worst.Scenario, worst.MaxDeviation)
	}
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		if n < 1 {
			return nil, fmt.Errorf("density %d must be positive", n)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no densities in %q", s)
	}
	return out, nil
}
