package train

import (
	"strconv"
	"strings"

	"railsnake/pkg/spline"
)

// Params holds the tunables of the train scene.
type Params struct {
	Tension     float64
	ArcLength   bool
	SimpleTrack bool
	Speed       float64

	Cars           int
	CarSeparation  float64
	CarLength      float64
	CarWidth       float64
	RailSeparation float64
	RailSteps      int
	TieSpacing     float64
	TieOverhang    float64
	FlowerSpacing  float64
	FlowerOffset   float64

	SmokeEmitRate    int
	SmokeMaxLife     float64
	SmokeInitialSize float64

	Samples int
}

// Config controls the canvas, initial track and scene parameters.
type Config struct {
	Width  int
	Height int

	Seed   int64
	Points []spline.Vec2

	Params Params
}

// DefaultPoints returns the starting loop.
func DefaultPoints() []spline.Vec2 {
	return []spline.Vec2{
		spline.V(100, 100),
		spline.V(100, 500),
		spline.V(300, 450),
		spline.V(500, 500),
		spline.V(500, 100),
		spline.V(300, 150),
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  600,
		Height: 600,
		Seed:   559,
		Points: DefaultPoints(),
		Params: Params{
			Tension:          0,
			ArcLength:        true,
			SimpleTrack:      false,
			Speed:            0.01,
			Cars:             5,
			CarSeparation:    75,
			CarLength:        50,
			CarWidth:         25,
			RailSeparation:   15,
			RailSteps:        200,
			TieSpacing:       30,
			TieOverhang:      5,
			FlowerSpacing:    100,
			FlowerOffset:     50,
			SmokeEmitRate:    5,
			SmokeMaxLife:     100,
			SmokeInitialSize: 3,
			Samples:          spline.DefaultSamplesPerSegment,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["points"]; ok {
		if pts, err := ParsePoints(v); err == nil {
			c.Points = pts
		}
	}
	if v, ok := cfg["tension"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Tension = parsed
		}
	}
	if v, ok := cfg["arc_length"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.ArcLength = parsed
		}
	}
	if v, ok := cfg["simple_track"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.SimpleTrack = parsed
		}
	}
	if v, ok := cfg["speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Speed = parsed
		}
	}
	if v, ok := cfg["cars"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Cars = parsed
		}
	}
	if v, ok := cfg["samples"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Samples = parsed
		}
	}
	return c
}

// ParsePoints reads a list of control points written as "x,y;x,y;...".
func ParsePoints(s string) ([]spline.Vec2, error) {
	var pts []spline.Vec2
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, &PointError{Input: pair}
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, &PointError{Input: pair, Err: err}
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, &PointError{Input: pair, Err: err}
		}
		pts = append(pts, spline.V(x, y))
	}
	return pts, nil
}

// PointError reports a control point that could not be parsed.
type PointError struct {
	Input string
	Err   error
}

func (e *PointError) Error() string {
	if e.Err != nil {
		return "train: bad point " + strconv.Quote(e.Input) + ": " + e.Err.Error()
	}
	return "train: bad point " + strconv.Quote(e.Input) + ": want x,y"
}

func (e *PointError) Unwrap() error { return e.Err }
