package train

import (
	"strconv"

	"railsnake/internal/core"
)

func (t *Train) Parameters() core.ParameterSnapshot {
	p := t.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Track",
			Params: []core.Parameter{
				floatParam("tension", "Tension", p.Tension),
				intParam("points", "Control points", t.track.Len()),
				floatParam("length", "Loop length", t.track.Total()),
				intParam("samples", "Samples per segment", p.Samples),
				boolParam("simple_track", "Simple track", p.SimpleTrack),
			},
		},
		{
			Name: "Train",
			Params: []core.Parameter{
				boolParam("arc_length", "Arc-length spacing", p.ArcLength),
				floatParam("speed", "Speed", p.Speed),
				intParam("cars", "Cars", p.Cars),
				floatParam("drive", "Drive", t.drive),
				intParam("smoke", "Smoke particles", len(t.smoke)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (t *Train) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tension", Label: "Tension", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.2, HasMin: true, HasMax: true},
		{Key: "cars", Label: "Cars", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 12, HasMin: true, HasMax: true},
		{Key: "arc_length", Label: "Arc length", Type: core.ParamTypeBool},
		{Key: "simple_track", Label: "Simple track", Type: core.ParamTypeBool},
	}
}

// SetFloatParameter updates a floating point tunable.
func (t *Train) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "tension":
		value = clamp(value, -1, 1)
		t.cfg.Params.Tension = value
		t.track.SetTension(value)
		t.trackChanged()
		return true
	case "speed":
		if value < 0 {
			return false
		}
		t.cfg.Params.Speed = value
		return true
	case "drive":
		t.SetDrive(value)
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable.
func (t *Train) SetIntParameter(key string, value int) bool {
	switch key {
	case "cars":
		if value < 0 {
			return false
		}
		t.cfg.Params.Cars = value
		t.placeCars()
		return true
	case "samples":
		if value <= 0 {
			return false
		}
		t.cfg.Params.Samples = value
		t.track.SetResolution(value)
		t.trackChanged()
		return true
	}
	return false
}

// SetBoolParameter updates a display mode toggle.
func (t *Train) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "arc_length":
		t.cfg.Params.ArcLength = value
		t.placeCars()
		return true
	case "simple_track":
		t.cfg.Params.SimpleTrack = value
		t.buildScenery()
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
