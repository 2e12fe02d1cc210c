package snake

import (
	"strconv"
	"time"

	"railsnake/internal/core"
)

func (g *Game) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("size", "Board size", g.cfg.Size),
				intParam("interval_ms", "Move interval (ms)", int(g.cfg.Interval/time.Millisecond)),
				int64Param("seed", "Seed", g.cfg.Seed),
			},
		},
		{
			Name:    "Round",
			Summary: g.status.String(),
			Params: []core.Parameter{
				intParam("score", "Score", g.score),
				intParam("length", "Length", len(g.body)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (g *Game) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "size", Label: "Board", Type: core.ParamTypeInt, Step: 2, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: "interval_ms", Label: "Interval", Type: core.ParamTypeInt, Step: 25, Min: 25, Max: 1000, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. Changing the board size
// restarts the round.
func (g *Game) SetIntParameter(key string, value int) bool {
	switch key {
	case "size":
		if value < minSize || value > maxSize {
			return false
		}
		if value == g.cfg.Size {
			return true
		}
		g.cfg.Size = value
		g.display = core.NewByteGrid(value, value)
		g.Reset(0)
		return true
	case "interval_ms":
		if value <= 0 {
			return false
		}
		g.cfg.Interval = time.Duration(value) * time.Millisecond
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func init() {
	core.Register("snake", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
