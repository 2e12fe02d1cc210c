//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"
	"unicode"

	"railsnake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// Panel geometry in screen pixels.
const (
	sideMargin   = 10
	rowPitch     = 32
	knobSize     = 22
	knobGap      = 5
	titleLine    = 16
	rowTextLine  = 21
	summaryPitch = 16
	firstRowTop  = sideMargin + titleLine + 12
)

var (
	panelFill   = color.RGBA{R: 18, G: 22, B: 20, A: 255}
	titleInk    = color.RGBA{R: 170, G: 210, B: 160, A: 255}
	labelInk    = color.RGBA{R: 225, G: 228, B: 220, A: 255}
	mutedInk    = color.RGBA{R: 130, G: 140, B: 130, A: 255}
	knobFill    = color.RGBA{R: 52, G: 70, B: 58, A: 255}
	knobIdle    = color.RGBA{R: 30, G: 36, B: 32, A: 255}
	knobInk     = color.RGBA{R: 235, G: 240, B: 230, A: 255}
	knobIdleInk = color.RGBA{R: 110, G: 118, B: 110, A: 255}
)

// HUD is the tuning panel to the right of the track or board.
type HUD struct {
	sim     core.Sim
	width   int
	heading string

	panel       *ebiten.Image
	panelHeight int
	pixel       *ebiten.Image
	originX     int

	rows      []knobRow
	summaries []string

	ints   core.IntParameterSetter
	floats core.FloatParameterSetter
	bools  core.BoolParameterSetter
}

// knobRow is one adjustable parameter and the last value read back from the sim.
type knobRow struct {
	ctrl    core.ParameterControl
	shown   string
	live    bool
	current float64
	flag    bool

	top int
	dec image.Rectangle
	inc image.Rectangle
}

// NewHUD builds a panel of the given width for sim. A width of zero disables it.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0), heading: panelHeading(sim)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range p.ParameterControls() {
			h.rows = append(h.rows, knobRow{ctrl: ctrl, shown: "--"})
		}
		h.placeRows()
	}
	h.ints, _ = sim.(core.IntParameterSetter)
	h.floats, _ = sim.(core.FloatParameterSetter)
	h.bools, _ = sim.(core.BoolParameterSetter)
	return h
}

// Update reads the current parameters back from the sim and applies any click
// on a knob. originX is where the panel starts on screen.
func (h *HUD) Update(originX int) {
	if h == nil {
		return
	}
	h.originX = originX
	p, ok := h.sim.(parameterProvider)
	if !ok {
		h.summaries = h.summaries[:0]
		return
	}
	h.readBack(p.Parameters())
	h.handleClick()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panelHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.panelHeight = height
	}
	h.panel.Fill(panelFill)
	h.drawRows()
	h.drawSummaries()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// panelHeading reads "railsnake / Train" for the train sim.
func panelHeading(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "railsnake"
	}
	r := []rune(sim.Name())
	r[0] = unicode.ToUpper(r[0])
	return "railsnake / " + string(r)
}

func (h *HUD) readBack(snap core.ParameterSnapshot) {
	byKey := map[string]core.Parameter{}
	h.summaries = h.summaries[:0]
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			byKey[p.Key] = p
		}
		if g.Summary != "" {
			h.summaries = append(h.summaries, g.Name+": "+g.Summary)
		}
	}
	for i := range h.rows {
		r := &h.rows[i]
		p, ok := byKey[r.ctrl.Key]
		r.live = ok && r.parse(p.Value)
		if !r.live {
			r.shown = "--"
		}
	}
}

// parse stores raw as the row's value and reports whether it matched the
// control's type.
func (r *knobRow) parse(raw string) bool {
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return false
		}
		r.current = float64(n)
	case core.ParamTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return false
		}
		r.current = f
	case core.ParamTypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return false
		}
		r.flag = b
	default:
		return false
	}
	r.shown = r.format()
	return true
}

func (r *knobRow) format() string {
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		return strconv.Itoa(int(r.current))
	case core.ParamTypeBool:
		if r.flag {
			return "on"
		}
		return "off"
	}
	step := r.ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	digits := 1
	switch {
	case step < 0.001:
		digits = 4
	case step < 0.01:
		digits = 3
	case step < 0.1:
		digits = 2
	}
	return strconv.FormatFloat(r.current, 'f', digits, 64)
}

// nudge returns the value one step away from the current one in dir, clamped
// to the control's bounds. ok is false when the value cannot move that way.
func (r *knobRow) nudge(dir int) (next float64, ok bool) {
	step := r.ctrl.Step
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return 0, false
	}
	next = r.current + float64(dir)*step
	if r.ctrl.HasMin && next < r.ctrl.Min {
		next = r.ctrl.Min
	}
	if r.ctrl.HasMax && next > r.ctrl.Max {
		next = r.ctrl.Max
	}
	if r.ctrl.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-r.current) > 1e-9
}

// writable reports whether the sim accepts writes for the row's type.
func (h *HUD) writable(r *knobRow) bool {
	switch r.ctrl.Type {
	case core.ParamTypeInt:
		return h.ints != nil
	case core.ParamTypeFloat:
		return h.floats != nil
	case core.ParamTypeBool:
		return h.bools != nil
	}
	return false
}

func (h *HUD) handleClick() {
	if len(h.rows) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.originX {
		return
	}
	at := image.Pt(mx-h.originX, my)
	for i := range h.rows {
		r := &h.rows[i]
		if !r.live || !h.writable(r) {
			continue
		}
		switch {
		case r.ctrl.Type == core.ParamTypeBool && at.In(r.inc):
			if h.bools.SetBoolParameter(r.ctrl.Key, !r.flag) {
				r.flag = !r.flag
				r.shown = r.format()
			}
			return
		case r.ctrl.Type != core.ParamTypeBool && at.In(r.dec):
			h.apply(r, -1)
			return
		case r.ctrl.Type != core.ParamTypeBool && at.In(r.inc):
			h.apply(r, 1)
			return
		}
	}
}

func (h *HUD) apply(r *knobRow, dir int) {
	next, ok := r.nudge(dir)
	if !ok {
		return
	}
	var accepted bool
	if r.ctrl.Type == core.ParamTypeInt {
		accepted = h.ints.SetIntParameter(r.ctrl.Key, int(next))
	} else {
		accepted = h.floats.SetFloatParameter(r.ctrl.Key, next)
	}
	if accepted {
		r.current = next
		r.shown = r.format()
	}
}

func (h *HUD) placeRows() {
	if h.width <= 0 {
		return
	}
	for i := range h.rows {
		top := firstRowTop + i*rowPitch
		y := top + (rowPitch-knobSize)/2
		inc := image.Rect(h.width-sideMargin-knobSize, y, h.width-sideMargin, y+knobSize)
		h.rows[i].top = top
		h.rows[i].inc = inc
		h.rows[i].dec = inc.Sub(image.Pt(knobSize+knobGap, 0))
	}
}

func (h *HUD) drawRows() {
	face := basicfont.Face7x13
	text.Draw(h.panel, h.heading, face, sideMargin, sideMargin+titleLine, titleInk)
	if len(h.rows) == 0 {
		text.Draw(h.panel, "nothing to tune", face, sideMargin, sideMargin+titleLine+rowPitch, mutedInk)
		return
	}
	for i := range h.rows {
		r := &h.rows[i]
		baseline := r.top + rowTextLine
		text.Draw(h.panel, r.ctrl.Label, face, sideMargin, baseline, labelInk)
		canWrite := r.live && h.writable(r)
		if r.ctrl.Type == core.ParamTypeBool {
			h.drawKnob(r.inc, r.shown, canWrite)
			continue
		}
		ink := labelInk
		if !r.live {
			ink = mutedInk
		}
		w := text.BoundString(face, r.shown).Dx()
		text.Draw(h.panel, r.shown, face, r.dec.Min.X-knobGap-w, baseline, ink)
		_, down := r.nudge(-1)
		_, up := r.nudge(1)
		h.drawKnob(r.dec, "-", canWrite && down)
		h.drawKnob(r.inc, "+", canWrite && up)
	}
}

// drawSummaries lists each group's one-line summary along the bottom edge.
func (h *HUD) drawSummaries() {
	if len(h.summaries) == 0 {
		return
	}
	face := basicfont.Face7x13
	y := h.panelHeight - sideMargin - (len(h.summaries)-1)*summaryPitch
	for _, line := range h.summaries {
		if fit := (h.width - 2*sideMargin) / 7; fit > 3 && len(line) > fit {
			line = strings.TrimSpace(line[:fit-3]) + "..."
		}
		text.Draw(h.panel, line, face, sideMargin, y, mutedInk)
		y += summaryPitch
	}
}

func (h *HUD) drawKnob(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := knobFill, knobInk
	if !enabled {
		bg, fg = knobIdle, knobIdleInk
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	b := text.BoundString(basicfont.Face7x13, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}
