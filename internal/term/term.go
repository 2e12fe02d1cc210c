// Package term runs Snake in a terminal with tcell.
package term

import (
	"context"
	"image/color"
	"log"
	"time"

	"railsnake/internal/audio"
	"railsnake/internal/core"
	"railsnake/internal/sims/snake"

	"github.com/gdamore/tcell/v2"
)

// frameInterval is how often the screen is redrawn and the pacer polled.
const frameInterval = 16 * time.Millisecond

// Player plays sound cues. audio.SoundManager satisfies it.
type Player interface {
	Play(audio.Sound) error
}

// Frontend drives a snake.Game from terminal input and draws it with tcell.
type Frontend struct {
	screen tcell.Screen
	game   *snake.Game
	pacer  *core.FixedStep
	player Player

	paused   bool
	seed     int64
	now      func() time.Time
	audioErr bool
}

// New wires a frontend. player may be nil.
func New(screen tcell.Screen, game *snake.Game, player Player, seed int64) *Frontend {
	return &Frontend{
		screen: screen,
		game:   game,
		pacer:  core.NewFixedInterval(game.Interval()),
		player: player,
		seed:   seed,
		now:    time.Now,
	}
}

// Run processes input and ticks until the player quits or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	f.game.Reset(f.seed)
	f.pacer.Reset()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(f.screen, events, done)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	f.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !f.HandleEvent(ev) {
				return nil
			}
			f.Draw()
		case <-ticker.C:
			if !f.paused && f.pacer.ShouldStep() {
				f.Tick()
			}
			f.Draw()
		}
	}
}

// pollEvents forwards screen events to out until the screen is finalized or
// done is closed. out is closed on return.
func pollEvents(s tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	defer close(out)
	for {
		ev := s.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one input event. It returns false when the player
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if d, ok := KeyDirection(ev); ok {
			f.game.Turn(d)
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ', 'p':
			f.paused = !f.paused
		case 'r':
			f.restart(f.seed)
		case 'n':
			f.seed = f.now().UnixNano()
			f.restart(f.seed)
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

func (f *Frontend) restart(seed int64) {
	f.game.Reset(seed)
	f.pacer.Reset()
	f.paused = false
}

// Tick advances the game once and plays the matching cue.
func (f *Frontend) Tick() snake.Event {
	ev := f.game.Advance()
	if f.player == nil {
		return ev
	}
	var cue audio.Sound
	switch ev {
	case snake.EventAte:
		cue = audio.SoundEat
	case snake.EventDied:
		cue = audio.SoundDie
	case snake.EventWon:
		cue = audio.SoundWin
	default:
		return ev
	}
	if err := f.player.Play(cue); err != nil && !f.audioErr {
		// Logged once per frontend.
		log.Printf("audio playback failed: %v", err)
		f.audioErr = true
	}
	return ev
}

// KeyDirection maps arrows, WASD and hjkl onto snake directions.
func KeyDirection(ev *tcell.EventKey) (snake.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return snake.Up, true
	case tcell.KeyDown:
		return snake.Down, true
	case tcell.KeyLeft:
		return snake.Left, true
	case tcell.KeyRight:
		return snake.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return snake.Up, true
		case 's', 'j':
			return snake.Down, true
		case 'a', 'h':
			return snake.Left, true
		case 'd', 'l':
			return snake.Right, true
		}
	}
	return 0, false
}

// Draw renders the board inside a frame with the status line beneath it.
// Each cell is two columns wide so the board looks square.
func (f *Frontend) Draw() {
	s := f.screen
	s.Clear()

	size := f.game.Size()
	cells := f.game.Cells()
	palette := f.game.Palette()
	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)

	right := size.W*2 + 1
	bottom := size.H + 1
	for x := 1; x < right; x++ {
		s.SetContent(x, 0, '─', nil, frame)
		s.SetContent(x, bottom, '─', nil, frame)
	}
	for y := 1; y < bottom; y++ {
		s.SetContent(0, y, '│', nil, frame)
		s.SetContent(right, y, '│', nil, frame)
	}
	s.SetContent(0, 0, '┌', nil, frame)
	s.SetContent(right, 0, '┐', nil, frame)
	s.SetContent(0, bottom, '└', nil, frame)
	s.SetContent(right, bottom, '┘', nil, frame)

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r, style := CellGlyph(cells[y*size.W+x], palette)
			s.SetContent(1+x*2, 1+y, r, nil, style)
			s.SetContent(2+x*2, 1+y, ' ', nil, style.Foreground(tcell.ColorDefault))
		}
	}

	line := f.game.StatusLine()
	if f.paused {
		line += "  [paused]"
	}
	drawText(s, 0, bottom+1, line, tcell.StyleDefault.Bold(true))
	drawText(s, 0, bottom+2, "arrows/wasd steer  space pause  r restart  n new seed  q quit", frame)
	s.Show()
}

// CellGlyph returns the rune and style for a display value.
func CellGlyph(v uint8, palette []color.RGBA) (rune, tcell.Style) {
	bg := tcell.ColorDefault
	if len(palette) > 0 {
		bg = rgb(palette[0])
	}
	style := tcell.StyleDefault.Background(bg)
	if int(v) >= len(palette) {
		return ' ', style
	}
	switch v {
	case 1, 2:
		return ' ', style.Background(rgb(palette[v]))
	case 3:
		return '●', style.Foreground(rgb(palette[v]))
	}
	return ' ', style
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
