package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/arcadepong/internal/effects"
	"github.com/diegok/arcadepong/internal/game"
	"github.com/diegok/arcadepong/internal/snapshot"
)

const (
	BallChar     = '●'
	PaddleChar   = '█'
	TrailChar    = '•'
	ParticleChar = '*'
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
	layout Layout
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the mapping used by the last frame
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws one frame: the court, then the overlay for the mode
func (r *Renderer) Render(s snapshot.Snapshot) {
	screenW, screenH := r.screen.Size()
	r.layout = NewLayout(screenW, screenH, s.FieldWidth, s.FieldHeight)

	r.screen.Clear()
	r.renderCourt(s)
	r.renderScoreboard(s, screenW)
	r.renderStatus(s, screenW, screenH)

	switch s.Mode {
	case snapshot.ModeMenu:
		r.renderMenu(s)
	case snapshot.ModePaused:
		r.renderPause()
	case snapshot.ModeGameOver:
		r.renderGameOver(s)
	}

	r.screen.Show()
}

func (r *Renderer) renderCourt(s snapshot.Snapshot) {
	l := r.layout
	bg := parseColor(s.Colors.Background, tcell.ColorBlack)
	base := tcell.StyleDefault.Background(bg)

	// Draw court background
	r.screen.FillRect(0, 1, l.ScreenW, l.CourtRows(), base, ' ')

	// Draw center dashed line
	centerX := l.ScreenW / 2
	lineStyle := base.Foreground(fade(s.Colors.Paddle, s.Colors.Background, 0.4))
	for y := 1; y <= l.CourtRows(); y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '│')
	}

	// Trail, oldest (faintest) first
	for i, p := range s.Trail {
		t := float64(i+1) / float64(len(s.Trail)+1) * 0.6
		r.plot(p.X, p.Y, base.Foreground(fade(s.Colors.Ball, s.Colors.Background, t)), TrailChar)
	}

	for _, p := range s.Particles {
		t := float64(p.Life) / float64(effects.ParticleLife)
		r.plot(p.X, p.Y, base.Foreground(fade(s.Colors.Ball, s.Colors.Background, t)), ParticleChar)
	}

	paddleStyle := base.Foreground(parseColor(s.Colors.Paddle, tcell.ColorWhite))
	r.renderPaddle(s.Left, paddleStyle)
	r.renderPaddle(s.Right, paddleStyle)

	ballStyle := base.Foreground(parseColor(s.Colors.Ball, tcell.ColorWhite))
	r.plot(s.Ball.X, s.Ball.Y, ballStyle, BallChar)
}

// renderPaddle draws a paddle stretched by its squash factor around its center
func (r *Renderer) renderPaddle(p snapshot.PaddleState, style tcell.Style) {
	l := r.layout
	squash := p.Squash
	if squash <= 0 {
		squash = 1
	}
	height := l.Span(p.Height * squash)
	x, centerRow := l.Cell(p.X+p.Width/2, p.Y+p.Height/2)
	top := centerRow - height/2

	for dy := 0; dy < height; dy++ {
		if l.InCourt(x, top+dy) {
			r.screen.SetCell(x, top+dy, style, PaddleChar)
		}
	}
}

func (r *Renderer) plot(x, y float64, style tcell.Style, ch rune) {
	cx, cy := r.layout.Cell(x, y)
	if r.layout.InCourt(cx, cy) {
		r.screen.SetCell(cx, cy, style, ch)
	}
}

// renderScoreboard draws a stadium-style scoreboard at top center
func (r *Renderer) renderScoreboard(s snapshot.Snapshot, screenW int) {
	leftLabel, rightLabel := sideLabels(s.Ruleset)
	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)

	r.screen.FillRect(0, 0, screenW, 1, tcell.StyleDefault.Background(tcell.ColorDarkGray), ' ')
	text := fmt.Sprintf("[ %s %d - %d %s ]", leftLabel, s.PlayerScore, s.OpponentScore, rightLabel)
	r.screen.DrawCentered(0, text, boardStyle)

	if s.Ruleset.Timed() {
		clock := formatClock(s.Remaining)
		clockStyle := boardStyle.Foreground(tcell.ColorYellow)
		if s.Remaining <= 10*time.Second {
			clockStyle = boardStyle.Foreground(tcell.ColorRed)
		}
		r.screen.DrawText(screenW-TextWidth(clock)-1, 0, clock, clockStyle)
	}
}

func (r *Renderer) renderStatus(s snapshot.Snapshot, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')

	goal := fmt.Sprintf("First to %d", s.MaxScore)
	if s.Ruleset.Timed() {
		goal = "Beat the clock"
	}
	text := fmt.Sprintf(" %s | %s | %s | Best: %d | Speed x%.2f", s.Ruleset, s.Difficulty, goal, s.HighScore, s.SpeedMultiplier)
	if s.Ruleset == snapshot.RulesetTwoPlayer {
		text = fmt.Sprintf(" %s | %s | Best: %d | Speed x%.2f", s.Ruleset, goal, s.HighScore, s.SpeedMultiplier)
	}
	r.screen.DrawText(0, statusY, text, statusStyle)
}

// overlay draws a filled box centered on the court and returns its top row
func (r *Renderer) overlay(w, h int) int {
	screenW, screenH := r.screen.Size()
	boxX := (screenW - w) / 2
	boxY := (screenH - h) / 2
	r.screen.DrawBox(boxX, boxY, w, h, tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray))
	r.screen.FillRect(boxX+1, boxY+1, w-2, h-2, tcell.StyleDefault.Background(tcell.ColorDarkGray), ' ')
	return boxY
}

func (r *Renderer) renderMenu(s snapshot.Snapshot) {
	top := r.overlay(44, 13)
	box := tcell.StyleDefault.Background(tcell.ColorDarkGray)

	r.screen.DrawCentered(top+1, "A R C A D E   P O N G", box.Foreground(tcell.ColorTeal).Bold(true))

	r.screen.DrawCentered(top+3, fmt.Sprintf("Mode [m]:       %-12s", s.Ruleset), box.Foreground(tcell.ColorWhite))
	diff := s.Difficulty.String()
	if !s.Ruleset.AI() {
		diff = "-"
	}
	r.screen.DrawCentered(top+4, fmt.Sprintf("Difficulty [d]: %-12s", diff), box.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(top+5, fmt.Sprintf("Speed [+/-]:    x%-11.2f", s.SpeedMultiplier), box.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(top+6, fmt.Sprintf("Colors [c]:     %-12s", s.Colors.Paddle), box.Foreground(parseColor(s.Colors.Paddle, tcell.ColorWhite)))
	r.screen.DrawCentered(top+7, fmt.Sprintf("High score:     %-12d", s.HighScore), box.Foreground(tcell.ColorYellow))

	controls := "W/S, arrows or mouse to move"
	if s.Ruleset == snapshot.RulesetTwoPlayer {
		controls = "Left: W/S or mouse  Right: arrows"
	}
	r.screen.DrawCentered(top+9, controls, box.Foreground(tcell.ColorGray))
	r.screen.DrawCentered(top+10, "ENTER or click to start | q to quit", box.Foreground(tcell.ColorGreen))
}

func (r *Renderer) renderPause() {
	top := r.overlay(34, 7)
	box := tcell.StyleDefault.Background(tcell.ColorDarkGray)

	r.screen.DrawCentered(top+2, "PAUSED", box.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawCentered(top+4, "p to resume | ESC for menu", box.Foreground(tcell.ColorGreen))
}

func (r *Renderer) renderGameOver(s snapshot.Snapshot) {
	top := r.overlay(44, 10)
	box := tcell.StyleDefault.Background(tcell.ColorDarkGray)

	r.screen.DrawCentered(top+1, "=== GAME OVER ===", box.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawCentered(top+3, fmt.Sprintf("Final Score: %d - %d", s.PlayerScore, s.OpponentScore), box.Foreground(tcell.ColorWhite))

	winnerStyle := box.Foreground(tcell.ColorGreen).Bold(true)
	if s.Draw {
		winnerStyle = box.Foreground(tcell.ColorWhite).Bold(true)
	} else if s.Winner == game.SideRight && s.Ruleset.AI() {
		winnerStyle = box.Foreground(tcell.ColorRed).Bold(true)
	}
	r.screen.DrawCentered(top+4, resultText(s), winnerStyle)

	if s.NewHighScore {
		r.screen.DrawCentered(top+6, fmt.Sprintf("NEW HIGH SCORE: %d", s.HighScore), box.Foreground(tcell.ColorFuchsia).Bold(true))
	} else {
		r.screen.DrawCentered(top+6, fmt.Sprintf("High score: %d", s.HighScore), box.Foreground(tcell.ColorGray))
	}
	r.screen.DrawCentered(top+8, "ENTER to replay | ESC for menu", box.Foreground(tcell.ColorGreen))
}

func sideLabels(r snapshot.Ruleset) (string, string) {
	if r == snapshot.RulesetTwoPlayer {
		return "P1", "P2"
	}
	return "YOU", "CPU"
}

func resultText(s snapshot.Snapshot) string {
	switch {
	case s.Draw:
		return "DRAW"
	case s.Ruleset == snapshot.RulesetTwoPlayer && s.Winner == game.SideRight:
		return "P2 WINS!"
	case s.Ruleset == snapshot.RulesetTwoPlayer:
		return "P1 WINS!"
	case s.Winner == game.SideRight:
		return "CPU WINS!"
	}
	return "YOU WIN!"
}

// formatClock renders a duration as m:ss, rounding up partial seconds
func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
