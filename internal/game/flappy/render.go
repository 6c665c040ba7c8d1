package flappy

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBodyChar   = '●'
	BirdLevelChar  = '▶'
	BirdRiseChar   = '◥'
	BirdFallChar   = '◢'
	PipeChar       = '█'
	PipeCapTop     = '▄'
	PipeCapBottom  = '▀'
	GroundTopChar  = '═'
	GroundFillChar = '░'
)

// Status prompts
const (
	IdleTitle        = "Click or SPACE to start"
	IdleSubtitle     = "SPACE to flap"
	GameOverTitle    = "Game Over!"
	GameOverSubtitle = "Click or SPACE to restart"
)

// birdTiltDegrees is the pitch beyond which the bird is drawn rising or falling.
const birdTiltDegrees = 10

// ScoreText formats the HUD score readout.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Render draws the world scaled onto dst, then the HUD and status prompt.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sx := float64(dst.Width()) / s.cfg.World.Width
	sy := float64(dst.Height()) / s.cfg.World.Height

	for _, p := range s.pipes {
		drawPipe(dst, p, sx, sy)
	}

	ground := core.NewBox(0, s.cfg.Ground.Y, s.cfg.World.Width, s.cfg.Ground.Height).Scale(sx, sy)
	dst.DrawRect(ground, GroundFillChar, core.ColorOrange)
	dst.DrawHLine(0, ground.Y, dst.Width(), GroundTopChar, core.ColorYellow)

	s.drawBird(dst, sx, sy)

	dst.DrawText(1, 0, " "+ScoreText(s.score)+" ", core.ColorWhite)

	switch s.phase {
	case PhaseIdle:
		drawCenteredMessage(dst, IdleTitle, IdleSubtitle)
	case PhaseGameOver:
		drawCenteredMessage(dst, GameOverTitle, GameOverSubtitle)
	}
}

// drawPipe fills the pipe and marks the end facing the gap with a cap row.
func drawPipe(dst *core.Screen, p *Pipe, sx, sy float64) {
	r := p.Box().Scale(sx, sy)
	dst.DrawRect(r, PipeChar, core.ColorGreen)

	if p.Orientation() == OrientationTop {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorBrightGreen)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorBrightGreen)
	}
}

func (s *Session) drawBird(dst *core.Screen, sx, sy float64) {
	r := s.bird.Box().Scale(sx, sy)

	color := core.ColorBrightYellow
	if s.bird.Tinted() {
		color = core.ColorBrightRed
	}

	dst.DrawRect(r, BirdBodyChar, color)
	dst.SetColored(r.Right()-1, r.Y, birdHead(s.bird.Angle()), color)
}

// birdHead picks the head glyph for a pitch angle.
func birdHead(angle float64) rune {
	switch {
	case angle < -birdTiltDegrees:
		return BirdRiseChar
	case angle > birdTiltDegrees:
		return BirdFallChar
	default:
		return BirdLevelChar
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorWhite)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorGray)
}
