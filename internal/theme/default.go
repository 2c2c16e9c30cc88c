package theme

import (
	"fmt"

	"git.lost.host/meutraa/eotk/internal/game"
)

type Color struct {
	R, G, B uint8
}

type DefaultTheme struct {
}

const (
	noteSym    = "⬤"
	pressedSym = "◉"
	holdSym    = "│"
	missSym    = "⨯"
	barSym     = "─"
	heldSym    = "━"
	mistakeSym = "╳"
)

var laneColors = [game.LaneCount]Color{
	{236, 30, 0},   // red
	{0, 118, 236},  // blue
	{236, 195, 0},  // yellow
	{106, 0, 236},  // purple
}

var (
	missedColor  = Color{106, 106, 106}
	mistakeColor = Color{236, 30, 0}
)

func colored(c Color, sym string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, sym)
}

func (t *DefaultTheme) RenderNote(lane int, state game.State) string {
	switch state {
	case game.StateMissed:
		return colored(missedColor, missSym)
	case game.StatePressed:
		return colored(laneColors[lane], pressedSym)
	}
	return colored(laneColors[lane], noteSym)
}

func (t *DefaultTheme) RenderHoldBody(lane int, state game.State) string {
	if state == game.StateMissed {
		return colored(missedColor, holdSym)
	}
	return colored(laneColors[lane], holdSym)
}

func (t *DefaultTheme) RenderHitField(lane int, held bool, mistake bool) string {
	if mistake {
		return colored(mistakeColor, mistakeSym)
	}
	if held {
		return colored(laneColors[lane], heldSym)
	}
	return barSym
}
