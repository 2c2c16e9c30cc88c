package theme

import "git.lost.host/meutraa/eotk/internal/game"

type Theme interface {
	RenderNote(lane int, state game.State) string
	RenderHoldBody(lane int, state game.State) string
	RenderHitField(lane int, held bool, mistake bool) string
}
