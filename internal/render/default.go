package render

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"git.lost.host/meutraa/eotk/internal/game"
	"git.lost.host/meutraa/eotk/internal/theme"
)

const (
	notesTop    = 2
	fieldLeft   = 4
	laneSpacing = 4
	menuTop     = 4
	menuLeft    = 6
)

// DefaultRenderer batches ANSI escapes into a single write per frame.
type DefaultRenderer struct {
	Theme theme.Theme

	buffer       strings.Builder
	restoreState *term.State
	rows, cols   int
	names        []string
}

func (r *DefaultRenderer) Init() error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if nil != err {
		return errors.Wrap(err, "unable to get terminal size")
	}
	r.rows, r.cols = rows, cols

	state, err := term.MakeRaw(int(os.Stdout.Fd()))
	if nil != err {
		return errors.Wrap(err, "unable to set raw mode")
	}
	r.restoreState = state

	fmt.Printf("%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Printf("%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return term.Restore(int(os.Stdout.Fd()), r.restoreState)
}

func (r *DefaultRenderer) fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) Refresh() {
	os.Stdout.WriteString(r.buffer.String())
	r.buffer.Reset()
}

func (r *DefaultRenderer) laneCol(lane int) int {
	return fieldLeft + 2 + lane*laneSpacing
}

func (r *DefaultRenderer) fieldRight() int {
	return r.laneCol(game.LaneCount-1) + 2
}

func (r *DefaultRenderer) hitRow() int {
	return r.rows - 4
}

func (r *DefaultRenderer) sideCol() int {
	return r.fieldRight() + 8
}

func (r *DefaultRenderer) ClearConsole() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) ClearUI() {
	r.buffer.WriteString("\033[2J")
	r.names = nil
}

func (r *DefaultRenderer) ClearUIBottom() {
	blank := strings.Repeat(" ", r.cols)
	r.fill(r.rows-2, 1, blank)
	r.fill(r.rows-1, 1, blank)
}

func (r *DefaultRenderer) ClearNotesArea() {
	blank := strings.Repeat(" ", r.fieldRight()-fieldLeft)
	for row := notesTop; row <= r.hitRow(); row++ {
		r.fill(row, fieldLeft, blank)
	}
}

func (r *DefaultRenderer) DrawUIBorder() {
	for row := notesTop; row <= r.hitRow()+1; row++ {
		r.fill(row, fieldLeft-1, "│")
		r.fill(row, r.fieldRight()+1, "│")
	}
	top := strings.Repeat("─", r.fieldRight()-fieldLeft+1)
	r.fill(notesTop-1, fieldLeft, top)
	r.fill(r.hitRow()+2, fieldLeft, top)
}

func (r *DefaultRenderer) DrawSelectUI(names []string) {
	r.names = names
	r.fill(notesTop, menuLeft, "Select a level")
	for i, name := range names {
		r.fill(menuTop+i, menuLeft, name)
	}
}

func (r *DefaultRenderer) UpdateSelectUI(index int, highScore int) {
	for i := range r.names {
		r.fill(menuTop+i, menuLeft-2, " ")
	}
	r.fill(menuTop+index, menuLeft-2, ">")
	r.fill(menuTop+len(r.names)+2, menuLeft, fmt.Sprintf("High score: %8v", highScore))
}

func (r *DefaultRenderer) DrawConfirmedUI(index int) {
	if index < len(r.names) {
		r.fill(menuTop+index, menuLeft, "\033[7m"+r.names[index]+"\033[0m")
	}
}

func (r *DefaultRenderer) DrawUI(songName string, songLength int) {
	r.DrawUIBorder()
	col := r.sideCol()
	r.fill(notesTop, col, songName)
	r.fill(notesTop+1, col, fmt.Sprintf("    Length: %8v", formatTime(songLength)))
}

func (r *DefaultRenderer) noteRow(seconds, laneLengthSeconds, t float64) int {
	progress := 1 - (seconds-t)/laneLengthSeconds
	return notesTop + int(math.Round(progress*float64(r.hitRow()-notesTop)))
}

func (r *DefaultRenderer) DrawNote(n *game.Note, laneLengthSeconds float64, t float64) {
	col := r.laneCol(n.Lane)
	startRow := r.noteRow(n.StartSeconds, laneLengthSeconds, t)
	endRow := r.noteRow(n.EndSeconds, laneLengthSeconds, t)

	// The end of a note is later in time, so it sits above the head.
	for row := endRow; row < startRow; row++ {
		if row >= notesTop && row <= r.hitRow() {
			r.fill(row, col, r.Theme.RenderHoldBody(n.Lane, n.State))
		}
	}
	if startRow >= notesTop && startRow <= r.hitRow() {
		r.fill(startRow, col, r.Theme.RenderNote(n.Lane, n.State))
	}
}

func (r *DefaultRenderer) DrawBottomBar(held []bool, mistakes []bool) {
	row := r.hitRow() + 1
	for lane := 0; lane < game.LaneCount; lane++ {
		r.fill(row, r.laneCol(lane), r.Theme.RenderHitField(lane, held[lane], mistakes[lane]))
	}
}

func (r *DefaultRenderer) UpdateUI(elapsed int, score int, combo uint, fullCombo bool, missed uint, highScore int, newHighScore bool) {
	col := r.sideCol()
	comboSuffix := "  "
	if fullCombo {
		comboSuffix = "FC"
	}
	scoreSuffix := "   "
	if newHighScore {
		scoreSuffix = "NEW"
	}
	r.fill(notesTop+3, col, fmt.Sprintf("      Time: %8v", formatTime(elapsed)))
	r.fill(notesTop+4, col, fmt.Sprintf("     Score: %8v %v", score, scoreSuffix))
	r.fill(notesTop+5, col, fmt.Sprintf("     Combo: %8v %v", combo, comboSuffix))
	r.fill(notesTop+6, col, fmt.Sprintf("    Missed: %8v", missed))
	r.fill(notesTop+7, col, fmt.Sprintf("      Best: %8v", highScore))
}

func (r *DefaultRenderer) DrawResults(score int, highScore bool, accuracy float64, hit uint, total uint, maxCombo uint, missed uint) {
	col := menuLeft
	r.fill(notesTop, col, "Results")
	r.fill(menuTop, col, fmt.Sprintf("     Score: %8v", score))
	r.fill(menuTop+1, col, fmt.Sprintf("  Accuracy: %7.1f%%", accuracy*100))
	r.fill(menuTop+2, col, fmt.Sprintf("       Hit: %5v/%v", hit, total))
	r.fill(menuTop+3, col, fmt.Sprintf(" Max combo: %8v", maxCombo))
	r.fill(menuTop+4, col, fmt.Sprintf("    Missed: %8v", missed))
	if highScore {
		r.fill(menuTop+6, col, "\033[1;33mNew high score!\033[0m")
	}
}

func (r *DefaultRenderer) UpdateResults(showPrompt bool) {
	prompt := "Press confirm to continue"
	if !showPrompt {
		prompt = strings.Repeat(" ", len(prompt))
	}
	r.fill(r.rows-2, menuLeft, prompt)
}

func formatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
