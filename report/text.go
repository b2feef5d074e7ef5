package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/hanoi/search"
	"github.com/katalvlaran/hanoi/tower"
)

// Palette for the text printer.
var (
	colorTitle   = lipgloss.Color("#2CD7C7")
	colorHeading = lipgloss.Color("#20B9B4")
	colorPeg     = lipgloss.Color("#1D9DA0")
	colorMuted   = lipgloss.Color("#2C4A54")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
)

type textStyles struct {
	plain   lipgloss.Style
	title   lipgloss.Style
	heading lipgloss.Style
	step    lipgloss.Style
	peg     lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	return textStyles{
		plain:   r.NewStyle(),
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		heading: r.NewStyle().Bold(true).Foreground(colorHeading),
		step:    r.NewStyle().Bold(true),
		peg:     r.NewStyle().Foreground(colorPeg),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorTitle),
		warning: r.NewStyle().Foreground(colorWarning),
		failure: r.NewStyle().Foreground(colorError),
	}
}

// Text prints runs as human-readable, optionally colored, console text.
type Text struct {
	w      io.Writer
	opts   options
	styles textStyles
	err    error // first write error; later writes are skipped
}

// NewText returns a Text printer writing to w.
func NewText(w io.Writer, opts ...Option) *Text {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := lipgloss.NewRenderer(w)
	if o.color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Text{w: w, opts: o, styles: newTextStyles(r)}
}

// Start prints the banner, the initial state and the goal state.
func (t *Text) Start(p *tower.Puzzle) error {
	banner := "Welcome to the Hanoi Tower Solver!"
	t.line(t.styles.title, banner)
	t.line(t.styles.muted, strings.Repeat("=", len(banner)))
	t.blank()

	t.line(t.styles.heading, "Initial State:")
	t.state(p.Initial())
	t.blank()

	t.line(t.styles.heading, "Goal State:")
	t.state(p.Goal())
	t.blank()

	return t.err
}

// Result prints one strategy run: outcome, path, move count and timing.
// A failed search and a zero-move solution are reported differently.
func (t *Text) Result(res *search.Result[tower.State]) error {
	t.line(t.styles.heading, fmt.Sprintf("Finding Solution (%s):", label(res.Strategy)))

	switch {
	case !res.Found():
		t.line(t.styles.failure, "Unfortunately, we have been unable to find a way to solve the problem.")
		if res.Limited {
			t.line(t.styles.warning, fmt.Sprintf("Search stopped after %d expanded states (limit reached).", res.Expanded))
		}
	case res.Moves() == 0:
		t.line(t.styles.success, "The initial state already matches the goal: no moves are required.")
	default:
		intro := fmt.Sprintf("By employing %s, a solution is found:", res.Strategy.Title())
		t.line(t.styles.success, intro)
		t.line(t.styles.muted, strings.Repeat("=", len(intro)))
		if t.opts.showPath {
			t.path(res.Path())
		}
	}

	if res.Found() {
		t.line(t.styles.plain, fmt.Sprintf("To solve the Hanoi Tower, the number of steps required: %d", res.Moves()))
	}
	t.line(t.styles.plain, fmt.Sprintf("Time Taken: %s", res.Elapsed))
	t.line(t.styles.muted, fmt.Sprintf("Expanded: %d, generated: %d, peak frontier: %d",
		res.Expanded, res.Generated, res.MaxFrontier))
	t.blank()

	return t.err
}

// Finish prints the closing line.
func (t *Text) Finish() error {
	t.line(t.styles.title, "Thank you for using the Hanoi Tower Solver. Have a great day!")

	return t.err
}

// path prints each state of a solution under a "Step i:" header, annotated
// with the move that produced it.
func (t *Text) path(states []tower.State) {
	for i, s := range states {
		header := fmt.Sprintf("Step %d:", i+1)
		if i > 0 {
			if m, ok := tower.Diff(states[i-1], s); ok {
				header += " " + m.String()
			}
		}
		t.line(t.styles.step, header)
		t.state(s)
		t.blank()
	}
}

func (t *Text) state(s tower.State) {
	for i := 0; i < s.NumPegs(); i++ {
		t.line(t.styles.peg, s.PegLine(i))
	}
}

func (t *Text) line(style lipgloss.Style, s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w, style.Render(s))
}

func (t *Text) blank() {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintln(t.w)
}
