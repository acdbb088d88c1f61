package tracepp

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Palette is a small Theme-plus-per-purpose-lipgloss.Style arrangement,
// narrowed to the handful of semantic colors a search trace needs.
var (
	colorGoal      = lipgloss.Color("#2196F3") // Info blue
	colorSatisfied = lipgloss.Color("#8BC34A") // Success lime green
	colorCandidate = lipgloss.Color("#FFC107") // Warning yellow
	colorAccepted  = lipgloss.Color("#8BC34A")
	colorExhausted = lipgloss.Color("#e53935") // Destructive red
	colorDepth     = lipgloss.Color("#d6dae0") // Muted
)

// Styles holds the per-EventKind lipgloss.Style a text render applies,
// built once per Render call the way NewStyles(theme) builds a Styles
// value for a chosen theme.
type Styles struct {
	Goal       lipgloss.Style
	Satisfied  lipgloss.Style
	Literals   lipgloss.Style
	Candidate  lipgloss.Style
	Accepted   lipgloss.Style
	Exhausted  lipgloss.Style
	DepthGuide lipgloss.Style
}

// NewStyles returns the fixed Styles set a trace render uses.
func NewStyles() Styles {
	return Styles{
		Goal:       lipgloss.NewStyle().Foreground(colorGoal).Bold(true),
		Satisfied:  lipgloss.NewStyle().Foreground(colorSatisfied),
		Literals:   lipgloss.NewStyle().Foreground(colorDepth).Italic(true),
		Candidate:  lipgloss.NewStyle().Foreground(colorCandidate),
		Accepted:   lipgloss.NewStyle().Foreground(colorAccepted).Bold(true),
		Exhausted:  lipgloss.NewStyle().Foreground(colorExhausted).Bold(true),
		DepthGuide: lipgloss.NewStyle().Foreground(colorDepth),
	}
}

// RenderText renders r as a colorized, indented-by-depth trace suitable
// for a terminal. A nil or empty Recorder renders an empty string.
func RenderText(r *Recorder) string {
	if r == nil || len(r.Events) == 0 {
		return ""
	}
	styles := NewStyles()
	var b strings.Builder
	for _, e := range r.Events {
		guide := styles.DepthGuide.Render(strings.Repeat("  ", e.Depth) + "└─")
		b.WriteString(guide)
		b.WriteByte(' ')
		b.WriteString(styleLine(styles, e))
		b.WriteByte('\n')
	}
	return b.String()
}

func styleLine(styles Styles, e Event) string {
	switch e.Kind {
	case EventGoalPursued:
		return styles.Goal.Render("pursuing: " + e.Detail)
	case EventGoalSatisfied:
		return styles.Satisfied.Render("satisfied: " + e.Detail)
	case EventLiteralsUnsatisfied:
		return styles.Literals.Render("unsatisfied literals: " + e.Detail)
	case EventCandidateTried:
		return styles.Candidate.Render("trying " + actionCall(e))
	case EventCandidateAccepted:
		return styles.Accepted.Render("accepted " + actionCall(e))
	case EventSearchExhausted:
		return styles.Exhausted.Render("exhausted: " + e.Detail)
	default:
		return string(e.Kind) + ": " + e.Detail
	}
}

func actionCall(e Event) string {
	if len(e.Args) == 0 {
		return fmt.Sprintf("(%s)", e.ActionID)
	}
	return fmt.Sprintf("(%s %s)", e.ActionID, strings.Join(e.Args, " "))
}

// RenderYAML renders r as a YAML document (--trace-format=yaml), for
// tooling to consume the same trace a terminal would otherwise color.
func RenderYAML(r *Recorder) (string, error) {
	if r == nil {
		r = New()
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Render dispatches on format ("text" or "yaml"), matching internal/config's
// LoggingConfig.TraceFormat field.
func Render(r *Recorder, format string) (string, error) {
	switch format {
	case "", "text":
		return RenderText(r), nil
	case "yaml":
		return RenderYAML(r)
	default:
		return "", fmt.Errorf("tracepp: unknown trace format %q", format)
	}
}
