package console

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the console uses.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

type styles struct {
	banner  lipgloss.Style
	title   lipgloss.Style
	die     lipgloss.Style
	index   lipgloss.Style
	filled  lipgloss.Style
	open    lipgloss.Style
	preview lipgloss.Style
	total   lipgloss.Style
	notice  lipgloss.Style
	errText lipgloss.Style
	prompt  lipgloss.Style
	gold    lipgloss.Style
	silver  lipgloss.Style
	bronze  lipgloss.Style
	winner  lipgloss.Style
}

// newStyles binds every style to r so output written to a non-terminal
// carries no escape sequences.
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		banner: r.NewStyle().
			Bold(true).
			Foreground(colorBrand).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorMauve).
			Padding(0, 8),
		title:   r.NewStyle().Bold(true).Underline(true).Foreground(colorFocus),
		die:     r.NewStyle().Bold(true).Foreground(colorText),
		index:   r.NewStyle().Foreground(colorOverlay1),
		filled:  r.NewStyle().Foreground(colorText),
		open:    r.NewStyle().Foreground(colorOverlay1),
		preview: r.NewStyle().Foreground(colorInfo),
		total:   r.NewStyle().Bold(true).Foreground(colorPeach),
		notice:  r.NewStyle().Foreground(colorInfo),
		errText: r.NewStyle().Foreground(colorError),
		prompt:  r.NewStyle().Foreground(colorFocus),
		gold:    r.NewStyle().Bold(true).Foreground(colorWarning),
		silver:  r.NewStyle().Bold(true).Foreground(colorText),
		bronze:  r.NewStyle().Bold(true).Foreground(colorPeach),
		winner:  r.NewStyle().Bold(true).Foreground(colorSuccess),
	}
}
