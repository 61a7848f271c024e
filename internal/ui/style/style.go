// Package style provides the colors and icons shared by grepr's diagnostics.
package style

import "github.com/charmbracelet/lipgloss"

// Color is a hex color understood by lipgloss and termenv.
type Color = lipgloss.Color

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)
