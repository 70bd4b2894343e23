// SPDX-License-Identifier: MIT

package interactive

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#FFB3BA")
	mint   = lipgloss.Color("#A8E6CF")
	muted  = lipgloss.Color("#6B7280")
	white  = lipgloss.Color("#F9FAFB")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted)

	valueStyle = lipgloss.NewStyle().
			Foreground(white)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(mint)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)

// wheel is a coarse hue circle in the 256-color palette, red through magenta.
var wheel = []lipgloss.Color{
	"196", "202", "214", "226", "154", "46",
	"49", "51", "33", "21", "93", "201",
}

// hue picks the wheel color for an angle in [0, 2π).
func hue(angle float64) lipgloss.Color {
	k := int(angle / tau * float64(len(wheel)))
	if k < 0 {
		k = 0
	}
	if k >= len(wheel) {
		k = len(wheel) - 1
	}

	return wheel[k]
}
