// SPDX-License-Identifier: MIT

package interactive

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// visibleClasses is how many diagram rows the class list shows at once.
const visibleClasses = 8

// View implements tea.Model.
func (m Model) View() string {
	if m.done {
		return ""
	}
	sel := m.Selection()

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("H1 persistence"),
		diagramPlot(m.view.Diagram, 28, 10, m.cursor, sel.CocycleIdx),
		"",
		m.classList(sel.CocycleIdx),
	)

	pw, ph := m.plotSize()
	right := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Circular coordinate"),
		m.proj.render(pw, ph, sel.Theta, sel.Phi, m.angles),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left),
		panelStyle.Render(right),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		m.statusLine(),
		m.help.View(m.keys),
	)
}

// plotSize leaves room for the diagram panel, borders, status and help.
func (m Model) plotSize() (int, int) {
	w := max(m.width-40, 20)
	h := max(m.height-6, 10)

	return w, h
}

func (m Model) classList(selected []int) string {
	dgm := m.view.Diagram
	if len(dgm) == 0 {
		return labelStyle.Render("no H1 classes")
	}
	lo := max(0, min(m.cursor-visibleClasses/2, len(dgm)-visibleClasses))
	hi := min(len(dgm), lo+visibleClasses)

	var b strings.Builder
	for k := lo; k < hi; k++ {
		p := dgm[k]
		mark := "[ ]"
		if slices.Contains(selected, k) {
			mark = selectedStyle.Render("[x]")
		}
		death := "∞"
		if !p.Essential() {
			death = fmt.Sprintf("%.3f", p.Death)
		}
		line := fmt.Sprintf("%s #%-3d %.3f → %s", mark, k, p.Birth, death)
		if k == m.cursor {
			line = cursorStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if k < hi-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func (m Model) statusLine() string {
	sel := m.Selection()
	field := func(name, value string) string {
		return labelStyle.Render(name+" ") + valueStyle.Render(value)
	}
	parts := []string{
		field("perc", fmt.Sprintf("%.2f", sel.Perc)),
		field("kernel", sel.PartUnity.String()),
		field("θ", fmt.Sprintf("%.0f°", sel.Theta*180/math.Pi)),
		field("φ", fmt.Sprintf("%.0f°", sel.Phi*180/math.Pi)),
	}
	switch {
	case m.loading:
		parts = append(parts, m.spinner.View()+labelStyle.Render(" computing"))
	case m.err != nil:
		parts = append(parts, errorStyle.Render(m.err.Error()))
	}

	return strings.Join(parts, "  ")
}
