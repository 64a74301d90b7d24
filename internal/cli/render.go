// Package cli renders engine results for the terminal.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/feasibility"
)

var (
	ColorText   = lipgloss.Color("#FFFCF0")
	ColorMuted  = lipgloss.Color("#6F6E69")
	ColorGreen  = lipgloss.Color("#879A39")
	ColorOrange = lipgloss.Color("#DA702C")
	ColorRed    = lipgloss.Color("#D14D41")
	ColorBlue   = lipgloss.Color("#4385BE")
	ColorBorder = lipgloss.Color("#282726")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorGreen)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorOrange)

	riskStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorRed)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)
)

// RenderAssessment renders the feasibility verdict as a bordered panel.
func RenderAssessment(a feasibility.Assessment) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("REALITY CHECK"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Status:        "))
	b.WriteString(statusStyle(a.Status).Render(strings.ToUpper(string(a.Status))))
	b.WriteString("\n")

	writeMoney := func(label string, v decimal.Decimal) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", label)))
		b.WriteString(valueStyle.Render("$" + v.StringFixed(2)))
		b.WriteString("\n")
	}

	writeMoney("Free cash:", a.FreeCash)
	writeMoney("Minimums:", a.MinimumsTotal)
	writeMoney("Buffer:", a.Buffer)

	if a.AtRisk {
		b.WriteString("\n")
		if a.BillsShortfall.GreaterThan(decimal.Zero) {
			b.WriteString(riskStyle.Render(
				fmt.Sprintf("Income falls $%s short of bills", a.BillsShortfall.StringFixed(2))))
			b.WriteString("\n")
		}
		if a.ScheduleInvalid {
			b.WriteString(riskStyle.Render("Month 1 allocations exceed month 1 funding"))
			b.WriteString("\n")
		}
		writeMoney("Income needed:", a.IncomeRequired)
		writeMoney("Payment needed:", a.PaymentRequired)
		b.WriteString("\n")
		b.WriteString(warnStyle.Render("Simulation is blocked until the situation is feasible."))
		b.WriteString("\n")
	}

	if a.MonthOne != nil && !a.ScheduleInvalid {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Month 1:       "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("$%s required, $%s unassigned",
			a.MonthOne.RequiredSum.StringFixed(2), a.MonthOne.Unassigned.StringFixed(2))))
		b.WriteString("\n")
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func statusStyle(s feasibility.Status) lipgloss.Style {
	switch s {
	case feasibility.StatusAtRisk:
		return riskStyle
	case feasibility.StatusTight:
		return warnStyle
	default:
		return okStyle
	}
}
