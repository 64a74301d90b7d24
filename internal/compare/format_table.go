package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// TableFormatter formats a comparison as a console table.
type TableFormatter struct{}

// Format generates a formatted table comparing the two strategy runs.
func (tf *TableFormatter) Format(c *Comparison) string {
	var sb strings.Builder

	sb.WriteString("DEBT PAYOFF STRATEGY COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("Goal: %s    Winner: %s\n", c.Goal, c.Winner))
	sb.WriteString("\n")

	nameWidth := 12
	numWidth := 16

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		nameWidth, "Strategy",
		numWidth, "Months",
		numWidth, "Total Interest",
		numWidth, "Paid Off"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(tf.formatRow(c.Snowball, nameWidth, numWidth, c.Winner == domain.StrategySnowball))
	sb.WriteString(tf.formatRow(c.Avalanche, nameWidth, numWidth, c.Winner == domain.StrategyAvalanche))
	sb.WriteString(strings.Repeat("=", 72) + "\n")

	sb.WriteString("\nDIFFERENCES\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("  Months:   %d\n", c.MonthsDiff))
	sb.WriteString(fmt.Sprintf("  Interest: $%s\n", tf.formatDecimal(c.InterestDiff)))

	winner := c.WinnerResult()
	if len(winner.Debts) > 0 {
		sb.WriteString(fmt.Sprintf("\nPER-DEBT PAYOFF (%s)\n", winner.Strategy))
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, d := range winner.Debts {
			sb.WriteString(fmt.Sprintf("  %-24s %5s%%  month %3d  $%s interest\n",
				d.Name, d.AnnualRatePercent.StringFixed(2), d.PayoffMonth, tf.formatDecimal(d.InterestPaid)))
		}
	}

	if len(c.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, r := range c.Recommendations {
			sb.WriteString("  - " + r + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(run *domain.RunResult, nameWidth, numWidth int, winner bool) string {
	name := string(run.Strategy)
	if winner {
		name += " *"
	}
	paidOff := "yes"
	if !run.PaidOff() {
		paidOff = "no (capped)"
	}
	return fmt.Sprintf("%-*s %*d %*s %*s\n",
		nameWidth, name,
		numWidth, run.MonthsToDebtFree,
		numWidth, "$"+tf.formatDecimal(run.TotalInterest),
		numWidth, paidOff)
}

// formatDecimal adds thousands separators to a 2-decimal money string.
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	var out strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(ch)
	}

	result := out.String()
	if len(parts) == 2 {
		result += "." + parts[1]
	}
	if negative {
		result = "-" + result
	}
	return result
}
