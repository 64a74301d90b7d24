package compare

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// CSVFormatter formats the winning run's timeline as CSV, one row per month.
type CSVFormatter struct{}

// Format generates CSV output for a comparison.
func (cf *CSVFormatter) Format(c *Comparison) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Strategy",
		"Month",
		"Funding",
		"Required Sum",
		"Unassigned",
		"Interest",
		"Interest To Date",
		"Required Paid",
		"Discretionary Paid",
		"Remaining Balance",
		"Target Debt",
		"Invalid",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, run := range []*domain.RunResult{c.Snowball, c.Avalanche} {
		for _, entry := range run.Timeline {
			row := []string{
				string(run.Strategy),
				strconv.Itoa(entry.Month),
				entry.FundingAmount.StringFixed(2),
				entry.RequiredSum.StringFixed(2),
				entry.Unassigned.StringFixed(2),
				entry.InterestAccrued.StringFixed(2),
				entry.InterestToDate.StringFixed(2),
				entry.RequiredPaid.StringFixed(2),
				entry.DiscretionaryPaid.StringFixed(2),
				entry.TotalBalance.StringFixed(2),
				entry.TargetDebtName,
				strconv.FormatBool(entry.Invalid),
			}
			if err := writer.Write(row); err != nil {
				return "", err
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}
