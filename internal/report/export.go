// Package report produces the downloadable payoff report via an external
// rendering service. The engine knows nothing about the artifact's contents.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/plan"
)

// averagingMonths is how many leading schedule months feed the averaged
// payment figure sent to the report service.
const averagingMonths = 6

// AveragedMonthlyPayment returns the single payment figure the report
// service expects: the mean of the first six resolved funding amounts in
// schedule mode, or the fixed amount otherwise.
func AveragedMonthlyPayment(cfg domain.FundingConfig, debts []domain.AnnotatedDebt) decimal.Decimal {
	if cfg.Mode != domain.FundingSchedule {
		return domain.RoundMoney(cfg.FixedAmount)
	}

	provider := plan.NewProvider(cfg, debts)
	total := decimal.Zero
	for month := 1; month <= averagingMonths; month++ {
		total = total.Add(provider(month).FundingAmount)
	}
	return domain.RoundMoney(total.Div(decimal.NewFromInt(averagingMonths)))
}

// Exporter calls the external report service.
type Exporter struct {
	URL    string
	Client *http.Client
}

// NewExporter creates an exporter against the given service URL.
func NewExporter(url string) *Exporter {
	return &Exporter{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

type exportRequest struct {
	AverageMonthlyPayment decimal.Decimal `json:"averageMonthlyPayment"`
	Debts                 []domain.Debt   `json:"debts"`
}

// Export sends the averaged payment figure and the debt list to the service
// and returns the artifact bytes. A failure is surfaced to the caller as an
// error and has no effect on engine state.
func (e *Exporter) Export(ctx context.Context, config *domain.Configuration) ([]byte, error) {
	annotated := make([]domain.AnnotatedDebt, 0, len(config.Debts))
	for _, d := range config.Debts {
		annotated = append(annotated, domain.AnnotatedDebt{Debt: d})
	}

	payload, err := json.Marshal(exportRequest{
		AverageMonthlyPayment: AveragedMonthlyPayment(config.Funding, annotated),
		Debts:                 config.Debts,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding export request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building export request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("report export failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report service returned %s", resp.Status)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading report artifact: %w", err)
	}
	return artifact, nil
}
