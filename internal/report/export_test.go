package report

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/dpgo/internal/domain"
	"github.com/rgehrsitz/dpgo/internal/minimum"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestAveragedMonthlyPayment_FixedMode(t *testing.T) {
	got := AveragedMonthlyPayment(domain.FundingConfig{
		Mode:        domain.FundingFixed,
		FixedAmount: d("1500"),
	}, nil)

	assert.True(t, got.Equal(d("1500")))
}

func TestAveragedMonthlyPayment_ScheduleMode(t *testing.T) {
	debts := minimum.Annotate([]domain.Debt{
		{ID: "cc", Type: domain.DebtTypeCreditCard, Balance: d("4000"), AnnualRatePercent: d("29.99")},
	})
	cfg := domain.FundingConfig{
		Mode: domain.FundingSchedule,
		Schedule: []domain.ScheduleRow{
			{Month: 1, Amount: d("1000")},
			{Month: 2, Amount: d("1300")},
		},
	}

	// Months 1..6 resolve to 1000, 1300, 1300, 1300, 1300, 1300.
	got := AveragedMonthlyPayment(cfg, debts)
	assert.True(t, got.Equal(d("1250")), "got %s", got)
}

func TestExport(t *testing.T) {
	artifact := []byte("%PDF-1.7 fake artifact")
	var received exportRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		_, _ = w.Write(artifact)
	}))
	defer server.Close()

	cfg := &domain.Configuration{
		Debts: []domain.Debt{
			{ID: "cc", Name: "Visa", Type: domain.DebtTypeCreditCard, Balance: d("4000"), AnnualRatePercent: d("29.99")},
		},
		Funding: domain.FundingConfig{Mode: domain.FundingFixed, FixedAmount: d("1500")},
	}

	exporter := NewExporter(server.URL)
	got, err := exporter.Export(context.Background(), cfg)

	require.NoError(t, err)
	assert.Equal(t, artifact, got)
	assert.True(t, received.AverageMonthlyPayment.Equal(d("1500")))
	require.Len(t, received.Debts, 1)
	assert.Equal(t, "cc", received.Debts[0].ID)
}

func TestExport_ServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	exporter := NewExporter(server.URL)
	_, err := exporter.Export(context.Background(), &domain.Configuration{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestExport_Unreachable(t *testing.T) {
	exporter := NewExporter("http://127.0.0.1:1/export")
	_, err := exporter.Export(context.Background(), &domain.Configuration{})
	assert.Error(t, err)
}
