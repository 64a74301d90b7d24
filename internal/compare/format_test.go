package compare

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

func testComparison(t *testing.T) *Comparison {
	t.Helper()
	engine := NewEngine()
	c, err := engine.Compare(context.Background(), healthyInput(samePickDebts()))
	require.NoError(t, err)
	return c
}

func TestTableFormatter(t *testing.T) {
	c := testComparison(t)
	tf := &TableFormatter{}

	out := tf.Format(c)

	assert.Contains(t, out, "DEBT PAYOFF STRATEGY COMPARISON")
	assert.Contains(t, out, "snowball *", "winner is marked")
	assert.Contains(t, out, "avalanche")
	assert.Contains(t, out, "Goal: speed")
	assert.Contains(t, out, "Visa")
	assert.Contains(t, out, "Car")
}

func TestTableFormatter_ThousandsSeparators(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "1,234,567.89", tf.formatDecimal(d("1234567.89")))
	assert.Equal(t, "999.00", tf.formatDecimal(d("999")))
	assert.Equal(t, "-12,000.50", tf.formatDecimal(d("-12000.5")))
	assert.Equal(t, "0.00", tf.formatDecimal(d("0")))
}

func TestJSONFormatter(t *testing.T) {
	c := testComparison(t)
	jf := &JSONFormatter{Pretty: true}

	out, err := jf.Format(c)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "snowball", decoded["winner"])
	assert.Equal(t, "speed", decoded["goal"])
	assert.Contains(t, decoded, "snowball")
	assert.Contains(t, decoded, "avalanche")
}

func TestCSVFormatter(t *testing.T) {
	c := testComparison(t)
	cf := &CSVFormatter{}

	out, err := cf.Format(c)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus one row per month per strategy.
	wantRows := 1 + len(c.Snowball.Timeline) + len(c.Avalanche.Timeline)
	assert.Len(t, lines, wantRows)
	assert.True(t, strings.HasPrefix(lines[0], "Strategy,Month,Funding"))
	assert.True(t, strings.HasPrefix(lines[1], "snowball,1,1500.00"))
}

func TestGenerateRecommendations_TiedRuns(t *testing.T) {
	c := testComparison(t)

	require.NotEmpty(t, c.Recommendations)
	assert.Contains(t, c.Recommendations[0], "same payoff")
}

func TestGenerateRecommendations_DivergingRuns(t *testing.T) {
	engine := NewEngine()
	in := healthyInput(divergingDebts())
	in.Goal = domain.GoalInterest
	c, err := engine.Compare(context.Background(), in)
	require.NoError(t, err)

	joined := strings.Join(c.Recommendations, "\n")
	assert.Contains(t, joined, "Least interest: avalanche")
}
