package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/shopspring/decimal"
)

// Configuration is the complete input of a planning session: the flat set of
// fields the UI layer edits and the engine consumes.
type Configuration struct {
	Income  decimal.Decimal `yaml:"income" json:"income"`
	Bills   decimal.Decimal `yaml:"bills" json:"bills"`
	Goal    Goal            `yaml:"goal" json:"goal"`
	Debts   []Debt          `yaml:"debts" json:"debts"`
	Funding FundingConfig   `yaml:"funding" json:"funding"`

	// LastExportAt records the most recent successful report export.
	LastExportAt *time.Time `yaml:"last_export_at,omitempty" json:"lastExportAt,omitempty"`
}

// EnsureDebtIDs assigns a fresh unique id to every debt that lacks one.
// Legacy records persisted before ids existed load this way; ids are never
// reused, so collisions with existing debts are checked.
func EnsureDebtIDs(debts []Debt) {
	seen := make(map[string]bool, len(debts))
	for _, d := range debts {
		if d.ID != "" {
			seen[d.ID] = true
		}
	}
	for i := range debts {
		if debts[i].ID != "" {
			continue
		}
		id := NewDebtID()
		for seen[id] {
			id = NewDebtID()
		}
		seen[id] = true
		debts[i].ID = id
	}
}

// NewDebtID returns a random identifier for a new debt.
func NewDebtID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform source is broken;
		// fall back to a time-derived id rather than aborting.
		return "debt-" + hex.EncodeToString([]byte(time.Now().Format("150405.000000000")))
	}
	return "debt-" + hex.EncodeToString(buf)
}
