// Package config parses and validates planning input files.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/dpgo/internal/domain"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Debts written before ids existed get fresh ones on load.
	domain.EnsureDebtIDs(config.Debts)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration and fills
// defaults (goal, funding mode) where the file left them out.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.Income.IsNegative() {
		return fmt.Errorf("income cannot be negative")
	}
	if config.Bills.IsNegative() {
		return fmt.Errorf("bills cannot be negative")
	}

	if config.Goal == "" {
		config.Goal = domain.GoalSpeed
	}
	switch config.Goal {
	case domain.GoalSpeed, domain.GoalInterest, domain.GoalStick:
	default:
		return fmt.Errorf("goal must be 'speed', 'interest' or 'stick', got %q", config.Goal)
	}

	if len(config.Debts) == 0 {
		return fmt.Errorf("no debts provided")
	}
	seen := make(map[string]bool, len(config.Debts))
	for i := range config.Debts {
		if err := ip.validateDebt(i, &config.Debts[i]); err != nil {
			return fmt.Errorf("debt %d (%s) validation failed: %w", i, config.Debts[i].Name, err)
		}
		if seen[config.Debts[i].ID] {
			return fmt.Errorf("duplicate debt id %q", config.Debts[i].ID)
		}
		seen[config.Debts[i].ID] = true
	}

	if err := ip.validateFunding(&config.Funding, seen); err != nil {
		return fmt.Errorf("funding validation failed: %w", err)
	}

	return nil
}

// validateDebt validates a single debt record.
func (ip *InputParser) validateDebt(index int, debt *domain.Debt) error {
	if debt.Name == "" {
		return fmt.Errorf("name is required")
	}
	if debt.Type == "" {
		debt.Type = domain.DebtTypeOther
	}
	if debt.Balance.IsNegative() {
		return fmt.Errorf("balance cannot be negative")
	}
	if debt.AnnualRatePercent.IsNegative() {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if debt.AnnualRatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("annual rate must be at most 100%%, got %s%%", debt.AnnualRatePercent.StringFixed(2))
	}
	if debt.MinimumFloorEnabled && debt.MinimumFloorAmount.IsNegative() {
		return fmt.Errorf("minimum floor amount cannot be negative")
	}
	return nil
}

// validateFunding validates the funding configuration. knownDebts holds the
// set of valid debt ids for allocation references.
func (ip *InputParser) validateFunding(funding *domain.FundingConfig, knownDebts map[string]bool) error {
	if funding.Mode == "" {
		funding.Mode = domain.FundingFixed
	}

	switch funding.Mode {
	case domain.FundingFixed:
		if funding.FixedAmount.IsNegative() {
			return fmt.Errorf("fixed amount cannot be negative")
		}
		return nil

	case domain.FundingSchedule:
		if len(funding.Schedule) == 0 {
			return fmt.Errorf("schedule mode requires at least one schedule row")
		}
		months := make(map[int]bool, len(funding.Schedule))
		for i, row := range funding.Schedule {
			if row.Month < 1 {
				return fmt.Errorf("schedule row %d: month must be at least 1, got %d", i, row.Month)
			}
			if months[row.Month] {
				return fmt.Errorf("schedule row %d: duplicate month %d", i, row.Month)
			}
			months[row.Month] = true
			if row.Amount.IsNegative() {
				return fmt.Errorf("schedule row %d: amount cannot be negative", i)
			}
			for id, alloc := range row.Allocations {
				if !knownDebts[id] {
					return fmt.Errorf("schedule row %d: allocation references unknown debt %q", i, id)
				}
				if alloc.IsNegative() {
					return fmt.Errorf("schedule row %d: allocation for %q cannot be negative", i, id)
				}
			}
		}
		return nil

	default:
		return fmt.Errorf("mode must be 'fixed' or 'schedule', got %q", funding.Mode)
	}
}
