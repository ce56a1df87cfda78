package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Environment variable names read by LoadDefaults
const (
	EnvPricingTables = "SPV_PRICING_TABLES"
	EnvBaseRate      = "SPV_BASE_RATE"
	EnvFormat        = "SPV_FORMAT"
)

// Defaults are CLI fallbacks taken from the environment
type Defaults struct {
	PricingTablesPath string
	BaseRate          *decimal.Decimal
	Format            string
}

// LoadDefaults reads an optional dotenv file into the process environment
// (existing variables win) and collects the SPV_* settings. A missing file
// is not an error.
func LoadDefaults(envFile string) (*Defaults, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	d := &Defaults{
		PricingTablesPath: os.Getenv(EnvPricingTables),
		Format:            os.Getenv(EnvFormat),
	}
	if s := os.Getenv(EnvBaseRate); s != "" {
		rate, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not a number", EnvBaseRate, s)
		}
		d.BaseRate = &rate
	}
	return d, nil
}
