package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Config struct {
	AppEnv   string
	LogLevel string

	ShippingFee decimal.Decimal
	Currency    currency.Unit
}

func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		AppEnv:   getEnv(getenv, "APP_ENV", "dev"),
		LogLevel: getEnv(getenv, "LOG_LEVEL", "info"),
	}

	fee, err := decimal.NewFromString(getEnv(getenv, "CHECKOUT_SHIPPING_FEE", "30"))
	if err != nil {
		return Config{}, fmt.Errorf("CHECKOUT_SHIPPING_FEE: %w", err)
	}
	if fee.IsNegative() {
		return Config{}, fmt.Errorf("CHECKOUT_SHIPPING_FEE is negative")
	}
	cfg.ShippingFee = fee

	code := getEnv(getenv, "CHECKOUT_CURRENCY", "USD")
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Config{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}
	cfg.Currency = unit

	return cfg, nil
}

func getEnv(getenv func(string) string, key, def string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return def
}
