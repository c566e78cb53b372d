// Package config provides configuration loading and validation for the service.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultFormzBaseURL is the production document-service API root.
	DefaultFormzBaseURL = "https://api.goformz.com/v1"
	// DefaultShiftcareBaseURL is the production scheduling UI root.
	DefaultShiftcareBaseURL = "https://us.shiftcare.com"
	// DefaultPort is the HTTP listen port.
	DefaultPort = 8080
	// DefaultListLimit is the recent-documents page size.
	DefaultListLimit = 50
)

// Config holds the runtime configuration, sourced from the environment.
// GoFormz credentials select the authentication scheme: with a client secret
// present the client performs an OAuth client-credentials exchange, without
// one the client ID is used as a static bearer token.
type Config struct {
	Port int `validate:"min=1,max=65535"`

	FormzBaseURL      string `validate:"required,url"`
	FormzClientID     string `validate:"required"`
	FormzClientSecret string

	ShiftcareBaseURL string `validate:"required,url"`
	ShiftcareUser    string `validate:"required"`
	ShiftcarePass    string `validate:"required"`

	Headless  bool
	ListLimit int `validate:"min=1,max=200"`
	Verbose   bool
}

// FromEnv builds a Config from environment variables, applying defaults for
// everything except credentials.
func FromEnv() *Config {
	return &Config{
		Port:              envInt("PORT", DefaultPort),
		FormzBaseURL:      envString("GOFORMZ_BASE_URL", DefaultFormzBaseURL),
		FormzClientID:     os.Getenv("GOFORMZ_CLIENT_ID"),
		FormzClientSecret: os.Getenv("GOFORMZ_CLIENT_SECRET"),
		ShiftcareBaseURL:  envString("SHIFTCARE_BASE_URL", DefaultShiftcareBaseURL),
		ShiftcareUser:     os.Getenv("SHIFTCARE_USERNAME"),
		ShiftcarePass:     os.Getenv("SHIFTCARE_PASSWORD"),
		Headless:          envBool("HEADLESS", true),
		ListLimit:         envInt("LIST_LIMIT", DefaultListLimit),
		Verbose:           envBool("VERBOSE", false),
	}
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// UseStaticToken reports whether the document service should authenticate
// with a static bearer key instead of an OAuth exchange.
func (c *Config) UseStaticToken() bool {
	return c.FormzClientSecret == ""
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
