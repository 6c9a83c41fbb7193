package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Standard domain errors
var (
	ErrMessageRequired      = errors.New("message is required")
	ErrInvalidTemperature   = errors.New("temperature must be between 0 and 2")
	ErrInvalidMaxTokens     = errors.New("max_tokens must be positive")
	ErrMissingConfiguration = errors.New("backend configuration is incomplete")
	ErrUpstream             = errors.New("upstream model call failed")
)

// IsValidation reports whether err should be answered with a 400.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMessageRequired) ||
		errors.Is(err, ErrInvalidTemperature) ||
		errors.Is(err, ErrInvalidMaxTokens)
}

// ConfigurationError lists the backend settings that were absent when a call was attempted.
// Only setting names are recorded, never values.
type ConfigurationError struct {
	Provider string
	Missing  []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s backend is missing %s", e.Provider, strings.Join(e.Missing, ", "))
}

func (e *ConfigurationError) Unwrap() error { return ErrMissingConfiguration }

// UpstreamError is a failed remote model call. Status is 0 when the request never got a response.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s error %d: %s", e.Provider, e.Status, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	default:
		return e.Provider + " request failed"
	}
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

func (e *UpstreamError) Unwrap() error { return e.Err }

// ErrorName is the short type label used in "[server-error] <name>: <detail>" bodies.
func ErrorName(err error) string {
	var cfgErr *ConfigurationError
	var upErr *UpstreamError
	switch {
	case errors.As(err, &cfgErr):
		return "ConfigurationError"
	case errors.As(err, &upErr):
		return "UpstreamError"
	default:
		return "Error"
	}
}
