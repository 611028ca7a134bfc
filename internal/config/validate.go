package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSources indicates the source pattern list is empty
	ErrNoSources = errors.New("no source patterns configured")

	// ErrInvalidSiblingExt indicates a malformed sibling doc extension
	ErrInvalidSiblingExt = errors.New("invalid sibling doc extension")

	// ErrEmptyDefaultDocName indicates a missing directory-level doc file name
	ErrEmptyDefaultDocName = errors.New("empty default doc file name")

	// ErrInvalidCapacity indicates an invalid cache capacity
	ErrInvalidCapacity = errors.New("invalid cache capacity")

	// ErrInvalidDebounce indicates an invalid watch debounce interval
	ErrInvalidDebounce = errors.New("invalid watch debounce")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Paths.Sources) == 0 {
		errs = append(errs, ErrNoSources)
	}

	if cfg.Docs.SiblingExt != "" && !strings.HasPrefix(cfg.Docs.SiblingExt, ".") {
		errs = append(errs, fmt.Errorf("%w: %q must start with a dot", ErrInvalidSiblingExt, cfg.Docs.SiblingExt))
	}
	if cfg.Docs.DefaultName == "" {
		errs = append(errs, ErrEmptyDefaultDocName)
	}

	if cfg.Cache.Enabled && cfg.Cache.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidCapacity, cfg.Cache.Capacity))
	}

	if cfg.Watch.DebounceMs < 0 {
		errs = append(errs, fmt.Errorf("%w: debounce_ms must not be negative, got %d", ErrInvalidDebounce, cfg.Watch.DebounceMs))
	}

	return errors.Join(errs...)
}
