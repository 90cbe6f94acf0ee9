package config

import (
	"fmt"

	"github.com/gookit/validate"

	"github.com/manav03panchal/track/internal/errors"
)

// Validate checks the struct tags and cross-field rules.
func (c *Config) Validate() error {
	v := validate.Struct(c)
	if !v.Validate() {
		return invalid(v.Errors.One())
	}

	if c.Naming.SimilarityCutoff <= 0 || c.Naming.SimilarityCutoff > 1 {
		return invalid(fmt.Sprintf("naming.similarity_cutoff must be in (0, 1], got %v", c.Naming.SimilarityCutoff))
	}
	if c.Storage.Backend == BackendBadger && c.Storage.BadgerDir == "" {
		return invalid("storage.badger_dir is required for the badger backend")
	}
	return nil
}

func invalid(msg string) error {
	return errors.NewUserError(
		errors.ErrInvalidConfig,
		"invalid configuration: "+msg,
		"Check your config file and TRACK_* environment variables (see 'track config').",
	)
}
