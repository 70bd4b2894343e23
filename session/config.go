// SPDX-License-Identifier: MIT

package session

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/topocoords/persistence"
)

// Config is the engine configuration of a session. It is fixed for the
// lifetime of the session.
type Config struct {
	Landmarks int `json:"landmark_count" yaml:"landmark_count" validate:"required,min=1"`
	Prime     int `json:"coefficient_field_prime" yaml:"coefficient_field_prime" validate:"required,min=2"`
}

var validate = validator.New()

// Validate checks field ranges and that Prime is prime.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if !persistence.IsPrime(c.Prime) {
		return fmt.Errorf("p=%d: %w", c.Prime, persistence.ErrNotPrime)
	}

	return nil
}
