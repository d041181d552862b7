package FV1D

import "fmt"

// ConfigurationError reports a parameter that violates a stability or
// well-posedness constraint. Validation is eager: nothing time-steps until
// every parameter has passed.
type ConfigurationError struct {
	Field      string
	Value      interface{}
	Constraint string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s = %v: %s", e.Field, e.Value, e.Constraint)
}

// DimensionError reports a shape mismatch between fields handed across
// component boundaries.
type DimensionError struct {
	What string
	Want int
	Got  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: want %d, got %d", e.What, e.Want, e.Got)
}
