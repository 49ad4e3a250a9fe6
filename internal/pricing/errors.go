package pricing

import "fmt"

// ValidationError reports a malformed or out-of-range calculator input.
// It is never retried and never produces a partial breakdown.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConfigError reports a settings key the calculation referenced but the
// supplied snapshot does not contain.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("settings key not configured: %s", e.Key)
}
