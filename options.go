package origin

// config holds construction options for a Quantity.
type config struct {
	tracking bool
}

// Option configures a Quantity created with New.
type Option func(*config)

// WithTracking starts the quantity with provenance tracking enabled.
// Without it, New returns a quantity with tracking off.
func WithTracking() Option {
	return func(c *config) {
		c.tracking = true
	}
}
