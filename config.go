package stablevec

import "fmt"

const (
	// DefaultShrinkThreshold is the default fill ratio (1/n) below which the
	// index releases its storage.
	DefaultShrinkThreshold = 4
	// minShrinkCapacity is the smallest index capacity considered for shrinking.
	minShrinkCapacity = 32
)

// Config configures a stable vector.
//
// The zero value is a valid configuration.
type Config struct {
	// Capacity is the number of elements the index has room for initially.
	Capacity int
	// FullResync makes every structural change re-synchronize all
	// back-references, not only the ones of slots behind the change.
	FullResync bool
	// ShrinkThreshold n lets the index reallocate its storage whenever
	// less than 1/n of it is in use. Zero selects DefaultShrinkThreshold,
	// a negative value disables shrinking.
	ShrinkThreshold int
}

func (cfg Config) normalized() Config {
	if cfg.ShrinkThreshold == 0 {
		cfg.ShrinkThreshold = DefaultShrinkThreshold
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrInvalidConfig)
	}
	if cfg.ShrinkThreshold == 1 {
		return fmt.Errorf("%w: shrink threshold must be at least 2", ErrInvalidConfig)
	}
	return nil
}

// Option configures a stable vector at construction time.
type Option func(*Config) error

// WithCapacity pre-allocates index storage for n elements.
func WithCapacity(n int) Option {
	return func(cfg *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, n)
		}
		cfg.Capacity = n
		return nil
	}
}

// WithFullResync switches off tail-only re-synchronization of
// back-references.
func WithFullResync() Option {
	return func(cfg *Config) error {
		cfg.FullResync = true
		return nil
	}
}

// WithShrinkThreshold sets Config.ShrinkThreshold.
func WithShrinkThreshold(n int) Option {
	return func(cfg *Config) error {
		cfg.ShrinkThreshold = n
		return nil
	}
}

func configure(opts []Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg.normalized(), nil
}
