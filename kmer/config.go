package kmer

import (
	"errors"
	"fmt"
)

// Sentinel errors for session configuration and window construction.
var (
	// ErrZeroK indicates a non-positive window length.
	ErrZeroK = errors.New("kmer: k must be positive")

	// ErrMaskLength indicates a spaced-seed mask whose length differs from k.
	ErrMaskLength = errors.New("kmer: mask length must equal k")

	// ErrMaskSymbol indicates a spaced-seed mask containing a symbol other
	// than '0' or '1'.
	ErrMaskSymbol = errors.New("kmer: mask may contain only '0' and '1'")

	// ErrMaskEmpty indicates a spaced-seed mask with no significant position.
	ErrMaskEmpty = errors.New("kmer: mask must contain at least one '1'")

	// ErrNilConfig indicates a nil *Config was supplied.
	ErrNilConfig = errors.New("kmer: nil config")

	// ErrLengthMismatch indicates a sequence whose length differs from k.
	ErrLengthMismatch = errors.New("kmer: sequence length must equal k")

	// ErrBadBase indicates a sequence symbol outside the ACGT alphabet.
	ErrBadBase = errors.New("kmer: sequence may contain only A, C, G, T")
)

// Option configures a Config under construction.
type Option func(*Config)

// WithSpacedSeed installs a spaced-seed mask: a string of length k over
// {'0','1'} where '1' marks a significant position and '0' a don't-care
// position. Don't-care positions are ignored by equality and hashing.
// Strand-neutral hashing is only self-consistent when the mask is
// palindromic (reads the same reversed), since a window position and its
// mirror swap under reverse complementation.
func WithSpacedSeed(mask string) Option {
	return func(c *Config) { c.mask = mask }
}

// Config is the immutable per-session window configuration: the window
// length k and an optional spaced-seed mask. It is constructed once, before
// any Kmer or hash state exists, and shared (by pointer) across every window
// of the session. All windows compared or traversed together must share the
// same Config.
type Config struct {
	k           int
	mask        string // empty when no spaced seed is active
	significant []bool // nil when no spaced seed is active
}

// NewConfig validates and builds a session configuration for windows of
// length k. Returns ErrZeroK, ErrMaskLength, ErrMaskSymbol or ErrMaskEmpty
// on invalid input.
func NewConfig(k int, opts ...Option) (*Config, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrZeroK, k)
	}
	cfg := &Config{k: k}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.mask == "" {
		return cfg, nil
	}
	if len(cfg.mask) != k {
		return nil, fmt.Errorf("%w: mask %q, k=%d", ErrMaskLength, cfg.mask, k)
	}
	ones := 0
	cfg.significant = make([]bool, k)
	for i := 0; i < k; i++ {
		switch cfg.mask[i] {
		case '1':
			cfg.significant[i] = true
			ones++
		case '0':
			// don't-care
		default:
			return nil, fmt.Errorf("%w: mask %q", ErrMaskSymbol, cfg.mask)
		}
	}
	if ones == 0 {
		return nil, fmt.Errorf("%w: mask %q", ErrMaskEmpty, cfg.mask)
	}
	return cfg, nil
}

// K returns the window length.
func (c *Config) K() int { return c.k }

// Masked reports whether a spaced-seed mask is active.
func (c *Config) Masked() bool { return c.significant != nil }

// Mask returns the spaced-seed mask string, or "" when none is active.
func (c *Config) Mask() string { return c.mask }

// Significant reports whether position i participates in equality and
// hashing. Without a mask every position is significant.
func (c *Config) Significant(i int) bool {
	if c.significant == nil {
		return true
	}
	return c.significant[i]
}
