package kmer_test

import (
	"errors"
	"testing"

	"github.com/mr-c/abyss/kmer"
)

// TestNewConfig_Validation verifies the constructor rejects bad input with
// the documented sentinels.
func TestNewConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		k    int
		opts []kmer.Option
		want error
	}{
		{"zero k", 0, nil, kmer.ErrZeroK},
		{"negative k", -3, nil, kmer.ErrZeroK},
		{"mask too short", 5, []kmer.Option{kmer.WithSpacedSeed("1101")}, kmer.ErrMaskLength},
		{"mask too long", 5, []kmer.Option{kmer.WithSpacedSeed("110111")}, kmer.ErrMaskLength},
		{"mask bad symbol", 5, []kmer.Option{kmer.WithSpacedSeed("11x11")}, kmer.ErrMaskSymbol},
		{"mask all zeros", 5, []kmer.Option{kmer.WithSpacedSeed("00000")}, kmer.ErrMaskEmpty},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := kmer.NewConfig(tc.k, tc.opts...); !errors.Is(err, tc.want) {
				t.Errorf("NewConfig(%d) error = %v; want %v", tc.k, err, tc.want)
			}
		})
	}
}

// TestConfig_Significance checks the '1'=significant convention.
func TestConfig_Significance(t *testing.T) {
	cfg, err := kmer.NewConfig(5, kmer.WithSpacedSeed("11011"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Masked() {
		t.Error("Masked() = false; want true")
	}
	if got := cfg.Mask(); got != "11011" {
		t.Errorf("Mask() = %q; want %q", got, "11011")
	}
	want := []bool{true, true, false, true, true}
	for i, sig := range want {
		if got := cfg.Significant(i); got != sig {
			t.Errorf("Significant(%d) = %v; want %v", i, got, sig)
		}
	}
}

// TestConfig_NoMask checks that without a spaced seed every position counts.
func TestConfig_NoMask(t *testing.T) {
	cfg, err := kmer.NewConfig(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Masked() {
		t.Error("Masked() = true; want false")
	}
	for i := 0; i < 4; i++ {
		if !cfg.Significant(i) {
			t.Errorf("Significant(%d) = false; want true", i)
		}
	}
}
