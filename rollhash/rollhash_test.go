// Package rollhash_test verifies that incremental hash maintenance is
// indistinguishable from recomputing from scratch, which is the contract
// the graph adapter's O(1)-per-step traversal bound rests on.
package rollhash_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mr-c/abyss/kmer"
	"github.com/mr-c/abyss/rollhash"
)

const refSeq = "TAGAATCACCCAAAGACATCGTGACTACGT"

func newConfig(t *testing.T, k int, mask string) *kmer.Config {
	t.Helper()
	var opts []kmer.Option
	if mask != "" {
		opts = append(opts, kmer.WithSpacedSeed(mask))
	}
	cfg, err := kmer.NewConfig(k, opts...)
	require.NoError(t, err)
	return cfg
}

func scratch(t *testing.T, cfg *kmer.Config, window string, numHashes int) rollhash.RollingHash {
	t.Helper()
	h, err := rollhash.New(cfg, []byte(window), numHashes)
	require.NoError(t, err)
	return h
}

// TestNew_Validation covers the construction sentinels.
func TestNew_Validation(t *testing.T) {
	cfg := newConfig(t, 5, "")
	_, err := rollhash.New(nil, []byte("GACTC"), 2)
	require.ErrorIs(t, err, rollhash.ErrNilConfig)
	_, err = rollhash.New(cfg, []byte("GACT"), 2)
	require.ErrorIs(t, err, rollhash.ErrWindowLength)
	_, err = rollhash.New(cfg, []byte("GACTC"), 0)
	require.ErrorIs(t, err, rollhash.ErrNumHashes)
	_, err = rollhash.New(cfg, []byte("GACTC"), rollhash.MaxHashes+1)
	require.ErrorIs(t, err, rollhash.ErrNumHashes)
}

// TestRollRight_MatchesScratch slides a window across a reference sequence
// and compares every incremental state with a from-scratch hash.
func TestRollRight_MatchesScratch(t *testing.T) {
	for _, mask := range []string{"", "11011"} {
		cfg := newConfig(t, 5, mask)
		window := []byte(refSeq[:5])
		h := scratch(t, cfg, string(window), 2)
		for i := 5; i < len(refSeq); i++ {
			in := refSeq[i]
			h.RollRight(window, in)
			copy(window, window[1:])
			window[4] = in

			want := scratch(t, cfg, string(window), 2)
			require.True(t, h.Equal(want),
				"mask %q: rolled state diverges at window %q", mask, window)
			require.Equal(t, want.HashSet(), h.HashSet())
		}
	}
}

// TestRollLeft_MatchesScratch walks the reference sequence backward.
func TestRollLeft_MatchesScratch(t *testing.T) {
	for _, mask := range []string{"", "11011"} {
		cfg := newConfig(t, 5, mask)
		start := len(refSeq) - 5
		window := []byte(refSeq[start:])
		h := scratch(t, cfg, string(window), 2)
		for i := start - 1; i >= 0; i-- {
			in := refSeq[i]
			h.RollLeft(in, window)
			copy(window[1:], window)
			window[0] = in

			want := scratch(t, cfg, string(window), 2)
			require.True(t, h.Equal(want),
				"mask %q: rolled state diverges at window %q", mask, window)
		}
	}
}

// TestSetBase_MatchesScratch substitutes every base at every position and
// compares with a from-scratch hash of the mutated window.
func TestSetBase_MatchesScratch(t *testing.T) {
	for _, mask := range []string{"", "11011"} {
		cfg := newConfig(t, 5, mask)
		for pos := 0; pos < 5; pos++ {
			for i := 0; i < kmer.NumBases; i++ {
				window := []byte("GACTC")
				h := scratch(t, cfg, string(window), 2)
				h.SetBase(window, pos, kmer.Bases[i])

				require.Equal(t, kmer.Bases[i], window[pos], "SetBase must write the window")
				want := scratch(t, cfg, string(window), 2)
				require.True(t, h.Equal(want),
					"mask %q: SetBase(%d,%c) diverges", mask, pos, kmer.Bases[i])
			}
		}
	}
}

// TestStrandNeutral verifies a window and its reverse complement share the
// canonical seed and the full hash set.
func TestStrandNeutral(t *testing.T) {
	cfg := newConfig(t, 5, "")
	for _, seq := range []string{"GACTC", "CGACT", "ACTCG", "TTTTT"} {
		km, err := kmer.New(cfg, seq)
		require.NoError(t, err)
		h := scratch(t, cfg, seq, 3)
		hrc := scratch(t, cfg, km.ReverseComplement().String(), 3)
		require.Equal(t, h.Seed(), hrc.Seed(), "seed differs for %s", seq)
		require.Equal(t, h.HashSet(), hrc.HashSet(), "hash set differs for %s", seq)
	}
}

// TestMaskEquivalence verifies windows differing only at don't-care
// positions hash identically, and windows differing at significant
// positions do not.
func TestMaskEquivalence(t *testing.T) {
	cfg := newConfig(t, 5, "11011")
	a := scratch(t, cfg, "GACTC", 2)
	b := scratch(t, cfg, "GAGTC", 2) // don't-care position differs
	c := scratch(t, cfg, "GACTA", 2) // significant position differs
	require.True(t, a.Equal(b))
	require.Equal(t, a.HashSet(), b.HashSet())
	require.False(t, a.Equal(c))
}

// TestHashes_Extension checks the multi-hash layout: first value is the
// seed, later values are distinct deterministic extensions.
func TestHashes_Extension(t *testing.T) {
	cfg := newConfig(t, 5, "")
	h := scratch(t, cfg, "GACTC", 4)
	hs := h.HashSet()
	require.Len(t, hs, 4)
	require.Equal(t, h.Seed(), hs[0])
	seen := map[uint64]bool{}
	for _, v := range hs {
		require.False(t, seen[v], "duplicate hash value %#x", v)
		seen[v] = true
	}
	// deterministic
	require.Equal(t, hs, scratch(t, cfg, "GACTC", 4).HashSet())
}

// TestZeroValue covers the empty (null-sentinel) state.
func TestZeroValue(t *testing.T) {
	var h rollhash.RollingHash
	require.True(t, h.Empty())
	require.Zero(t, h.Seed())
	require.Zero(t, h.NumHashes())
}
