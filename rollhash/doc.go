// Package rollhash implements the incremental multi-hash state paired with a
// DNA window during de Bruijn graph traversal.
//
// The state keeps two 64-bit ntHash values, one for the window and one for
// its reverse complement, and derives a canonical seed as the smaller of the
// two, so a window and its reverse complement always produce the same hash
// set. Additional hash values (for multi-hash membership filters) are
// extended deterministically from the seed.
//
// After full initialization (O(k)) the state is maintained only by local
// edits: rolling the window one base in either direction or substituting a
// single base, each in O(1) when no spaced seed is active. With a spaced
// seed the significance of a position changes as the window slides, so rolls
// recompute over significant positions (O(k)); substitutions remain O(1).
//
// The state and its window must never drift apart: every window mutation is
// accompanied by the matching update here, which is why the update methods
// take the current window contents.
package rollhash
