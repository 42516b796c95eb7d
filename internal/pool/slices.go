package pool

// resize returns s truncated/extended to length n, reusing its backing
// array when it already has enough capacity.
func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}

	return s[:n]
}

// Uint32Scratch and Uint64Scratch back the per-instance Context used by
// the column encoders (internal/column); the decoders allocate their own
// slices. They are plain reusable slices rather than a
// sync.Pool: a *blockcodec.Codec owns exactly one Context for its entire
// lifetime (see SPEC_FULL.md §7), so there is nothing to pool across
// instances, only across calls on the same instance.
type Uint32Scratch struct{ s []uint32 }

// Get returns a []uint32 of length n, reusing the backing array when
// possible.
func (p *Uint32Scratch) Get(n int) []uint32 {
	p.s = resize(p.s, n)
	return p.s
}

type Uint64Scratch struct{ s []uint64 }

// Get returns a []uint64 of length n, reusing the backing array when
// possible.
func (p *Uint64Scratch) Get(n int) []uint64 {
	p.s = resize(p.s, n)
	return p.s
}

// Int64Scratch is the signed counterpart of Uint64Scratch, used for
// delta-transform intermediates.
type Int64Scratch struct{ s []int64 }

// Get returns a []int64 of length n, reusing the backing array when
// possible.
func (p *Int64Scratch) Get(n int) []int64 {
	p.s = resize(p.s, n)
	return p.s
}
