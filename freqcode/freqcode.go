// Package freqcode implements the L2 frequency codec from SPEC_FULL.md
// §4.6: it remaps a column of values to ranks ordered by descending
// frequency (ties broken by ascending value), so that the most common
// values get the smallest codes and pack into fewer bits downstream.
//
// Grounded on original_source's frequency_encoding.hpp: encode_frequency
// counts occurrences into a map, sorts (frequency desc, value asc), and
// assigns rank codes in that order; decode_frequency rebuilds a
// code-to-value lookup table and gathers, with an AVX2 gather fast path
// whose scalar fallback is the source of truth.
//
// C++'s std::map iterates keys in ascending order, so original_source's
// frequency count naturally comes out value-sorted before the explicit
// frequency sort runs. Go's map iteration order is deliberately
// randomized, so EncodeFrequency collects counts into a map and then
// always runs an explicit, deterministic sort — never relies on range
// order — to reproduce the same (frequency desc, value asc) tie-break.
package freqcode

import "sort"

// Table is the result of EncodeFrequency: Values[rank] is the original
// value assigned to code `rank`, in descending-frequency order.
type Table struct {
	Values []uint64
}

// EncodeFrequency computes the rank-by-frequency table for values and
// returns it along with the per-element rank codes.
func EncodeFrequency(values []uint64) (table Table, codes []uint32) {
	counts := make(map[uint64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	distinct := make([]uint64, 0, len(counts))
	for v := range counts {
		distinct = append(distinct, v)
	}

	sort.Slice(distinct, func(i, j int) bool {
		ci, cj := counts[distinct[i]], counts[distinct[j]]
		if ci != cj {
			return ci > cj
		}

		return distinct[i] < distinct[j]
	})

	rank := make(map[uint64]uint32, len(distinct))
	for i, v := range distinct {
		rank[v] = uint32(i)
	}

	codes = make([]uint32, len(values))
	for i, v := range values {
		codes[i] = rank[v]
	}

	return Table{Values: distinct}, codes
}

// DecodeFrequency inverts EncodeFrequency: for each code, it looks up
// table.Values[code]. It reports ok=false if any code is out of range for
// table, signaling a corrupt or truncated stream.
func DecodeFrequency(dst []uint64, codes []uint32, table Table) (ok bool) {
	for i, c := range codes {
		if int(c) >= len(table.Values) {
			return false
		}

		dst[i] = table.Values[c]
	}

	return true
}
