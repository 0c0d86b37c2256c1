// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "sort"

// naiveSortThreshold is the LMS count at or below which a direct comparison
// sort beats building and recursing on a reduced string.
const naiveSortThreshold = 50

// mapBucketThreshold is the alphabet size above which bucket bookkeeping
// switches from a dense array (indexed by symbol - min) to a sparse map
// (see sais_arbitrary.go). A byte alphabet never crosses it at the top
// level; recursion on a large LMS count can.
const mapBucketThreshold = 256

// bucket is the immutable (offset, count) pair assigned to one alphabet
// symbol once, at bucket-build time.
type bucket struct {
	lo, size int
}

// bucketTable tracks, for every symbol, an immutable (lo, size) pair and
// a mutable cursor that the induced-sort passes advance. Separating the
// cursor from the immutable bounds means resetting for a new pass is a
// single O(alphabet) sweep instead of recomputing prefix sums from
// scratch every time.
type bucketTable interface {
	// resetLo points every symbol's cursor at the first slot of its
	// bucket; used before the L pass, which fills buckets forward.
	resetLo()
	// resetHi points every symbol's cursor one past the last slot of
	// its bucket; used before LMS seeding and the S pass, which fill
	// buckets backward.
	resetHi()
	// takeLo returns the next free slot for sym and advances forward.
	takeLo(sym int) int
	// takeHi steps backward and returns the next free slot for sym.
	takeHi(sym int) int
}

// arrayBucketTable is used while the current alphabet is small and
// dense (a byte alphabet, or a reduced alphabet that still fits within
// mapBucketThreshold).
type arrayBucketTable struct {
	lo, size, cur []int
	min           int
}

func newArrayBucketTable(text []int, min, alphaSize int) *arrayBucketTable {
	t := &arrayBucketTable{
		lo:   make([]int, alphaSize),
		size: make([]int, alphaSize),
		cur:  make([]int, alphaSize),
		min:  min,
	}
	for _, v := range text {
		t.size[v-min]++
	}
	offset := 0
	for i, sz := range t.size {
		t.lo[i] = offset
		offset += sz
	}
	return t
}

func (t *arrayBucketTable) resetLo() { copy(t.cur, t.lo) }

func (t *arrayBucketTable) resetHi() {
	for i := range t.cur {
		t.cur[i] = t.lo[i] + t.size[i]
	}
}

func (t *arrayBucketTable) takeLo(sym int) int {
	i := sym - t.min
	v := t.cur[i]
	t.cur[i]++
	return v
}

func (t *arrayBucketTable) takeHi(sym int) int {
	i := sym - t.min
	t.cur[i]--
	return t.cur[i]
}

// calcType fills t with the L/S classification of text (spec §4.2 Phase
// T): t.Get(i) == true means S-type, false means L-type. The sentinel
// (last position) is always S; scanning right to left, a position is
// L if its byte is greater than its successor's, S if smaller, and
// inherits its successor's type when equal.
func calcType(text []int, t boolVector) {
	n := len(text)
	t.Set(n - 1)
	for i := n - 2; i >= 0; i-- {
		switch {
		case text[i] > text[i+1]:
			// L-type: left unset.
		case text[i] < text[i+1]:
			t.Set(i)
		default:
			if t.Get(i + 1) {
				t.Set(i)
			}
		}
	}
}

// calcLMS returns every LMS position (spec §3: i > 0, t[i-1] == L, t[i]
// == S) in increasing textual order. The sentinel position is always
// itself an LMS position, since the byte preceding it is always
// strictly greater (the sentinel is the unique smallest byte).
func calcLMS(t boolVector, n int) []int {
	lms := make([]int, 0, n/2+1)
	for i := 1; i < n; i++ {
		if !t.Get(i-1) && t.Get(i) {
			lms = append(lms, i)
		}
	}
	return lms
}

// seedLMS places each position in lmsOrder at the end of its bucket,
// processing lmsOrder back to front so that within one bucket earlier
// entries of lmsOrder end up in lower slots (spec §4.2 Phase L(ii)).
func seedLMS(text []int, lmsOrder []int, bt bucketTable, sa []int, init boolVector) {
	bt.resetHi()
	for i := len(lmsOrder) - 1; i >= 0; i-- {
		p := lmsOrder[i]
		slot := bt.takeHi(text[p])
		sa[slot] = p
		init.Set(slot)
	}
}

// passL induces every L-type position from the currently-placed slots,
// scanning left to right (spec §4.2 Phase L(iii)). A slot's content j
// is skipped once it has been examined; j == 0 has no predecessor.
func passL(text []int, t boolVector, bt bucketTable, sa []int, init boolVector) {
	bt.resetLo()
	for x := 0; x < len(sa); x++ {
		if !init.Get(x) {
			continue
		}
		j := sa[x]
		if j == 0 {
			continue
		}
		k := j - 1
		if !t.Get(k) {
			slot := bt.takeLo(text[k])
			sa[slot] = k
			init.Set(slot)
		}
	}
}

// passS induces every S-type position, scanning right to left (spec
// §4.2 Phase L(iv)).
func passS(text []int, t boolVector, bt bucketTable, sa []int, init boolVector) {
	bt.resetHi()
	for x := len(sa) - 1; x >= 0; x-- {
		if !init.Get(x) {
			continue
		}
		j := sa[x]
		if j == 0 {
			continue
		}
		k := j - 1
		if t.Get(k) {
			slot := bt.takeHi(text[k])
			sa[slot] = k
			init.Set(slot)
		}
	}
}

// inducedSort runs one full LMS-seed + L-pass + S-pass induced sort
// (spec §4.2 Phase L), used both for the approximate first pass that
// feeds LMS naming and for the final pass that produces the real SA.
func inducedSort(text []int, lmsOrder []int, t boolVector, bt bucketTable, sa []int, init boolVector) {
	seedLMS(text, lmsOrder, bt, sa, init)
	passL(text, t, bt, sa, init)
	passS(text, t, bt, sa, init)
}

// equalLMSSubstr reports whether the LMS substrings starting at l and r
// are identical: same bytes and same L/S types up to and including the
// next LMS boundary. The sentinel guarantees this always terminates
// without running past either slice: the position immediately before
// the (unique, strictly smallest) sentinel is always an LMS boundary,
// so a run of equal bytes reaches a boundary (or a mismatch) for both
// l and r at the same offset, never stepping past the sentinel.
func equalLMSSubstr(text []int, t boolVector, l, r int) bool {
	for i := 0; ; i++ {
		if text[l+i] != text[r+i] || t.Get(l+i) != t.Get(r+i) {
			return false
		}
		if i > 0 && !t.Get(l+i-1) && t.Get(l+i) {
			return true
		}
	}
}

// summarizeLMS names each LMS substring (spec §4.2 Phase N) by walking
// the first induced sort's output in rank order: the name increments
// whenever two consecutive LMS substrings differ. It returns the LMS
// positions already in sorted (rank) order, the reduced string (one
// name per entry of idxLms, in textual order), and the number of
// distinct names assigned.
func summarizeLMS(text []int, t boolVector, sa []int, idxLms []int) (sortedByRank, newText []int, maxName int) {
	n := len(sa)
	nameOf := make([]int, n)
	sortedByRank = make([]int, 0, len(idxLms))
	name := 0
	prev := -1
	for _, x := range sa {
		if x == 0 || !t.Get(x) || t.Get(x-1) {
			continue
		}
		if prev == -1 || !equalLMSSubstr(text, t, prev, x) {
			name++
		}
		nameOf[x] = name
		sortedByRank = append(sortedByRank, x)
		prev = x
	}
	maxName = name
	newText = make([]int, len(idxLms))
	for i, p := range idxLms {
		newText[i] = nameOf[p]
	}
	return sortedByRank, newText, maxName
}

// naiveSortLMS directly sorts a small LMS set by comparing whole
// remaining suffixes (spec §4.2 Phase N: "LMS count <= 50").
func naiveSortLMS(text []int, idxLms []int) []int {
	out := make([]int, len(idxLms))
	copy(out, idxLms)
	sort.Slice(out, func(i, j int) bool {
		return compareSuffix(text, out[i], out[j]) < 0
	})
	return out
}

func compareSuffix(text []int, a, b int) int {
	for a < len(text) && b < len(text) {
		if text[a] != text[b] {
			if text[a] < text[b] {
				return -1
			}
			return 1
		}
		a++
		b++
	}
	switch {
	case a == b:
		return 0
	case a == len(text):
		return -1
	default:
		return 1
	}
}

func minMax(text []int) (min, max int) {
	min, max = text[0], text[0]
	for _, v := range text[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

func newBoolVector(n int, compress bool) boolVector {
	if compress {
		return newBitVector(n)
	}
	return newByteVector(n)
}
