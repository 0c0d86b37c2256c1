// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import "sort"

// SuffixArray holds the sorted suffix positions of a byte string,
// together with the string itself (sentinel-terminated). T is the
// caller's chosen index width; New and its siblings reject input that
// would overflow it.
type SuffixArray[T Idx] struct {
	word []byte
	sa   []T
}

// ensureSentinel appends a 0x00 terminator unless word already ends
// with one. Per spec, an embedded 0x00 elsewhere in word is not
// detected or rejected; the caller is responsible for using a
// single-sentinel alphabet.
func ensureSentinel(word []byte) []byte {
	if len(word) > 0 && word[len(word)-1] == 0 {
		return word
	}
	out := make([]byte, len(word)+1)
	copy(out, word)
	return out
}

// New builds a SuffixArray using recursive SA-IS with byte-packed
// scratch vectors.
func New[T Idx](word []byte) (*SuffixArray[T], error) {
	return build[T](word, false, false)
}

// NewStack is New using the explicit-stack (non-recursive) SA-IS core,
// for callers on a constrained goroutine stack or processing input
// deep enough to worry about recursion depth.
func NewStack[T Idx](word []byte) (*SuffixArray[T], error) {
	return build[T](word, true, false)
}

// NewCompress is New using bit-packed scratch vectors, trading some
// CPU cache locality for an 8x reduction in the type/initialized
// marker memory.
func NewCompress[T Idx](word []byte) (*SuffixArray[T], error) {
	return build[T](word, false, true)
}

// NewStackCompress combines NewStack and NewCompress.
func NewStackCompress[T Idx](word []byte) (*SuffixArray[T], error) {
	return build[T](word, true, true)
}

func build[T Idx](word []byte, stack, compress bool) (*SuffixArray[T], error) {
	w := ensureSentinel(word)
	if err := checkBound[T](len(w)); err != nil {
		return nil, err
	}
	var raw []int
	if stack {
		raw = saisBytesStack(w, compress)
	} else {
		raw = saisBytes(w, compress)
	}
	sa := make([]T, len(raw))
	for i, v := range raw {
		sa[i] = T(v)
	}
	return &SuffixArray[T]{word: w, sa: sa}, nil
}

// Lcp computes the longest-common-prefix array for this SuffixArray via
// Kasai's algorithm.
func (s *SuffixArray[T]) Lcp() *LCP[T] {
	raw := rawOf(s.sa)
	return &LCP[T]{lcp: narrowLCP[T](kasai(intWord(s.word), raw))}
}

// Raw exposes the underlying sorted positions directly.
func (s *SuffixArray[T]) Raw() []T {
	return s.sa
}

// Word returns the sentinel-terminated text this SuffixArray indexes.
func (s *SuffixArray[T]) Word() []byte {
	return s.word
}

func rawOf[T Idx](sa []T) []int {
	raw := make([]int, len(sa))
	for i, v := range sa {
		raw[i] = int(v)
	}
	return raw
}

func intWord(word []byte) []int {
	out := make([]int, len(word))
	for i, b := range word {
		out[i] = int(b)
	}
	return out
}

// comparePrefix compares pattern against the len(pattern) bytes of
// text starting at pos, returning <0, 0 or >0 the way bytes.Compare
// would if text were truncated to that length first. Running out of
// text before the pattern is exhausted counts as text < pattern, since
// a suffix shorter than the pattern can never have the pattern as a
// prefix.
func comparePrefix(text []byte, pos int, pattern []byte) int {
	for i := 0; i < len(pattern); i++ {
		if pos+i >= len(text) {
			return -1
		}
		tb, pb := text[pos+i], pattern[i]
		if tb != pb {
			if tb < pb {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (s *SuffixArray[T]) lowerBound(pattern []byte) int {
	lo, hi := 0, len(s.sa)
	for lo < hi {
		mid := (lo + hi) / 2
		if comparePrefix(s.word, int(s.sa[mid]), pattern) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (s *SuffixArray[T]) upperBound(pattern []byte) int {
	lo, hi := 0, len(s.sa)
	for lo < hi {
		mid := (lo + hi) / 2
		if comparePrefix(s.word, int(s.sa[mid]), pattern) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Find returns one occurrence of pattern (the lexicographically first
// matching suffix's position), or false if pattern does not occur.
func (s *SuffixArray[T]) Find(pattern []byte) (T, bool) {
	lo := s.lowerBound(pattern)
	if lo < len(s.sa) && comparePrefix(s.word, int(s.sa[lo]), pattern) == 0 {
		return s.sa[lo], true
	}
	var zero T
	return zero, false
}

// FindAll returns every occurrence of pattern, in suffix-array order.
func (s *SuffixArray[T]) FindAll(pattern []byte) []T {
	lo := s.lowerBound(pattern)
	hi := s.upperBound(pattern)
	if lo >= hi {
		return nil
	}
	out := make([]T, hi-lo)
	copy(out, s.sa[lo:hi])
	return out
}

// bigRange implements spec §4.6's O(|text|) SA+LCP scan: a single
// binary search locates the first suffix whose leading byte is >=
// pattern[0], then a forward scan extends a running matched-prefix
// counter m that never decreases within one scan (each suffix shares
// at least min(m, L[i]) bytes with its predecessor, so once L[i] < m
// no later suffix can still share pattern's first m bytes). The
// returned range [start, start+k) holds every suffix matching pattern
// exactly, found without a second binary search per §4.6's
// find_all_big ("k is the count of subsequent entries with L[i+1..]
// >= |pattern|").
func (s *SuffixArray[T]) bigRange(lcpArr []int, pattern []byte) (start, k int) {
	n := len(s.sa)
	if n == 0 {
		return 0, 0
	}
	if len(pattern) == 0 {
		return 0, n
	}

	lo := sort.Search(n, func(i int) bool {
		return comparePrefix(s.word, int(s.sa[i]), pattern[:1]) >= 0
	})

	m := 0
	i := lo
	for i < n {
		if i > lo && lcpArr[i] < m {
			return lo, 0
		}
		p := int(s.sa[i])
		for m < len(pattern) && p+m < len(s.word) && s.word[p+m] == pattern[m] {
			m++
		}
		if m == len(pattern) {
			break
		}
		if p+m < len(s.word) && s.word[p+m] > pattern[m] {
			return lo, 0
		}
		i++
	}
	if i >= n || m != len(pattern) {
		return lo, 0
	}

	k = 1
	for i+k < n && lcpArr[i+k] >= len(pattern) {
		k++
	}
	return i, k
}

// FindBig behaves like Find, but locates the match using the O(|text|)
// SA+LCP scan of spec §4.6 instead of the O(|pattern|*log|text|)
// binary search Find uses. lcp must be this SuffixArray's own Lcp() —
// passing it in, rather than recomputing it on every call, is what
// makes repeated FindBig/FindAllBig calls over the same text O(|text|)
// total instead of O(|text|) per call.
func (s *SuffixArray[T]) FindBig(lcp *LCP[T], pattern []byte) (T, bool) {
	start, k := s.bigRange(rawOf(lcp.lcp), pattern)
	if k == 0 {
		var zero T
		return zero, false
	}
	return s.sa[start], true
}

// FindAllBig is the scan-based counterpart to FindAll; see FindBig.
func (s *SuffixArray[T]) FindAllBig(lcp *LCP[T], pattern []byte) []T {
	start, k := s.bigRange(rawOf(lcp.lcp), pattern)
	if k == 0 {
		return nil
	}
	out := make([]T, k)
	copy(out, s.sa[start:start+k])
	return out
}
