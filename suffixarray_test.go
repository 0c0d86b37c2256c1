// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordScenario(t *testing.T) {
	sa, err := New[uint]([]byte("word"))
	assert.NoError(t, err)
	assert.Equal(t, 5, len(sa.word))

	pos, ok := sa.Find([]byte("or"))
	assert.True(t, ok)
	assert.EqualValues(t, 1, pos)

	assert.EqualValues(t, []uint{1}, sa.FindAll([]byte("or")))

	pos, ok = sa.Find([]byte("ord"))
	assert.True(t, ok)
	assert.EqualValues(t, 1, pos)

	_, ok = sa.Find([]byte("z"))
	assert.False(t, ok)

	lcp := sa.Lcp()

	pos, ok = sa.FindBig(lcp, []byte("or"))
	assert.True(t, ok)
	assert.EqualValues(t, 1, pos)

	assert.EqualValues(t, []uint{1}, sa.FindAllBig(lcp, []byte("or")))

	pos, ok = sa.FindBig(lcp, []byte("ord"))
	assert.True(t, ok)
	assert.EqualValues(t, 1, pos)

	_, ok = sa.FindBig(lcp, []byte("z"))
	assert.False(t, ok)
}

func TestDNAFindAll(t *testing.T) {
	sa, err := New[uint]([]byte("ACGTGCCTAGCCTACCGTGCC"))
	assert.NoError(t, err)

	hits := sa.FindAll([]byte("CC"))
	want := []uint{5, 10, 14, 19}
	assert.ElementsMatch(t, want, hits)

	hitsBig := sa.FindAllBig(sa.Lcp(), []byte("CC"))
	assert.ElementsMatch(t, want, hitsBig)
}

func TestEmptyWord(t *testing.T) {
	sa, err := New[uint]([]byte(""))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(sa.sa))
	assert.EqualValues(t, 0, sa.sa[0])

	lcp := sa.Lcp()
	assert.Equal(t, 1, lcp.Len())
	assert.EqualValues(t, 0, lcp.At(0))
}

func TestBoundExceeded(t *testing.T) {
	word := make([]byte, 255)
	for i := range word {
		word[i] = 'a'
	}
	_, err := New[uint8](word)
	assert.ErrorIs(t, err, ErrBoundExceeded)
}

func TestUTF8ByteWiseFind(t *testing.T) {
	word := []byte("色は匂へど 散りぬるを")
	sa, err := New[uint](word)
	assert.NoError(t, err)

	target := []byte("散りぬる")
	want := -1
	for i := 0; i+len(target) <= len(word); i++ {
		if string(word[i:i+len(target)]) == string(target) {
			want = i
			break
		}
	}
	assert.NotEqual(t, -1, want)

	pos, ok := sa.Find(target)
	assert.True(t, ok)
	assert.EqualValues(t, want, pos)
}

func TestFourBuildersAgree(t *testing.T) {
	word := []byte("abracadabra banana mississippi")
	a, err := New[uint](word)
	assert.NoError(t, err)
	b, err := NewStack[uint](word)
	assert.NoError(t, err)
	c, err := NewCompress[uint](word)
	assert.NoError(t, err)
	d, err := NewStackCompress[uint](word)
	assert.NoError(t, err)

	assert.Equal(t, a.Raw(), b.Raw())
	assert.Equal(t, a.Raw(), c.Raw())
	assert.Equal(t, a.Raw(), d.Raw())
}

// bruteForceOccurrences returns every position at which pattern occurs
// in word, used as an oracle independent of the suffix array machinery.
func bruteForceOccurrences(word, pattern []byte) []uint {
	var out []uint
	if len(pattern) == 0 {
		for i := 0; i <= len(word); i++ {
			out = append(out, uint(i))
		}
		return out
	}
	for i := 0; i+len(pattern) <= len(word); i++ {
		match := true
		for j := range pattern {
			if word[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			out = append(out, uint(i))
		}
	}
	return out
}

func sortedUints(xs []uint) []uint {
	out := append([]uint{}, xs...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestFindBigAgreesWithFindAndBruteForce(t *testing.T) {
	alphabet := []byte("ab")
	for trial := 0; trial < 40; trial++ {
		n := 1 + rand.Intn(60)
		word := make([]byte, n)
		for i := range word {
			word[i] = alphabet[rand.Intn(len(alphabet))]
		}
		sa, err := New[uint](word)
		assert.NoError(t, err)
		lcp := sa.Lcp()

		for plen := 1; plen <= 4; plen++ {
			pattern := make([]byte, plen)
			for i := range pattern {
				pattern[i] = alphabet[rand.Intn(len(alphabet))]
			}

			want := sortedUints(bruteForceOccurrences(word, pattern))

			allNormal := sortedUints(sa.FindAll(pattern))
			assert.Equal(t, want, allNormal)

			allBig := sortedUints(sa.FindAllBig(lcp, pattern))
			assert.Equal(t, want, allBig)

			_, foundBig := sa.FindBig(lcp, pattern)
			assert.Equal(t, len(want) > 0, foundBig)
		}
	}
}

func TestSAIsPermutationAndSorted(t *testing.T) {
	word := []byte("the quick brown fox jumps over the lazy dog")
	sa, err := New[uint](word)
	assert.NoError(t, err)

	seen := make(map[uint]bool)
	for _, p := range sa.Raw() {
		assert.False(t, seen[p])
		seen[p] = true
	}
	assert.Equal(t, len(sa.Word()), len(seen))

	for i := 1; i < len(sa.Raw()); i++ {
		prev := string(sa.Word()[sa.Raw()[i-1]:])
		cur := string(sa.Word()[sa.Raw()[i]:])
		assert.True(t, prev <= cur)
	}
}

// BenchmarkFind and BenchmarkFindBig compare the two query algorithms
// spec.md §4.6 specifies (binary search vs SA+LCP scan) on the same
// text and pattern, the way the teacher pairs a batch-build benchmark
// with its lookup counterpart.
func BenchmarkFind(b *testing.B) {
	word := make([]byte, 20000)
	for i, c := range genRandBytes(20000) {
		word[i] = c
	}
	sa, err := New[uint](word)
	assert.NoError(b, err)
	pattern := word[100:110]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sa.Find(pattern)
	}
}

func BenchmarkFindBig(b *testing.B) {
	word := make([]byte, 20000)
	for i, c := range genRandBytes(20000) {
		word[i] = c
	}
	sa, err := New[uint](word)
	assert.NoError(b, err)
	lcp := sa.Lcp()
	pattern := word[100:110]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sa.FindBig(lcp, pattern)
	}
}
