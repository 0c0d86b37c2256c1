// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// saisBytes builds the suffix array of a sentinel-terminated byte text
// using recursive SA-IS. compress selects bit-packed (true) or
// byte-packed (false) scratch vectors for the L/S type and initialized
// markers. The result holds plain positions 0..len(word)-1; the public
// API narrows these to the caller's chosen Idx width.
func saisBytes(word []byte, compress bool) []int {
	text := make([]int, len(word))
	for i, b := range word {
		text[i] = int(b)
	}
	return sais(text, compress)
}

// sais is the recursive SA-IS entry point, used both for the top-level
// byte alphabet and for every reduced alphabet recursion produces.
func sais(text []int, compress bool) []int {
	n := len(text)
	if n == 0 {
		return []int{}
	}
	if n == 1 {
		return []int{0}
	}

	min, max := minMax(text)
	alphaSize := max - min + 1

	t := newBoolVector(n, compress)
	calcType(text, t)
	idxLms := calcLMS(t, n)

	bt := newBucketTable(text, min, alphaSize)
	sa := make([]int, n)
	init := newBoolVector(n, compress)

	sortedLms := sortLMS(text, t, idxLms, bt, sa, init, compress)

	clear(sa)
	init.Clear()
	inducedSort(text, sortedLms, t, bt, sa, init)
	return sa
}

func newBucketTable(text []int, min, alphaSize int) bucketTable {
	if alphaSize > mapBucketThreshold {
		return newMapBucketTable(text)
	}
	return newArrayBucketTable(text, min, alphaSize)
}

// sortLMS produces the LMS positions of text in fully sorted (suffix
// rank) order, per spec §4.2 Phase N:
//
//   - a single LMS position is trivially sorted;
//   - an LMS count at or below naiveSortThreshold is sorted by direct
//     suffix comparison;
//   - otherwise the first induced sort feeds LMS naming: if every name
//     is distinct, the rank order observed during naming is already the
//     sorted order; if not, recurse on the reduced string and remap the
//     result back through idxLms.
func sortLMS(text []int, t boolVector, idxLms []int, bt bucketTable, sa []int, init boolVector, compress bool) []int {
	switch {
	case len(idxLms) == 1:
		return idxLms
	case len(idxLms) <= naiveSortThreshold:
		return naiveSortLMS(text, idxLms)
	}

	inducedSort(text, idxLms, t, bt, sa, init)
	sortedByRank, newText, maxName := summarizeLMS(text, t, sa, idxLms)
	if maxName == len(idxLms) {
		return sortedByRank
	}

	clear(sa)
	init.Clear()
	reducedSA := sais(newText, compress)
	result := make([]int, len(reducedSA))
	for i, r := range reducedSA {
		result[i] = idxLms[r]
	}
	return result
}
