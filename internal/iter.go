package internal

import (
	"iter"
)

// IterSeq2Concat chains key/value sequences, in order, into one sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Find returns the value of the first key accepted by match.
func IterSeq2Find[K any, V any](seq iter.Seq2[K, V], match func(K) bool) (value V, ok bool) {
	for key, val := range seq {
		if match(key) {
			return val, true
		}
	}

	return
}
