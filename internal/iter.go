// Package internal holds helpers shared by the r16 packages.
package internal

import (
	"iter"
)

// IterSeq2Concat yields every pair of each sequence in turn. Later
// sequences may repeat keys of earlier ones; collecting into a map keeps
// the last value.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			stopped := false
			seq(func(key K, value V) bool {
				stopped = !yield(key, value)
				return !stopped
			})
			if stopped {
				return
			}
		}
	}
}
