// Package grapheme locates grapheme cluster boundaries in byte-addressed
// text, so cursor positions never land inside a combining sequence.
package grapheme

import "github.com/rivo/uniseg"

// NextBoundary returns the byte offset just past the cluster starting at pos.
func NextBoundary(text string, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[pos:], -1)
	return pos + len(cluster)
}

// PrevBoundary returns the start offset of the cluster that ends at pos.
// An offset inside a cluster resolves to that cluster's start.
func PrevBoundary(text string, pos int) int {
	if pos > len(text) {
		pos = len(text)
	}
	for i := 0; i < pos; {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[i:], -1)
		if cluster == "" || i+len(cluster) >= pos {
			return i
		}
		i += len(cluster)
	}
	return 0
}

// Count returns the number of clusters in text.
func Count(text string) int {
	n := 0
	for i := 0; i < len(text); {
		cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[i:], -1)
		if cluster == "" {
			break
		}
		i += len(cluster)
		n++
	}
	return n
}
