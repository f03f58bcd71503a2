package editor

import "github.com/rivo/uniseg"

// prevCluster returns the byte offset of the grapheme cluster boundary
// immediately before index.
func prevCluster(text string, index int) int {
	prev := 0
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 && pos < index {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// nextCluster returns the byte offset of the grapheme cluster boundary
// immediately after index.
func nextCluster(text string, index int) int {
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos > index {
			return pos
		}
	}
	return len(text)
}

// snapCluster clamps index to [0, len(text)] and snaps it down to the
// nearest grapheme cluster boundary.
func snapCluster(text string, index int) int {
	if index <= 0 {
		return 0
	}
	if index >= len(text) {
		return len(text)
	}
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if pos+len(cluster) > index {
			return pos
		}
		pos += len(cluster)
	}
	return pos
}

// wordBounds returns the byte range of the word containing index,
// per Unicode word segmentation. An index at or past the end of the
// text returns the final word's range, or (0, 0) for empty text.
func wordBounds(text string, index int) (start, end int) {
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if index < pos+len(word) || len(rest) == 0 {
			return pos, pos + len(word)
		}
		pos += len(word)
	}
	return 0, 0
}
