package ggplot

import (
	"iter"

	"github.com/gogpu/ggplot/scene"
)

// PathElements lazily converts coords into path elements through ToMid:
// the first coordinate moves, every later one draws a line.
//
// The returned sequence reads coords once per iteration; build a new one
// for every draw call.
func PathElements(coords iter.Seq[BackendCoord]) iter.Seq[scene.PathElement] {
	return func(yield func(scene.PathElement) bool) {
		first := true
		for c := range coords {
			e := scene.LineTo(ToMid(c))
			if first {
				e = scene.MoveTo(ToMid(c))
				first = false
			}
			if !yield(e) {
				return
			}
		}
	}
}

// ClosedPathElements is PathElements followed by a close element.
// Nothing is produced for an empty input.
func ClosedPathElements(coords iter.Seq[BackendCoord]) iter.Seq[scene.PathElement] {
	return func(yield func(scene.PathElement) bool) {
		seen := false
		for e := range PathElements(coords) {
			seen = true
			if !yield(e) {
				return
			}
		}
		if seen {
			yield(scene.ClosePath())
		}
	}
}
