package mlut

import (
	"math"
	"sync"
)

// position is the domain position of sample j in a table of n samples.
func position(j, n int) float64 {
	return float64(j) / float64(n)
}

// indexRange returns the samples [lo, hi) of an n sample table whose
// positions lie in [s.Start, s.End). It gives exactly the indices a full
// scan testing s.Start <= position(j, n) < s.End would.
func indexRange(s Segment, n int) (lo, hi int) {
	return firstAtOrAbove(s.Start, n), firstAtOrAbove(s.End, n)
}

// firstAtOrAbove returns the smallest j with position(j, n) >= x, or n if
// there is none.
func firstAtOrAbove(x float64, n int) int {
	if x <= 0 {
		return 0
	}
	if x > position(n-1, n) {
		return n
	}

	// the estimate can be off by one either way due to rounding
	j := int(math.Ceil(x * float64(n)))
	if j > n {
		j = n
	}
	for j > 0 && position(j-1, n) >= x {
		j--
	}
	for j < n && position(j, n) < x {
		j++
	}
	return j
}

// fill paints all entries into g. With more than one routine the table is
// split into contiguous bands, one per goroutine, and every goroutine walks
// the entries in order, so overlapping segments still resolve last-write-wins.
func (b *builder) fill(g Gradient) {
	routines := b.routines
	if routines > len(g) {
		routines = len(g)
	}
	if routines <= 1 {
		b.paint(g, 0, len(g))
		return
	}

	band := (len(g) + routines - 1) / routines

	// standard fan out -> fan in, bands never share a sample
	wg := &sync.WaitGroup{}
	for from := 0; from < len(g); from += band {
		to := from + band
		if to > len(g) {
			to = len(g)
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			b.paint(g, from, to)
		}(from, to)
	}
	wg.Wait()
}

// paint applies every entry to the samples [from, to) of g.
func (b *builder) paint(g Gradient, from, to int) {
	for _, e := range b.entries {
		lo, hi := e.lo, e.hi
		if lo < from {
			lo = from
		}
		if hi > to {
			hi = to
		}

		width := e.seg.End - e.seg.Start
		for j := lo; j < hi; j++ {
			t := (position(j, b.resolution) - e.seg.Start) / width
			g[j] = e.start.Lerp(e.end, t)
		}
	}
}
