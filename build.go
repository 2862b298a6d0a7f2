package mlut

import (
	"fmt"

	"github.com/golang/glog"
)

// DefaultResolution is the number of samples Build produces unless told otherwise.
const DefaultResolution = 4096

// builder holds the validated inputs of a single Build call.
type builder struct {
	resolution int
	routines   int
	entries    []entry
}

// entry is one segment with its colours resolved and the sample indices it
// covers precomputed.
type entry struct {
	seg        Segment
	start, end Color
	lo, hi     int
}

// Build paints a gradient lookup table of Resolution samples (default 4096).
//
// Sample j sits at domain position j/resolution. Each (pair, segment) entry
// is applied in order: every sample whose position falls in the segment's
// half-open range [Start, End) is set to the linear blend of the pair's
// colours at that point. Later entries overwrite earlier ones where segments
// overlap, and samples no segment covers are left as UnsetColor.
//
// All inputs are validated before anything is painted; on error no gradient
// is returned.
func Build(pairs []ColorPair, segments []Segment, opts ...Option) (Gradient, error) {
	b := &builder{resolution: DefaultResolution, routines: 1}
	for _, opt := range opts {
		err := opt(b)
		if err != nil {
			return nil, err
		}
	}

	if len(pairs) != len(segments) {
		return nil, fmt.Errorf("%w: %d pairs, %d segments", ErrDimensionMismatch, len(pairs), len(segments))
	}

	b.entries = make([]entry, len(segments))
	for i, seg := range segments {
		if !seg.valid() {
			return nil, fmt.Errorf("%w: segment %d is [%v, %v)", ErrDegenerateSegment, i, seg.Start, seg.End)
		}
		start, end, err := pairs[i].resolve()
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		lo, hi := indexRange(seg, b.resolution)
		b.entries[i] = entry{seg: seg, start: start, end: end, lo: lo, hi: hi}
	}

	if glog.V(2) {
		glog.Infof("building gradient: %d segments, resolution %d, routines %d", len(b.entries), b.resolution, b.routines)
	}

	g := make(Gradient, b.resolution)
	b.fill(g)
	return g, nil
}
