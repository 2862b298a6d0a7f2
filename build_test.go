package mlut

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

var (
	red   = RGB(1, 0, 0)
	green = RGB(0, 1, 0)
	blue  = RGB(0, 0, 1)
	white = RGB(1, 1, 1)
)

func TestBuildLength(t *testing.T) {
	tests := []struct {
		name       string
		pairs      []ColorPair
		segments   []Segment
		resolution int
	}{
		{"empty", nil, nil, 16},
		{"single", []ColorPair{Pair(red, blue)}, []Segment{Seg(0, 1)}, 1},
		{"narrow", []ColorPair{Pair(red, blue)}, []Segment{Seg(0.4, 0.41)}, 7},
		{"outside domain", []ColorPair{Pair(red, blue)}, []Segment{Seg(1.5, 2)}, 100},
		{"overlapping", []ColorPair{Pair(red, blue), Pair(green, white)}, []Segment{Seg(-1, 2), Seg(0.2, 0.3)}, 333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.pairs, tt.segments, Resolution(tt.resolution))
			if err != nil {
				t.Fatal(err)
			}
			if len(g) != tt.resolution {
				t.Errorf("len = %d, want %d", len(g), tt.resolution)
			}
		})
	}
}

func TestBuildDefaultResolution(t *testing.T) {
	g, err := Build([]ColorPair{HexPair("84a98c", "52796f")}, []Segment{Seg(0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != DefaultResolution {
		t.Errorf("len = %d, want %d", g.Len(), DefaultResolution)
	}
}

func TestBuildFullDomain(t *testing.T) {
	c1 := MustParseHex("84a98c")
	c2 := MustParseHex("52796f")

	g, err := Build([]ColorPair{Pair(c1, c2)}, []Segment{Seg(0, 1)}, Resolution(4))
	if err != nil {
		t.Fatal(err)
	}

	if g[0] != c1 {
		t.Errorf("sample 0 = %+v, want %+v", g[0], c1)
	}
	for i, pos := range []float64{0, 0.25, 0.5, 0.75} {
		want := c1.Lerp(c2, pos)
		if !colorsEqual(g[i], want) {
			t.Errorf("sample %d = %+v, want %+v", i, g[i], want)
		}
		if g[i] == c2 {
			t.Errorf("sample %d reached the end colour", i)
		}
	}
}

func TestBuildHexMatchesNumeric(t *testing.T) {
	hex, err := Build([]ColorPair{HexPair("#ff0000", "0000ff")}, []Segment{Seg(0, 1)}, Resolution(64))
	if err != nil {
		t.Fatal(err)
	}
	num, err := Build([]ColorPair{Pair(red, blue)}, []Segment{Seg(0, 1)}, Resolution(64))
	if err != nil {
		t.Fatal(err)
	}
	for i := range hex {
		if hex[i] != num[i] {
			t.Fatalf("sample %d: hex %+v, numeric %+v", i, hex[i], num[i])
		}
	}
}

func TestBuildMixedInputs(t *testing.T) {
	pairs := []ColorPair{
		{Start: Hex("#ff0000"), End: blue},
		{Start: green, End: Hex("ffffff80")},
	}
	g, err := Build(pairs, []Segment{Seg(0, 0.5), Seg(0.5, 1)}, Resolution(4))
	if err != nil {
		t.Fatal(err)
	}
	if g[0] != red {
		t.Errorf("sample 0 = %+v, want red", g[0])
	}
	if g[2] != green {
		t.Errorf("sample 2 = %+v, want green", g[2])
	}
	if want := green.Lerp(Color{R: 1, G: 1, B: 1, A: 128.0 / 255}, 0.5); !colorsEqual(g[3], want) {
		t.Errorf("sample 3 = %+v, want %+v", g[3], want)
	}
}

func TestBuildAdjacentSegments(t *testing.T) {
	const n = 8
	g, err := Build(
		[]ColorPair{Pair(red, green), Pair(blue, white)},
		[]Segment{Seg(0, 0.5), Seg(0.5, 1)},
		Resolution(n),
	)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		pos := float64(i) / n
		var want Color
		if pos < 0.5 {
			want = red.Lerp(green, pos/0.5)
		} else {
			want = blue.Lerp(white, (pos-0.5)/0.5)
		}
		if !colorsEqual(g[i], want) {
			t.Errorf("sample %d = %+v, want %+v", i, g[i], want)
		}
	}

	// the shared boundary belongs to the second segment only
	if g[n/2] != blue {
		t.Errorf("sample at 0.5 = %+v, want the second segment's start", g[n/2])
	}
}

func TestBuildLastWriteWins(t *testing.T) {
	const n = 10
	g, err := Build(
		[]ColorPair{Pair(red, blue), Pair(green, white)},
		[]Segment{Seg(0, 1), Seg(0, 0.5)},
		Resolution(n),
	)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		pos := float64(i) / n
		want := red.Lerp(blue, pos)
		if pos < 0.5 {
			want = green.Lerp(white, pos/0.5)
		}
		if !colorsEqual(g[i], want) {
			t.Errorf("sample %d = %+v, want %+v", i, g[i], want)
		}
	}
}

func TestBuildUncovered(t *testing.T) {
	const n = 10
	g, err := Build([]ColorPair{Pair(red, blue)}, []Segment{Seg(0.2, 0.8)}, Resolution(n))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < n; i++ {
		pos := float64(i) / n
		covered := pos >= 0.2 && pos < 0.8
		if covered == g[i].IsUnset() {
			t.Errorf("sample %d at %v: unset = %v", i, pos, g[i].IsUnset())
		}
		if !covered && g[i] != UnsetColor {
			t.Errorf("sample %d = %+v, want %+v", i, g[i], UnsetColor)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		pairs    []ColorPair
		segments []Segment
		opts     []Option
		want     error
	}{
		{"mismatch", []ColorPair{Pair(red, blue)}, []Segment{Seg(0, 0.5), Seg(0.5, 1)}, nil, ErrDimensionMismatch},
		{"mismatch empty", []ColorPair{Pair(red, blue)}, nil, nil, ErrDimensionMismatch},
		{"equal bounds", []ColorPair{Pair(red, blue)}, []Segment{Seg(0.5, 0.5)}, nil, ErrDegenerateSegment},
		{"reversed", []ColorPair{Pair(red, blue)}, []Segment{Seg(0.6, 0.5)}, nil, ErrDegenerateSegment},
		{"nan", []ColorPair{Pair(red, blue)}, []Segment{Seg(math.NaN(), 0.5)}, nil, ErrDegenerateSegment},
		{"infinite", []ColorPair{Pair(red, blue)}, []Segment{Seg(math.Inf(-1), 0.5)}, nil, ErrDegenerateSegment},
		{"malformed hex", []ColorPair{HexPair("ZZFFFF", "ffffff")}, []Segment{Seg(0, 1)}, nil, ErrMalformedColor},
		{"missing colour", []ColorPair{{Start: red}}, []Segment{Seg(0, 1)}, nil, ErrMalformedColor},
		{"zero resolution", nil, nil, []Option{Resolution(0)}, ErrInvalidResolution},
		{"negative resolution", nil, nil, []Option{Resolution(-4)}, ErrInvalidResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Build(tt.pairs, tt.segments, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if g != nil {
				t.Errorf("got a gradient of %d samples alongside an error", len(g))
			}
		})
	}
}

func TestBuildRoutinesMatchSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	pairs := make([]ColorPair, 12)
	segments := make([]Segment, len(pairs))
	for i := range pairs {
		pairs[i] = Pair(
			Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: rng.Float64()},
			Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64(), A: rng.Float64()},
		)
		a, b := rng.Float64()*1.2-0.1, rng.Float64()*1.2-0.1
		if a > b {
			a, b = b, a
		}
		segments[i] = Seg(a, b+1e-3)
	}

	serial, err := Build(pairs, segments, Resolution(1000))
	if err != nil {
		t.Fatal(err)
	}

	for _, routines := range []int{0, 2, 3, 7, 999, 1000, 5000} {
		g, err := Build(pairs, segments, Resolution(1000), Routines(routines))
		if err != nil {
			t.Fatal(err)
		}
		for i := range serial {
			if g[i] != serial[i] {
				t.Fatalf("routines %d: sample %d = %+v, serial %+v", routines, i, g[i], serial[i])
			}
		}
	}
}

func TestIndexRangeMatchesScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	check := func(s Segment, n int) {
		lo, hi := indexRange(s, n)
		for j := 0; j < n; j++ {
			pos := float64(j) / float64(n)
			in := s.Start <= pos && pos < s.End
			if in != (j >= lo && j < hi) {
				t.Fatalf("segment %+v, n %d: index %d in scan = %v, range [%d, %d)", s, n, j, in, lo, hi)
			}
		}
	}

	for i := 0; i < 2000; i++ {
		n := 1 + rng.Intn(600)

		// bounds exactly on sample positions are the interesting case
		a, b := rng.Intn(n+2)-1, rng.Intn(n+2)-1
		if a > b {
			a, b = b, a
		}
		if a == b {
			b++
		}
		check(Seg(float64(a)/float64(n), float64(b)/float64(n)), n)

		x, y := rng.Float64()*1.4-0.2, rng.Float64()*1.4-0.2
		if x > y {
			x, y = y, x
		}
		check(Seg(x, y+1e-9), n)
	}

	check(Seg(0.1, 0.7), 10)
	check(Seg(1.0/3, 2.0/3), 3)
	check(Seg(0, 1), 1)
}
