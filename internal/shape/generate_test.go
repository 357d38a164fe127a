package shape

import (
	"reflect"
	"testing"
)

func TestGenerateSize(t *testing.T) {
	for _, n := range []int{0, 1, 4, 1000} {
		shapes := Generate(n, NewRand(7))
		if len(shapes) != n {
			t.Fatalf("Generate(%d) returned %d shapes", n, len(shapes))
		}
		for i, s := range shapes {
			if s == nil {
				t.Fatalf("Generate(%d)[%d] is nil", n, i)
			}
			if k := s.Kind(); k >= KindCount {
				t.Fatalf("Generate(%d)[%d] has kind %v", n, i, k)
			}
		}
	}
}

func TestGenerateEmptyNotNil(t *testing.T) {
	if shapes := Generate(0, NewRand(1)); shapes == nil {
		t.Fatal("Generate(0) returned nil slice")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(500, NewRand(42))
	b := Generate(500, NewRand(42))
	if !reflect.DeepEqual(a, b) {
		t.Fatal("same seed produced different populations")
	}
	c := Generate(500, NewRand(43))
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical populations")
	}
}

// 均匀分布下10万个形状每种大约2.5万个，这里只检查四种都出现且不太离谱
func TestGenerateCoversAllKinds(t *testing.T) {
	var counts [KindCount]int
	for _, s := range Generate(PopulationSize, NewRand(1)) {
		counts[s.Kind()]++
	}
	for k, c := range counts {
		if c < PopulationSize/5 || c > PopulationSize*3/10 {
			t.Errorf("kind %v drawn %d times out of %d", Kind(k), c, PopulationSize)
		}
	}
}

func TestGenerateParamsInUnitRange(t *testing.T) {
	in := func(v float32) bool { return v >= 0 && v < 1 }
	for i, s := range Generate(1000, NewRand(3)) {
		var ok bool
		switch v := s.(type) {
		case Square:
			ok = in(v.Side)
		case Rectangle:
			ok = in(v.Width) && in(v.Height)
		case Triangle:
			ok = in(v.Base) && in(v.Height)
		case Circle:
			ok = in(v.Radius)
		}
		if !ok {
			t.Fatalf("shape %d has parameters out of [0,1): %#v", i, s)
		}
	}
}

func TestGenerateNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Generate(-1) did not panic")
		}
	}()
	Generate(-1, NewRand(1))
}
