package generator

import (
	"errors"
	"testing"

	"randlab/domain/core"
)

func TestNew_UnknownSource(t *testing.T) {
	_, err := New("mersenne", 1)
	if !errors.Is(err, core.ErrUnknownSource) {
		t.Fatalf("err = %v, want ErrUnknownSource", err)
	}
}

func TestGenerate_AllSourcesStayInRange(t *testing.T) {
	const rangeN, count = 16, 500
	for _, name := range Names() {
		src, err := New(name, 42)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if src.Name() != name {
			t.Errorf("Name() = %q, want %q", src.Name(), name)
		}
		values, err := src.Generate(rangeN, count)
		if err != nil {
			t.Fatalf("%s: Generate: %v", name, err)
		}
		if len(values) != count {
			t.Fatalf("%s: got %d values, want %d", name, len(values), count)
		}
		for i, v := range values {
			if v < 0 || v >= rangeN {
				t.Fatalf("%s: values[%d] = %d outside [0, %d)", name, i, v, rangeN)
			}
		}
	}
}

func TestGenerate_RejectsBadDimensions(t *testing.T) {
	src, _ := New(SourceUniform, 1)

	if _, err := src.Generate(0, 10); !errors.Is(err, core.ErrRangeTooSmall) {
		t.Errorf("rangeN=0: err = %v, want ErrRangeTooSmall", err)
	}
	if _, err := src.Generate(8, 0); !errors.Is(err, core.ErrEmptySample) {
		t.Errorf("count=0: err = %v, want ErrEmptySample", err)
	}
}

func TestGenerate_SeededSourcesAreDeterministic(t *testing.T) {
	for _, name := range []string{SourceSimple, SourceUniform} {
		a, _ := New(name, 7)
		b, _ := New(name, 7)

		va, err := a.Generate(8, 64)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		vb, err := b.Generate(8, 64)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		for i := range va {
			if va[i] != vb[i] {
				t.Fatalf("%s: same seed diverged at index %d: %d vs %d", name, i, va[i], vb[i])
			}
		}
	}
}

func TestAll_CoversEveryName(t *testing.T) {
	sources := All(11)
	if len(sources) != len(Names()) {
		t.Fatalf("All returned %d sources, want %d", len(sources), len(Names()))
	}
	for i, name := range Names() {
		if sources[i].Name() != name {
			t.Errorf("sources[%d] = %q, want %q", i, sources[i].Name(), name)
		}
	}
}

func TestDescribe(t *testing.T) {
	values := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s, err := Describe(values)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if s.Mean != 4.5 {
		t.Errorf("mean = %v, want 4.5", s.Mean)
	}
	if s.Min != 0 || s.Max != 9 {
		t.Errorf("min/max = %v/%v, want 0/9", s.Min, s.Max)
	}
	if s.Median != 4.5 {
		t.Errorf("median = %v, want 4.5", s.Median)
	}
}
