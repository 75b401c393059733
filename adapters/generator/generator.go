package generator

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"randlab/domain/core"
	"randlab/ports"
)

// Source names, stable across CLI flags, filenames and reports.
const (
	SourceSimple      = "simple"
	SourceUniform     = "uniform"
	SourceNormal      = "normal"
	SourceExponential = "exponential"
	SourcePoisson     = "poisson"
	SourceChiSquare   = "chi_square"
	SourceMixed       = "mixed"
)

// Names returns every source name in presentation order.
func Names() []string {
	return []string{
		SourceSimple, SourceUniform, SourceNormal,
		SourceExponential, SourcePoisson, SourceChiSquare, SourceMixed,
	}
}

// New creates the named sequence source. The seed drives the modulo and
// uniform sources and the mixture component choice; the continuous laws draw
// from gonum's default source.
func New(name string, seed int64) (ports.SequenceSource, error) {
	rng := rand.New(rand.NewSource(seed))
	switch name {
	case SourceSimple:
		return &simpleSource{rng: rng}, nil
	case SourceUniform:
		return &uniformSource{rng: rng}, nil
	case SourceNormal:
		return &normalSource{}, nil
	case SourceExponential:
		return &exponentialSource{}, nil
	case SourcePoisson:
		return &poissonSource{}, nil
	case SourceChiSquare:
		return &chiSquareSource{}, nil
	case SourceMixed:
		return newMixedSource(seed), nil
	default:
		return nil, core.NewUnknownSourceError(name)
	}
}

// All creates every source with seeds derived from the base seed.
func All(seed int64) []ports.SequenceSource {
	names := Names()
	sources := make([]ports.SequenceSource, len(names))
	for i, name := range names {
		src, _ := New(name, seed+int64(i))
		sources[i] = src
	}
	return sources
}

// clamp maps a continuous draw onto the integer range [0, rangeN).
func clamp(x float64, rangeN int) int {
	v := int(x)
	if v < 0 {
		return 0
	}
	if v >= rangeN {
		return rangeN - 1
	}
	return v
}

func checkRange(rangeN, count int) error {
	if rangeN < 1 {
		return core.ErrRangeTooSmall
	}
	if count < 1 {
		return core.ErrEmptySample
	}
	return nil
}

// simpleSource emulates the C-style rand()%N idiom: a wide draw reduced by
// modulo, bias included.
type simpleSource struct {
	rng *rand.Rand
}

func (s *simpleSource) Name() string { return SourceSimple }

func (s *simpleSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	values := make([]int, count)
	for i := range values {
		values[i] = int(s.rng.Int31()) % rangeN
	}
	return values, nil
}

// uniformSource draws from the unbiased uniform integer distribution.
type uniformSource struct {
	rng *rand.Rand
}

func (s *uniformSource) Name() string { return SourceUniform }

func (s *uniformSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	values := make([]int, count)
	for i := range values {
		values[i] = s.rng.Intn(rangeN)
	}
	return values, nil
}

// normalSource rounds draws from Normal(N/2, N/6) onto the range.
type normalSource struct{}

func (s *normalSource) Name() string { return SourceNormal }

func (s *normalSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	d := distuv.Normal{Mu: float64(rangeN) / 2, Sigma: float64(rangeN) / 6}
	values := make([]int, count)
	for i := range values {
		values[i] = clamp(d.Rand(), rangeN)
	}
	return values, nil
}

// exponentialSource rounds draws from Exponential with scale N/4.
type exponentialSource struct{}

func (s *exponentialSource) Name() string { return SourceExponential }

func (s *exponentialSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	d := distuv.Exponential{Rate: 4 / float64(rangeN)}
	values := make([]int, count)
	for i := range values {
		values[i] = clamp(d.Rand(), rangeN)
	}
	return values, nil
}

// poissonSource rounds draws from Poisson(N/2).
type poissonSource struct{}

func (s *poissonSource) Name() string { return SourcePoisson }

func (s *poissonSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	d := distuv.Poisson{Lambda: float64(rangeN) / 2}
	values := make([]int, count)
	for i := range values {
		values[i] = clamp(d.Rand(), rangeN)
	}
	return values, nil
}

// chiSquareSource rounds draws from ChiSquared(N/2).
type chiSquareSource struct{}

func (s *chiSquareSource) Name() string { return SourceChiSquare }

func (s *chiSquareSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	k := float64(rangeN) / 2
	if k < 1 {
		k = 1
	}
	d := distuv.ChiSquared{K: k}
	values := make([]int, count)
	for i := range values {
		values[i] = clamp(d.Rand(), rangeN)
	}
	return values, nil
}

// mixedSource blends the five non-mixed laws with equal weights, choosing a
// component per draw.
type mixedSource struct {
	rng        *rand.Rand
	components []ports.SequenceSource
}

func newMixedSource(seed int64) *mixedSource {
	names := []string{SourceUniform, SourceNormal, SourceExponential, SourcePoisson, SourceChiSquare}
	components := make([]ports.SequenceSource, len(names))
	for i, name := range names {
		components[i], _ = New(name, seed+100+int64(i))
	}
	return &mixedSource{
		rng:        rand.New(rand.NewSource(seed)),
		components: components,
	}
}

func (s *mixedSource) Name() string { return SourceMixed }

func (s *mixedSource) Generate(rangeN, count int) ([]int, error) {
	if err := checkRange(rangeN, count); err != nil {
		return nil, err
	}
	values := make([]int, count)
	for i := range values {
		component := s.components[s.rng.Intn(len(s.components))]
		one, err := component.Generate(rangeN, 1)
		if err != nil {
			return nil, err
		}
		values[i] = one[0]
	}
	return values, nil
}
