package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"randlab/adapters/export"
	"randlab/adapters/generator"
	"randlab/adapters/stats/tests"
	"randlab/domain/battery"
	"randlab/domain/sample"
	"randlab/internal"
	"randlab/internal/instrument"
	"randlab/ports"
)

// AnalysisService runs the full pipeline per source: generate a sequence,
// evaluate the battery, export the artifacts, optionally persist the report.
type AnalysisService struct {
	battery *tests.Battery
	store   ports.ReportStore // nil disables persistence
	logger  *internal.Logger
}

// AnalysisRequest defines one batch of source analyses.
type AnalysisRequest struct {
	Sources     []ports.SequenceSource
	RangeN      int
	Count       int
	Battery     battery.Config
	OutputDir   string
	WriteBinary bool
}

// SourceOutcome is the per-source result of the pipeline.
type SourceOutcome struct {
	Source  string                  `json:"source"`
	Report  *battery.Report         `json:"report"`
	Summary generator.Summary       `json:"summary"`
	Phases  []instrument.PhaseStats `json:"phases"`
	Files   []string                `json:"files"`
}

// NewAnalysisService creates an analysis service. store may be nil.
func NewAnalysisService(b *tests.Battery, store ports.ReportStore, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{battery: b, store: store, logger: logger}
}

// Run analyzes every requested source. Sources are independent and run
// under an errgroup; the first hard error cancels the batch.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) ([]SourceOutcome, error) {
	if err := export.EnsureDir(req.OutputDir); err != nil {
		return nil, fmt.Errorf("output directory: %w", err)
	}

	outcomes := make([]SourceOutcome, len(req.Sources))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range req.Sources {
		i, src := i, src
		g.Go(func() error {
			outcome, err := s.runOne(gctx, src, req)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

func (s *AnalysisService) runOne(ctx context.Context, src ports.SequenceSource, req AnalysisRequest) (SourceOutcome, error) {
	outcome := SourceOutcome{Source: src.Name()}

	genPhase := instrument.Start("generate")
	values, err := src.Generate(req.RangeN, req.Count)
	if err != nil {
		return outcome, err
	}
	outcome.Phases = append(outcome.Phases, genPhase.Stop())

	testPhase := instrument.Start("battery")
	report, err := s.battery.RunAll(ctx, values, req.RangeN, req.Battery)
	if err != nil {
		return outcome, err
	}
	report.Source = src.Name()
	outcome.Report = report
	outcome.Phases = append(outcome.Phases, testPhase.Stop())

	summary, err := generator.Describe(values)
	if err != nil {
		return outcome, err
	}
	outcome.Summary = summary

	exportPhase := instrument.Start("export")
	smp, err := sample.New(values, req.RangeN)
	if err != nil {
		return outcome, err
	}
	files, err := s.exportAll(src.Name(), smp, report, req)
	if err != nil {
		return outcome, err
	}
	outcome.Files = files
	outcome.Phases = append(outcome.Phases, exportPhase.Stop())

	if s.store != nil {
		if err := s.store.SaveReport(ctx, report); err != nil {
			return outcome, fmt.Errorf("store report: %w", err)
		}
	}

	for _, p := range outcome.Phases {
		s.logger.Info("%s %s", src.Name(), p)
	}
	return outcome, nil
}

func (s *AnalysisService) exportAll(name string, smp sample.Sample, report *battery.Report, req AnalysisRequest) ([]string, error) {
	var files []string

	freqPath := filepath.Join(req.OutputDir, name+"_frequency.csv")
	if err := export.WriteFrequencyCSV(freqPath, report.Frequencies); err != nil {
		return nil, err
	}
	files = append(files, freqPath)

	gapPath := filepath.Join(req.OutputDir, name+"_gaps.csv")
	if err := export.WriteGapCSV(gapPath, smp); err != nil {
		return nil, err
	}
	files = append(files, gapPath)

	jsonPath := filepath.Join(req.OutputDir, name+"_report.json")
	if err := export.WriteReportJSON(jsonPath, report); err != nil {
		return nil, err
	}
	files = append(files, jsonPath)

	xlsxPath := filepath.Join(req.OutputDir, name+"_report.xlsx")
	if err := export.WriteReportXLSX(xlsxPath, report); err != nil {
		return nil, err
	}
	files = append(files, xlsxPath)

	if req.WriteBinary {
		binPath := filepath.Join(req.OutputDir, name+".bin")
		if err := export.WriteBinarySample(binPath, smp.Values, smp.RangeN); err != nil {
			return nil, err
		}
		files = append(files, binPath)
	}

	return files, nil
}
