package app

import (
	"io"
	"time"

	"pcoslens/adapters/excel"
	"pcoslens/domain/core"
	"pcoslens/domain/dataset"
	"pcoslens/internal"
	"pcoslens/internal/analysis"
	"pcoslens/internal/config"
	"pcoslens/internal/errors"
	"pcoslens/internal/report"
)

// AnalysisService runs one analysis end to end: load, analyze, print, persist.
type AnalysisService struct {
	cfg      *config.Config
	console  *report.ConsoleRenderer
	document *report.DocumentWriter
	logger   *internal.Logger
}

// NewAnalysisService wires the service; the console report goes to stdout.
func NewAnalysisService(cfg *config.Config, stdout io.Writer, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &AnalysisService{
		cfg:      cfg,
		console:  report.NewConsoleRenderer(stdout),
		document: report.NewDocumentWriter(cfg.Output.Path),
		logger:   logger,
	}
}

// Run analyzes the dataset at inputPath. The console report is printed before
// the results document is written; the save confirmation and recommendations
// only follow a successful write. The result is returned for callers that
// want it in memory.
func (s *AnalysisService) Run(inputPath string) (*dataset.AnalysisResult, error) {
	runID := core.NewRunID()
	logger := s.logger.With("run_id", runID.String())
	startTime := time.Now()

	reader := excel.NewDataReaderWithConfig(inputPath, excel.ReaderConfig{SheetName: s.cfg.Input.SheetName}, logger)
	ds, err := reader.ReadDataset()
	if err != nil {
		return nil, err
	}

	result, err := analysis.NewAnalyzer(logger).Analyze(ds)
	if err != nil {
		return nil, err
	}

	if err := s.console.RenderAnalysis(result); err != nil {
		return nil, errors.Wrap(err, "failed to print report")
	}

	if err := s.document.Write(result); err != nil {
		return nil, err
	}

	if err := s.console.RenderSaved(s.document.Path()); err != nil {
		return nil, errors.Wrap(err, "failed to print report")
	}

	logger.Info("analysis of %s finished in %s", inputPath, time.Since(startTime).Round(time.Millisecond))
	return result, nil
}
