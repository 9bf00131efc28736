package gen

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"vkstruct-generator/internal/analyze"
	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/diagnostic"
	"vkstruct-generator/internal/plan"
	"vkstruct-generator/internal/registry"
)

// Pipeline runs load -> classify -> resolve -> emit.
type Pipeline struct {
	Config *config.Config
	Logger *zap.SugaredLogger
}

// Result is the outcome of a successful run.
type Result struct {
	File *GeneratedFile
	Plan *plan.ResolvedPlan
	// Scanned counts the struct definitions seen in the registry.
	Scanned     int
	Diagnostics diagnostic.Diagnostics
}

// NewPipeline creates a Pipeline. A nil config means config.Default(),
// a nil logger discards everything.
func NewPipeline(cfg *config.Config, logger *zap.SugaredLogger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Pipeline{Config: cfg, Logger: logger}
}

// RunFile runs the pipeline on the registry at path.
func (p *Pipeline) RunFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %s: %w", path, err)
	}

	p.Logger.Debugw("registry loaded", "path", path, "bytes", len(data))

	return p.Run(bytes.NewReader(data))
}

// Run runs the pipeline on a registry document. Nothing is returned on
// error, so callers never see partial output.
func (p *Pipeline) Run(r io.Reader) (*Result, error) {
	reg, err := registry.Parse(r, p.Config.Selection)
	if err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics

	p.Logger.Debugw("registry parsed", "scanned", reg.Scanned, "qualifying", len(reg.Structs))

	if len(reg.Structs) == 0 {
		diags.AddInfo(diagnostic.CodeNoQualifyingSet, "registry has no qualifying structures", "", "")
	}

	structs := analyze.NewClassifier(p.Config.SkipSet(), &diags).ClassifyAll(reg.Structs)

	resolved, err := plan.Run(structs, p.Config)
	if err != nil {
		diags.Merge(resolved.Diagnostics)
		p.logDiagnostics(&diags)

		return nil, err
	}

	diags.Merge(resolved.Diagnostics)
	resolved.Diagnostics = diags

	gcfg := DefaultGeneratorConfig()
	gcfg.Header = p.Config.Header

	file, err := NewGenerator(gcfg).Generate(resolved)
	if err != nil {
		return nil, err
	}

	p.logDiagnostics(&diags)
	p.Logger.Infow("generated structures", "count", len(resolved.Structs), "bytes", len(file.Content))

	return &Result{
		File:        file,
		Plan:        resolved,
		Scanned:     reg.Scanned,
		Diagnostics: diags,
	}, nil
}

func (p *Pipeline) logDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.DiagnosticError:
			p.Logger.Errorw(d.Message, "code", d.Code, "struct", d.Struct, "field", d.Field)
		case diagnostic.DiagnosticWarning:
			p.Logger.Warnw(d.Message, "code", d.Code, "struct", d.Struct, "field", d.Field)
		default:
			p.Logger.Debugw(d.Message, "code", d.Code, "struct", d.Struct, "field", d.Field, "suggestions", d.Suggestions)
		}
	}
}
