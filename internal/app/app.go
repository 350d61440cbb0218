// Package app implements the application layer for featvet.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/featvet/featvet/internal/adapters/telemetry"
	"github.com/featvet/featvet/internal/adapters/tui"
	"github.com/featvet/featvet/internal/core/domain"
	"github.com/featvet/featvet/internal/core/ports"
	"github.com/featvet/featvet/internal/engine/runner"
	"github.com/featvet/featvet/internal/ui/output"
	"github.com/featvet/featvet/internal/ui/style"
	"github.com/muesli/termenv"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.ConfigLoader
	extractor ports.DependencyExtractor
	store     ports.CombinationStore
	builder   ports.Builder
	runner    *runner.Runner
	logger    ports.Logger

	teaOptions []tea.ProgramOption
	stdout     io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	extractor ports.DependencyExtractor,
	store ports.CombinationStore,
	builder ports.Builder,
	run *runner.Runner,
	log ports.Logger,
) *App {
	return &App{
		loader:    loader,
		extractor: extractor,
		store:     store,
		builder:   builder,
		runner:    run,
		logger:    log,
		stdout:    os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithStdout redirects the report output, primarily for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath locates the configuration file. Empty means the
	// default file in the working directory.
	ConfigPath string
	// ManifestOverride replaces the manifest resolved from the project
	// root.
	ManifestOverride string
	// Jobs overrides the configured concurrency when positive.
	Jobs int
	// OutputMode forces a progress mode ("tui", "linear", "silent");
	// empty defers to environment detection.
	OutputMode string
}

// Run vets every feature combination of the configured project.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	started := time.Now()

	// 1. Assemble the project from configuration and manifest.
	project, err := a.loadProject(opts)
	if err != nil {
		return err
	}

	if project.Settings.ClearDisplay {
		a.clearDisplay()
	}
	a.logSummary(project)

	// 2. Resolve the combinations through the cache.
	combinations, err := a.resolveCombinations(project)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("%d unique combinations to vet", len(combinations)))

	// 3. Prepare the build directory.
	if project.Settings.Clean {
		a.logger.Info("cleaning project")
		if err := a.builder.Clean(ctx, project); err != nil {
			return err
		}
	}

	a.logger.Info("building project with all features")
	if err := a.builder.Build(ctx, project); err != nil {
		return err
	}

	// 4. Run the checks behind the progress renderer.
	jobs := project.Settings.Concurrency
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	sink := a.newTelemetry(ctx, len(combinations), opts.OutputMode)
	if err := sink.Start(ctx); err != nil {
		return zerr.Wrap(err, "failed to start progress renderer")
	}

	report, runErr := a.runner.Run(ctx, project, combinations, jobs, sink)
	if closeErr := sink.Close(); closeErr != nil {
		a.logger.Warn(fmt.Sprintf("progress renderer shutdown: %v", closeErr))
	}
	if runErr != nil {
		return zerr.Wrap(runErr, "vetting run aborted")
	}

	// 5. Report.
	if project.Settings.ClearDisplay {
		a.clearDisplay()
	}
	a.presentReport(report, time.Since(started))

	if !report.Passed() {
		return zerr.With(domain.ErrChecksFailed, "failed", len(report.Failures))
	}
	return nil
}

// Combos prints the combinations that a run would vet, one per line,
// without checking any of them.
func (a *App) Combos(opts RunOptions) error {
	project, err := a.loadProject(opts)
	if err != nil {
		return err
	}

	combinations, err := a.resolveCombinations(project)
	if err != nil {
		return err
	}

	for _, combination := range combinations {
		fmt.Fprintln(a.stdout, combination.Key())
	}
	return nil
}

// loadProject loads the configuration, derives the feature universe and
// dependency map, and assembles the project under vet.
func (a *App) loadProject(opts RunOptions) (*domain.Project, error) {
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.DefaultConfigFile
	}

	cfg, err := a.loader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	root := filepath.Dir(configPath)
	universe := domain.NewUniverse(cfg.Features)

	manifestPath := opts.ManifestOverride
	if manifestPath == "" {
		manifestPath = filepath.Join(root, domain.DefaultManifest)
	}

	dependencies, err := a.extractor.Extract(manifestPath, universe.Known())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to extract feature dependencies")
	}

	return &domain.Project{
		Root:         root,
		ManifestPath: manifestPath,
		Settings:     cfg.Settings,
		Universe:     universe,
		Dependencies: dependencies,
		Fingerprint:  domain.Fingerprint(universe.Strict, dependencies),
	}, nil
}

// resolveCombinations returns the cached combinations when the stored
// fingerprint still matches the project, and regenerates and persists
// them otherwise.
func (a *App) resolveCombinations(project *domain.Project) ([]domain.Combination, error) {
	cachePath := project.Settings.CacheFile
	if !filepath.IsAbs(cachePath) {
		cachePath = filepath.Join(project.Root, cachePath)
	}

	record, err := a.store.Load(cachePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load combination cache")
	}

	if record != nil && record.Matches(project.Fingerprint) {
		a.logger.Info("using cached combinations")
		return record.Combinations, nil
	}
	if record != nil {
		a.logger.Info("features have changed, regenerating combinations")
	} else {
		a.logger.Info("no cache found, generating combinations")
	}

	combinations := domain.GenerateCombinations(project.Universe, project.Dependencies)
	fresh := domain.CacheRecord{
		Fingerprint:  project.Fingerprint,
		Combinations: combinations,
	}
	if err := a.store.Store(cachePath, fresh); err != nil {
		return nil, zerr.Wrap(err, "failed to store combination cache")
	}
	return combinations, nil
}

// newTelemetry picks the progress renderer for the run.
func (a *App) newTelemetry(ctx context.Context, total int, modeName string) ports.Telemetry {
	switch telemetry.Resolve(telemetry.Detect(), modeName) {
	case telemetry.ModeTUI:
		opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.teaOptions...)
		return tui.NewRenderer(total, opts...)
	case telemetry.ModeSilent:
		return telemetry.NewNoop()
	default:
		out := output.NewWithProfile(a.stdout, output.ColorProfileANSI)
		return telemetry.NewRecorder(telemetry.NewLinear(out, total))
	}
}

// logSummary logs what the run is about to vet.
func (a *App) logSummary(project *domain.Project) {
	a.logger.Info(fmt.Sprintf("vetting project %s with %s", project.Root, project.Settings.Command))
	a.logger.Info(fmt.Sprintf("found features: %s", strings.Join(project.Universe.Strict, ", ")))
	if len(project.Universe.Extras) > 0 {
		a.logger.Info(fmt.Sprintf("found extra features: %s", strings.Join(project.Universe.Extras, ", ")))
	}
	for feature, dependencies := range project.Dependencies.Edges() {
		a.logger.Info(fmt.Sprintf("feature %s depends on %s", feature, strings.Join(dependencies, ", ")))
	}
	a.logger.Info(fmt.Sprintf("%d combinations possible", project.Universe.PossibleCombinations()))
}

// clearDisplay clears the terminal and homes the cursor.
func (a *App) clearDisplay() {
	fmt.Fprint(a.stdout, "\x1b[2J\x1b[H")
}

// presentReport prints the final outcome of the run.
func (a *App) presentReport(report *domain.Report, elapsed time.Duration) {
	out := output.New(a.stdout)

	if report.Passed() {
		check := out.String(style.Check).Foreground(termenv.ANSIGreen).String()
		fmt.Fprintf(a.stdout, "%s all %d combinations passed in %s\n",
			check, report.Total, elapsed.Round(time.Second))
		return
	}

	cross := out.String(style.Cross).Foreground(termenv.ANSIRed).String()
	fmt.Fprintf(a.stdout, "%s %d of %d combinations failed:\n",
		cross, len(report.Failures), report.Total)
	for _, failure := range report.SortedFailures() {
		fmt.Fprintf(a.stdout, "\nfailed combination: %s\n", failure.Combination.Label())
		if failure.Diagnostics != "" {
			fmt.Fprintln(a.stdout, strings.TrimRight(failure.Diagnostics, "\n"))
		}
	}
}
