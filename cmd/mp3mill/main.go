// Command mp3mill batch-converts video files to compressed MP3 files by
// delegating to the external ffmpeg encoder.
//
// It parses flags (optionally over a TOML config file), validates
// configuration and paths, and either runs availability diagnostics
// (--check) or the conversion pipeline. The process exits 0 whenever a run
// completes, including runs with zero matches or per-file failures; only
// category errors (encoder unavailable, input directory missing, invalid
// configuration) exit nonzero.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/backmassage/mp3mill/internal/config"
	"github.com/backmassage/mp3mill/internal/deps"
	"github.com/backmassage/mp3mill/internal/display"
	"github.com/backmassage/mp3mill/internal/ffmpeg"
	"github.com/backmassage/mp3mill/internal/logging"
	"github.com/backmassage/mp3mill/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mp3mill: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := config.DefaultConfig()
	// Flag values land here first; only flags the user actually set are
	// copied into cfg, so config-file values hold unless overridden.
	overrides := config.DefaultConfig()
	var (
		configPath string
		colorMode  string
	)

	cmd := &cobra.Command{
		Use:           "mp3mill",
		Short:         "Batch-convert video files to compressed MP3s via ffmpeg",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configPath != "" {
				if err := config.LoadFile(configPath, &cfg); err != nil {
					return err
				}
			}
			applyOverrides(cmd, &cfg, &overrides, colorMode)
			return execute(&cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&overrides.InputDir, "input", "i", cfg.InputDir, "Directory containing video files to convert")
	f.StringVarP(&overrides.OutputDir, "output", "o", cfg.OutputDir, "Destination directory for converted MP3 files")
	f.StringVarP(&overrides.Bitrate, "bitrate", "b", cfg.Bitrate, "Target MP3 bitrate (e.g. 128k, 192k, 256k)")
	f.StringSliceVarP(&overrides.Extensions, "extensions", "e", cfg.Extensions, "Video file extensions to convert")
	f.BoolVarP(&overrides.Overwrite, "overwrite", "f", false, "Overwrite existing MP3 files instead of skipping them")
	f.BoolVarP(&overrides.Recursive, "recursive", "r", false, "Search for video files recursively inside the input directory")
	f.BoolVarP(&overrides.DryRun, "dry-run", "d", false, "Preview only; do not convert or write files")
	f.IntVar(&overrides.TimeoutSeconds, "timeout", cfg.TimeoutSeconds, "Per-file encoder timeout in seconds (0 = no limit)")
	f.StringVar(&colorMode, "color", string(cfg.ColorMode), "Colored log output: auto | always | never")
	f.StringVarP(&overrides.LogFile, "log", "l", "", "Append logs to file")
	f.BoolVarP(&overrides.Verbose, "verbose", "v", false, "Verbose output (per-file debug lines, no progress bar)")
	f.BoolVar(&overrides.CheckOnly, "check", false, "Report encoder availability and exit")
	f.StringVarP(&configPath, "config", "c", "", "TOML configuration file path")

	return cmd
}

// applyOverrides copies values for flags the user set into cfg. Precedence:
// flags > config file > defaults.
func applyOverrides(cmd *cobra.Command, cfg, overrides *config.Config, colorMode string) {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.InputDir = config.NormalizeDirArg(overrides.InputDir)
	}
	if f.Changed("output") {
		cfg.OutputDir = config.NormalizeDirArg(overrides.OutputDir)
	}
	if f.Changed("bitrate") {
		cfg.Bitrate = overrides.Bitrate
	}
	if f.Changed("extensions") {
		cfg.Extensions = overrides.Extensions
	}
	if f.Changed("overwrite") {
		cfg.Overwrite = overrides.Overwrite
	}
	if f.Changed("recursive") {
		cfg.Recursive = overrides.Recursive
	}
	if f.Changed("timeout") {
		cfg.TimeoutSeconds = overrides.TimeoutSeconds
	}
	if f.Changed("color") {
		cfg.ColorMode = config.ColorMode(colorMode)
	}
	if f.Changed("log") {
		cfg.LogFile = overrides.LogFile
	}
	cfg.DryRun = overrides.DryRun
	cfg.Verbose = overrides.Verbose
	cfg.CheckOnly = overrides.CheckOnly
}

func execute(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	if cfg.CheckOnly {
		return runCheck(log)
	}

	// Fail fast before any filesystem scanning or mutation.
	if err := deps.Verify(); err != nil {
		return err
	}
	fi, err := os.Stat(cfg.InputDir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("input directory %q does not exist or is not a directory", cfg.InputDir)
	}

	inputAbs, err := filepath.Abs(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	outputAbs, err := filepath.Abs(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		return err
	}

	log.Info("=== mp3mill v%s ===", version)
	log.Info("In:  %s", cfg.InputDir)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("Bitrate: %s", cfg.Bitrate)
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	// Cancel the pipeline between files on SIGINT/SIGTERM so the current
	// job finishes and the summary is still printed.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, finishing current file")
		cancel()
	}()

	inv := ffmpeg.NewInvoker(ffmpeg.ExecRunner{}, time.Duration(cfg.TimeoutSeconds)*time.Second)

	// The bar and verbose per-file lines fight over the terminal; verbose
	// mode logs instead of drawing.
	var progress pipeline.ProgressFunc
	if !cfg.Verbose {
		progress = display.ProgressSink(os.Stdout)
	}

	stats, err := pipeline.Run(ctx, cfg, log, inv, progress)
	if err != nil {
		return err
	}
	fmt.Println(display.RenderSummary(stats, cfg.DryRun))

	// Per-file failures are already accounted in the summary; a completed
	// run exits 0 regardless.
	return nil
}

// runCheck prints the availability report and fails only when a required
// dependency is missing.
func runCheck(log *logging.Logger) error {
	statuses := deps.Check(deps.Requirements())
	fmt.Println(display.RenderCheck(statuses))

	if ver := deps.EncoderVersion(); ver != "" {
		log.Info("%s", ver)
	}

	for _, st := range statuses {
		if !st.Available && !st.Optional {
			return errors.New("required dependency missing: " + st.Name)
		}
	}
	return nil
}
