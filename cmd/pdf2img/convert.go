package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
)

// Directory permissions for the output root.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// archiveSuffix names a document's ZIP after its sanitized stem.
const archiveSuffix = "_images.zip"

// Converter is the interface runConvert needs from the conversion service.
type Converter interface {
	Convert(ctx context.Context, docPath, outRoot string, opts pdf2img.ConvertOptions) (*pdf2img.ConvertResult, error)
	Archive(archivePath string, files []string) (int64, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pdf2img.Service)(nil)

// batchSummary aggregates per-document outcomes for the final report.
type batchSummary struct {
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// runConvert orchestrates the whole batch: config, validation, discovery,
// and one independent conversion per document.
func runConvert(ctx context.Context, args []string, flags *convertFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		var err error
		cfg, err = config.LoadConfig(flags.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	if len(args) == 0 {
		return ErrNoInputPath
	}
	if len(args) > 1 {
		return fmt.Errorf("unexpected arguments after %s: %v", args[0], args[1:])
	}
	inputPath := args[0]

	opts := pdf2img.ConvertOptions{
		Zoom:      cfg.Render.Zoom,
		Quality:   cfg.Render.Quality,
		MaxWidth:  cfg.Render.MaxWidth,
		Prefix:    cfg.Render.Prefix,
		Archive:   cfg.Archive.Enabled,
		Overwrite: cfg.Overwrite,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	outRoot := cfg.Output.Dir
	if err := os.MkdirAll(outRoot, dirPermissions); err != nil {
		return fmt.Errorf("creating output root: %w", err)
	}

	docs, err := discoverDocuments(inputPath)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoDocuments, inputPath)
	}

	if flags.verbose {
		fmt.Fprintf(env.Stdout, "Output root: %s\n", outRoot)
		fmt.Fprintf(env.Stdout, "Settings: zoom=%g quality=%d max-width=%d zip=%t overwrite=%t\n",
			opts.Zoom, opts.Quality, opts.MaxWidth, opts.Archive, opts.Overwrite)
	}

	reporter := &progressReporter{env: env, quiet: flags.quiet, verbose: flags.verbose}
	service := pdf2img.New(pdf2img.WithObserver(reporter))

	summary := convertAll(ctx, service, reporter, docs, outRoot, opts, env.Now)

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "\nDone: %d converted, %d failed (%v)\n",
			summary.Succeeded, summary.Failed, summary.Elapsed.Round(time.Millisecond))
	}

	// Per-document failures were already reported through the observer; the
	// batch itself completed, so it exits clean.
	return nil
}

// convertAll processes documents sequentially. A failure in one document
// never aborts the rest.
func convertAll(ctx context.Context, service Converter, obs pdf2img.Observer,
	docs []string, outRoot string, opts pdf2img.ConvertOptions, now func() time.Time) batchSummary {

	start := now()
	var summary batchSummary

	for _, doc := range docs {
		if err := convertOne(ctx, service, doc, outRoot, opts); err != nil {
			obs.DocumentFailed(doc, err)
			summary.Failed++
			continue
		}
		summary.Succeeded++
	}

	summary.Elapsed = now().Sub(start)
	return summary
}

// convertOne renders a single document and, when enabled, archives its images.
func convertOne(ctx context.Context, service Converter, doc, outRoot string, opts pdf2img.ConvertOptions) error {
	result, err := service.Convert(ctx, doc, outRoot, opts)
	if err != nil {
		return err
	}

	if !opts.Archive {
		return nil
	}

	archivePath := filepath.Join(result.OutputDir, result.BaseName+archiveSuffix)
	if _, err := service.Archive(archivePath, result.ImagePaths); err != nil {
		return err
	}
	return nil
}
