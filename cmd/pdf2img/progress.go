package main

import (
	"fmt"
	"path/filepath"
)

// progressReporter implements pdf2img.Observer for terminal output.
// Failures always go to stderr; everything else respects quiet/verbose.
type progressReporter struct {
	env     *Environment
	quiet   bool
	verbose bool
}

func (p *progressReporter) DocumentStarted(path string, pages int) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stdout, "\n%s (%d pages)\n", filepath.Base(path), pages)
}

func (p *progressReporter) PageDone(page, total int, path string) {
	if p.quiet {
		return
	}
	if p.verbose {
		fmt.Fprintf(p.env.Stdout, "  page %d/%d saved: %s\n", page, total, filepath.Base(path))
		return
	}
	fmt.Fprintf(p.env.Stdout, "  page %d/%d saved\n", page, total)
}

func (p *progressReporter) DocumentFailed(path string, err error) {
	fmt.Fprintf(p.env.Stderr, "FAILED %s: %v\n", filepath.Base(path), err)
}

func (p *progressReporter) ArchiveCreated(path string, size int64) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.env.Stdout, "  archive %s (%.2f MiB)\n", filepath.Base(path), float64(size)/(1<<20))
}
