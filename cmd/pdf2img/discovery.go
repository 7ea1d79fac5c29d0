package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for input resolution.
var (
	ErrNoInputPath   = errors.New("no input specified: pass a PDF file or a directory of PDFs")
	ErrInputNotFound = errors.New("input not found")
	ErrNoDocuments   = errors.New("no PDF files found")
)

const pdfExtension = ".pdf"

// discoverDocuments resolves the input path to an ordered list of PDF files.
// A single file is returned as-is when it carries the .pdf extension
// (case-insensitive); anything else yields an empty list. A directory yields
// the regular .pdf files directly inside it, in lexicographic order, without
// recursing. An empty result is not an error here: the caller decides.
func discoverDocuments(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	if !info.IsDir() {
		if !hasPDFExtension(inputPath) {
			return nil, nil
		}
		return []string{inputPath}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputPath, err)
	}

	// os.ReadDir returns entries sorted by filename, which fixes the
	// processing order across runs.
	var docs []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !hasPDFExtension(e.Name()) {
			continue
		}
		docs = append(docs, filepath.Join(inputPath, e.Name()))
	}
	return docs, nil
}

func hasPDFExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), pdfExtension)
}
