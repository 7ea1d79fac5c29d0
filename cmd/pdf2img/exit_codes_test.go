package main

import (
	"errors"
	"fmt"
	"testing"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "nil error",
			err:  nil,
			want: ExitSuccess,
		},
		{
			name: "input not found",
			err:  fmt.Errorf("%w: ./nope", ErrInputNotFound),
			want: ExitIO,
		},
		{
			name: "no documents found",
			err:  fmt.Errorf("%w: ./empty", ErrNoDocuments),
			want: ExitIO,
		},
		{
			name: "missing input path",
			err:  ErrNoInputPath,
			want: ExitUsage,
		},
		{
			name: "quality out of range",
			err:  fmt.Errorf("%w: 20", pdf2img.ErrQualityOutOfRange),
			want: ExitUsage,
		},
		{
			name: "invalid zoom",
			err:  fmt.Errorf("%w: got 0", pdf2img.ErrInvalidZoom),
			want: ExitUsage,
		},
		{
			name: "config not found",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "config parse failure",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigParse),
			want: ExitUsage,
		},
		{
			name: "unexpected error",
			err:  errors.New("boom"),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
