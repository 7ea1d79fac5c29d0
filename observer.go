package pdf2img

// Observer receives progress events from the conversion pipeline.
//
// The pipeline only emits events; it never writes to stdout or stderr
// itself, so callers decide how progress is surfaced (terminal output,
// logs, test assertions). All methods are called from the converting
// goroutine, in pipeline order.
type Observer interface {
	// DocumentStarted fires once the document is open and its page count
	// is known, before any page is rendered.
	DocumentStarted(path string, pages int)

	// PageDone fires after a page image has been written to disk.
	PageDone(page, total int, path string)

	// DocumentFailed fires when processing a document is abandoned.
	// Emitted by the batch driver, not by Service.Convert itself.
	DocumentFailed(path string, err error)

	// ArchiveCreated fires after a document's archive has been written.
	ArchiveCreated(path string, size int64)
}

// NopObserver ignores every event. It is the default for a Service built
// without WithObserver.
type NopObserver struct{}

func (NopObserver) DocumentStarted(string, int)  {}
func (NopObserver) PageDone(int, int, string)    {}
func (NopObserver) DocumentFailed(string, error) {}
func (NopObserver) ArchiveCreated(string, int64) {}
