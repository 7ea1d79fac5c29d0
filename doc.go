// Package pdf2img converts the pages of PDF documents into individually
// compressed JPEG images.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := pdf2img.New()
//	result, err := svc.Convert(ctx, "report.pdf", "output_images", pdf2img.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputDir, len(result.ImagePaths))
//
// Each document gets its own subdirectory under the output root, named after
// a sanitized form of the document's base name. Pages are written in order as
// {prefix}_001.jpg, {prefix}_002.jpg, and so on.
//
// # Conversion Pipeline
//
// The pipeline for one document runs these stages:
//
//  1. Sanitize the document stem and prepare the output directory
//     (refusing to reuse an existing one unless Overwrite is set)
//  2. Rasterize each page via MuPDF (go-fitz) at the configured zoom
//  3. Downscale pages wider than MaxWidth (Lanczos resampling)
//  4. Encode as JPEG at the configured quality and write to disk
//
// Use Service.Archive to bundle a document's images into a ZIP afterwards.
//
// # Progress Events
//
// The pipeline never prints; it emits events through an Observer instead:
//
//	svc := pdf2img.New(pdf2img.WithObserver(myObserver))
//
// # Testability
//
// The rasterizer, encoder, and archiver are small interfaces injectable via
// options (WithRasterizer, WithEncoder, WithArchiver), so tests can run the
// whole pipeline without MuPDF.
package pdf2img
