// Package mimekit detects the MIME type of data by inspecting its content
// rather than trusting a file name or a declared Content-Type.
//
// Detection walks a tree of format signatures from generic containers down
// to specific formats: a DOCX file is recognized first as a ZIP archive and
// then refined to the Word document type by looking at the archive entries.
// The walk is deterministic and total — [Detect] always returns a usable
// result, falling back to application/octet-stream when nothing matches.
//
// Only the first [ReadLimit] bytes of the input participate in detection,
// so classifying a multi-gigabyte file costs the same as classifying a
// small one.
//
// # Basic Usage
//
//	mt := mimekit.Detect(data)
//	fmt.Println(mt.MIME(), mt.Extension()) // e.g. "image/png" ".png"
//
//	mt, err := mimekit.DetectFile("report.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if mt.Kind().IsDocument() {
//	    // true: DOCX is a document, and an archive via its ZIP parent.
//	}
//
// MIME comparisons normalize optional parameters, so
// mt.Is("text/html; charset=utf-8") and mt.Is("text/html") agree, and
// registered aliases such as application/x-zip compare equal to
// application/zip.
//
// # Checking Against a Known Type
//
// When the question is "is this a PNG?" rather than "what is this?", the
// targeted matchers skip the tree walk:
//
//	ok := mimekit.MatchMIME(data, "image/png")
//	ok, err := mimekit.MatchFile("logo.img", "image/png")
//
// # Custom Formats
//
// Formats the library does not know can be added at runtime:
//
//	mimekit.RegisterMIME("application/x-myformat", func(in []byte) bool {
//	    return bytes.HasPrefix(in, []byte("MYFMT"))
//	})
//
// Registered matchers participate in [MatchMIME], [MatchExtension],
// [IsSupported] and [IsSupportedExtension]. They do not change the result
// of [Detect], which only consults the built-in tree. Registration is
// append-only: adding a matcher never removes or overrides an existing
// one, and detection results for already-recognized data never change.
//
// # Caching
//
// Workloads that classify the same payloads repeatedly can wrap detection
// in a [Detector], which memoizes results keyed by a hash of the sniffed
// bytes:
//
//	d, err := mimekit.NewDetector(1024)
//	mt := d.Detect(data)
//
// All package-level functions and Detector methods are safe for concurrent
// use.
package mimekit
