package mimekit

import (
	"io"
	"os"
)

// ReadLimit is the maximum number of bytes detection examines. Inputs
// longer than this are truncated before matching; readers are never read
// past this many bytes. Every built-in signature fits well within the
// limit.
const ReadLimit = 3072

// Detect returns the MIME type of in. The result is never nil: data that
// matches no known signature, including an empty slice, reports
// application/octet-stream.
//
// Only the first ReadLimit bytes participate in detection.
func Detect(in []byte) *MIMEType {
	ensureInit()
	if len(in) > ReadLimit {
		in = in[:ReadLimit]
	}
	return root.match(in)
}

// DetectReader returns the MIME type of the data read from r. It reads at
// most ReadLimit bytes; a reader shorter than that is fine and io.EOF is
// not an error. Any other read error is returned as-is along with the
// fallback type, so the result is usable even on failure.
func DetectReader(r io.Reader) (*MIMEType, error) {
	ensureInit()
	buf := make([]byte, ReadLimit)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return root, err
	}
	return root.match(buf[:n]), nil
}

// DetectFile returns the MIME type of the file at path. The file is opened
// read-only and at most ReadLimit bytes are read from it. Open errors are
// returned as-is along with the fallback type.
func DetectFile(path string) (*MIMEType, error) {
	f, err := os.Open(path)
	if err != nil {
		ensureInit()
		return root, err
	}
	defer f.Close()
	return DetectReader(f)
}

// MatchMIME reports whether in matches the given MIME type. The lookup
// covers both built-in signatures and matchers added with RegisterMIME; an
// unknown MIME type never matches. The MIME string is normalized before
// lookup, so "text/html; charset=utf-8" and "text/html" are equivalent.
func MatchMIME(in []byte, mime string) bool {
	ensureInit()
	if len(in) > ReadLimit {
		in = in[:ReadLimit]
	}
	return mimeRegistry.match(normalizeMIME(mime), in)
}

// MatchReader reports whether the data read from r matches the given MIME
// type. At most ReadLimit bytes are read.
func MatchReader(r io.Reader, mime string) (bool, error) {
	buf := make([]byte, ReadLimit)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return MatchMIME(buf[:n], mime), nil
}

// MatchFile reports whether the file at path matches the given MIME type.
func MatchFile(path, mime string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return MatchReader(f, mime)
}

// MatchExtension reports whether in matches the signature registered for a
// file extension, e.g. ".png". The lookup covers built-in signatures and
// matchers added with RegisterExtension; an unknown extension never
// matches.
func MatchExtension(in []byte, extension string) bool {
	ensureInit()
	if len(in) > ReadLimit {
		in = in[:ReadLimit]
	}
	return extRegistry.match(extension, in)
}

// MatchReaderExtension reports whether the data read from r matches the
// signature registered for a file extension. At most ReadLimit bytes are
// read.
func MatchReaderExtension(r io.Reader, extension string) (bool, error) {
	buf := make([]byte, ReadLimit)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return MatchExtension(buf[:n], extension), nil
}

// MatchFileExtension reports whether the file at path matches the
// signature registered for a file extension.
func MatchFileExtension(path, extension string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()
	return MatchReaderExtension(f, extension)
}

// EqualsAny reports whether the normalized form of mime equals the
// normalized form of any of the candidates. It compares strings only and
// does not consult alias tables; use MIMEType.Is for alias-aware
// comparison.
func EqualsAny(mime string, candidates ...string) bool {
	mime = normalizeMIME(mime)
	for _, candidate := range candidates {
		if mime == normalizeMIME(candidate) {
			return true
		}
	}
	return false
}

// Lookup returns the built-in MIMEType node whose canonical MIME string or
// alias equals the normalized mime, or nil when no such format ships with
// the library. Custom matchers registered at runtime are not part of the
// tree and are not found by Lookup.
func Lookup(mime string) *MIMEType {
	ensureInit()
	mime = normalizeMIME(mime)
	for _, m := range root.Flatten() {
		if m.Is(mime) {
			return m
		}
	}
	return nil
}
