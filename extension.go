package mimekit

import "strings"

// LookupExtension returns the built-in MIMEType node registered for a file
// extension, or nil when no built-in format claims it. The extension may be
// given with or without the leading dot and is matched case-insensitively.
// Extensions shared by several formats (".mp4" belongs to both the video
// and the audio container) resolve to the node that appears first in
// detection priority order.
func LookupExtension(extension string) *MIMEType {
	ensureInit()
	extension = strings.ToLower(extension)
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	if extension == "" {
		return nil
	}
	for _, m := range root.Flatten() {
		if m.extension == extension {
			return m
		}
		for _, alias := range m.extAliases {
			if alias == extension {
				return m
			}
		}
	}
	return nil
}

// Formats returns every built-in format in detection priority order,
// starting with the application/octet-stream fallback. The returned slice
// is freshly allocated; the nodes themselves are shared and must not be
// mutated.
func Formats() []*MIMEType {
	ensureInit()
	return root.Flatten()
}

// FormatsByKind returns the built-in formats whose category includes kind.
func FormatsByKind(kind Kind) []*MIMEType {
	var result []*MIMEType
	for _, m := range Formats() {
		if m.Kind().Contains(kind) {
			result = append(result, m)
		}
	}
	return result
}
