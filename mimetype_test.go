package mimekit

import "testing"

func TestMIMETypeIs(t *testing.T) {
	tests := []struct {
		name     string
		mime     string
		expected bool
	}{
		{"canonical", "application/zip", true},
		{"alias", "application/x-zip", true},
		{"second alias", "application/x-zip-compressed", true},
		{"with parameter", "application/zip; foo=bar", true},
		{"surrounding whitespace", "  application/zip ", true},
		{"different type", "application/x-tar", false},
		{"empty", "", false},
	}

	zipType := Lookup("application/zip")
	if zipType == nil {
		t.Fatal("zip type not found")
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zipType.Is(tt.mime); got != tt.expected {
				t.Errorf("Is(%q) = %v, want %v", tt.mime, got, tt.expected)
			}
		})
	}
}

func TestMIMETypeIsNormalizesSelf(t *testing.T) {
	// The canonical name may itself carry a parameter; comparison must
	// strip it on both sides.
	html := Lookup("text/html")
	if html == nil {
		t.Fatal("html type not found")
	}
	if !html.Is("text/html") {
		t.Error("Is(text/html) = false")
	}
	if !html.Is("text/html; charset=utf-8") {
		t.Error("Is with parameter = false")
	}
}

func TestMIMETypeParent(t *testing.T) {
	docxData := buildZip(t, "word/document.xml")
	mt := Detect(docxData)
	if mt.MIME() != "application/vnd.openxmlformats-officedocument.wordprocessingml.document" {
		t.Fatalf("Detect(docx) = %q", mt.MIME())
	}
	parent := mt.Parent()
	if parent == nil || parent.MIME() != "application/zip" {
		t.Errorf("Parent() = %v, want application/zip", parent)
	}
	// Walking up ends at the fallback root.
	top := parent.Parent()
	if top == nil || top.MIME() != "application/octet-stream" {
		t.Errorf("grandparent = %v, want application/octet-stream", top)
	}
	if top.Parent() != nil {
		t.Error("root must have no parent")
	}
}

func TestMIMETypeKindInheritance(t *testing.T) {
	docx := Lookup("application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	if docx == nil {
		t.Fatal("docx type not found")
	}
	kind := docx.Kind()
	if !kind.IsDocument() {
		t.Error("docx kind must include document")
	}
	if !kind.IsArchive() {
		t.Error("docx kind must inherit archive from its zip parent")
	}
	if kind.IsImage() {
		t.Error("docx kind must not include image")
	}
}

func TestMIMETypeString(t *testing.T) {
	mt := Detect([]byte("%PDF-1.4"))
	if mt.String() != "application/pdf" {
		t.Errorf("String() = %q", mt.String())
	}
}

func TestFlattenContainsDescendants(t *testing.T) {
	all := Formats()
	if len(all) < 100 {
		t.Fatalf("Formats() returned %d entries, expected the full catalog", len(all))
	}
	if all[0].MIME() != "application/octet-stream" {
		t.Errorf("first format = %q, want the fallback", all[0].MIME())
	}
	seen := map[string]bool{}
	for _, m := range all {
		seen[m.MIME()] = true
	}
	for _, want := range []string{
		"application/zip",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"text/plain; charset=utf-8",
		"application/json",
		"image/png",
		"video/mp4",
		"audio/mpeg",
	} {
		if !seen[want] {
			t.Errorf("Formats() missing %q", want)
		}
	}
}

func TestNormalizeMIME(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"text/html", "text/html"},
		{"text/html; charset=utf-8", "text/html"},
		{"text/html;charset=utf-8", "text/html"},
		{" text/html ", "text/html"},
		{"text/html ; q=1", "text/html"},
		{"", ""},
		{";", ""},
	}
	for _, tt := range tests {
		if got := normalizeMIME(tt.in); got != tt.expected {
			t.Errorf("normalizeMIME(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}
