package mimekit

import "testing"

func TestLookupExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		expected  string
	}{
		{"with dot", ".png", "image/png"},
		{"without dot", "png", "image/png"},
		{"uppercase", ".PNG", "image/png"},
		{"alias extension", ".jpeg", "image/jpeg"},
		{"tgz resolves to gzip", ".tgz", "application/gzip"},
		{"docx", ".docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt := LookupExtension(tt.extension)
			if mt == nil {
				t.Fatalf("LookupExtension(%q) = nil", tt.extension)
			}
			if mt.MIME() != tt.expected {
				t.Errorf("LookupExtension(%q) = %q, want %q", tt.extension, mt.MIME(), tt.expected)
			}
		})
	}

	if mt := LookupExtension(".does-not-exist"); mt != nil {
		t.Errorf("LookupExtension(unknown) = %v, want nil", mt)
	}
	if mt := LookupExtension(""); mt != nil {
		t.Errorf("LookupExtension(empty) = %v, want nil", mt)
	}
}

func TestLookupExtensionPriorityOrder(t *testing.T) {
	// ".mp4" belongs to the video container and the audio container; the
	// earlier node in detection order wins.
	mt := LookupExtension(".mp4")
	if mt == nil {
		t.Fatal("LookupExtension(.mp4) = nil")
	}
	if mt.MIME() != "video/mp4" {
		t.Errorf("LookupExtension(.mp4) = %q, want video/mp4", mt.MIME())
	}
}

func TestFormatsByKind(t *testing.T) {
	fonts := FormatsByKind(KindFont)
	if len(fonts) < 5 {
		t.Errorf("FormatsByKind(font) returned %d formats", len(fonts))
	}
	for _, mt := range fonts {
		if !mt.Kind().IsFont() {
			t.Errorf("%s in font list but kind = %v", mt.MIME(), mt.Kind())
		}
	}

	// Kind inheritance: the spreadsheet list includes both the OOXML and
	// the legacy Excel format.
	var seenXlsx, seenXls bool
	for _, mt := range FormatsByKind(KindSpreadsheet) {
		switch mt.MIME() {
		case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
			seenXlsx = true
		case "application/vnd.ms-excel":
			seenXls = true
		}
	}
	if !seenXlsx || !seenXls {
		t.Errorf("spreadsheet kinds incomplete: xlsx=%v xls=%v", seenXlsx, seenXls)
	}
}
