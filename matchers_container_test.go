package mimekit

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"encoding/binary"
	"testing"
)

// buildZip creates an in-memory ZIP archive containing the given entries,
// each with a small payload.
func buildZip(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range names {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte("payload")); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDetectOfficeOpenXML(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected string
	}{
		{
			name:     "docx",
			entries:  []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"},
			expected: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		{
			name:     "xlsx",
			entries:  []string{"[Content_Types].xml", "xl/workbook.xml"},
			expected: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		},
		{
			name:     "pptx",
			entries:  []string{"ppt/presentation.xml"},
			expected: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		},
		{
			name:     "plain zip",
			entries:  []string{"random.txt", "other.bin"},
			expected: "application/zip",
		},
		{
			name:     "jar",
			entries:  []string{"META-INF/MANIFEST.MF", "Main.class"},
			expected: "application/java-archive",
		},
		{
			name:     "apk",
			entries:  []string{"AndroidManifest.xml", "classes.dex"},
			expected: "application/vnd.android.package-archive",
		},
		{
			name:     "kmz",
			entries:  []string{"doc.kml"},
			expected: "application/vnd.google-earth.kmz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildZip(t, tt.entries...)
			if got := Detect(data).MIME(); got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// buildOpenDocument crafts the start of an OpenDocument archive: the
// uncompressed "mimetype" entry must be first, so the type string sits
// right after the 30-byte local header.
func buildOpenDocument(mime string) []byte {
	var buf bytes.Buffer
	buf.WriteString("PK\x03\x04")
	header := make([]byte, 26)
	binary.LittleEndian.PutUint16(header[22:24], 8) // name length: "mimetype"
	buf.Write(header)
	buf.WriteString("mimetype")
	buf.WriteString(mime)
	return buf.Bytes()
}

func TestDetectOpenDocument(t *testing.T) {
	tests := []struct {
		name string
		mime string
	}{
		{"odt", "application/vnd.oasis.opendocument.text"},
		{"ods", "application/vnd.oasis.opendocument.spreadsheet"},
		{"odp", "application/vnd.oasis.opendocument.presentation"},
		{"epub", "application/epub+zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildOpenDocument(tt.mime)
			if got := Detect(data).MIME(); got != tt.mime {
				t.Errorf("Detect() = %q, want %q", got, tt.mime)
			}
		})
	}
}

func TestDetectTar(t *testing.T) {
	var buf bytes.Buffer
	w := tar.NewWriter(&buf)
	content := []byte("hello from tar")
	if err := w.WriteHeader(&tar.Header{Name: "hello.txt", Mode: 0o644, Size: int64(len(content))}); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	if got := Detect(buf.Bytes()).MIME(); got != "application/x-tar" {
		t.Errorf("Detect(tar) = %q, want application/x-tar", got)
	}
}

func TestTarRejectsCorruptChecksum(t *testing.T) {
	block := make([]byte, 512)
	copy(block, "some-file-name")
	copy(block[148:], "0000644\x00") // checksum does not add up
	if matchTar(block) {
		t.Error("corrupt checksum accepted")
	}
	if matchTar(make([]byte, 512)) {
		t.Error("all-zero block accepted")
	}
	if matchTar([]byte("short")) {
		t.Error("short input accepted")
	}
}

// buildOLE crafts a minimal compound file: header with 512-byte sectors,
// directory starting at sector 0, and the root entry CLSID at offset
// 512+80.
func buildOLE(clsid []byte) []byte {
	data := make([]byte, 1024)
	copy(data, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	binary.LittleEndian.PutUint16(data[30:32], 9) // 1<<9 = 512
	binary.LittleEndian.PutUint32(data[48:52], 0) // first directory sector
	copy(data[512+80:], clsid)
	return data
}

func TestDetectOLEFamily(t *testing.T) {
	tests := []struct {
		name     string
		clsid    []byte
		expected string
	}{
		{
			name: "word",
			clsid: []byte{0x06, 0x09, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
			expected: "application/msword",
		},
		{
			name: "excel",
			clsid: []byte{0x10, 0x08, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
			expected: "application/vnd.ms-excel",
		},
		{
			name: "powerpoint",
			clsid: []byte{0x10, 0x8D, 0x81, 0x64, 0x9B, 0x4F, 0xCF, 0x11,
				0x86, 0xEA, 0x00, 0xAA, 0x00, 0xB9, 0x29, 0xE8},
			expected: "application/vnd.ms-powerpoint",
		},
		{
			name: "installer",
			clsid: []byte{0x84, 0x10, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00,
				0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
			expected: "application/x-ms-installer",
		},
		{
			name:     "unknown clsid stays generic",
			clsid:    bytes.Repeat([]byte{0xAB}, 16),
			expected: "application/x-ole-storage",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := buildOLE(tt.clsid)
			if got := Detect(data).MIME(); got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestZipEntryNamesResync(t *testing.T) {
	// Streamed archives record zero sizes in the local header; the walk
	// must still find the following entries.
	data := buildZip(t, "first.txt", "second.txt", "third.txt")
	names := zipEntryNames(data)
	if len(names) < 3 {
		t.Fatalf("zipEntryNames found %d entries: %v", len(names), names)
	}
	for i, want := range []string{"first.txt", "second.txt", "third.txt"} {
		if names[i] != want {
			t.Errorf("entry %d = %q, want %q", i, names[i], want)
		}
	}
}

func TestDebInsideArchive(t *testing.T) {
	data := []byte("!<arch>\ndebian-binary   1234567890")
	if got := Detect(data).MIME(); got != "application/vnd.debian.binary-package" {
		t.Errorf("Detect(deb) = %q", got)
	}
	plain := []byte("!<arch>\nsomething-else ")
	if got := Detect(plain).MIME(); got != "application/x-archive" {
		t.Errorf("Detect(ar) = %q", got)
	}
}
