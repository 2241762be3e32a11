package mimekit

import (
	"bytes"
	"encoding/binary"
)

// ZIP-based formats. Office Open XML, OpenDocument, EPUB, JAR and friends
// are all ZIP archives distinguished by the entries they carry, so these
// matchers walk the local file headers instead of checking a magic number.

const (
	zipHeaderLen = 30
	// zipEntryLimit caps how many entries a matcher inspects. The
	// identifying entry sits at the front of well-formed files; walking
	// further just burns time on hostile input.
	zipEntryLimit = 6
)

var zipLocalHeader = []byte("PK\x03\x04")

// zipEntryNames yields the names of the first few local file entries. When
// an entry's compressed size is unknown (streamed archives write it in a
// trailing data descriptor) the walk resynchronizes on the next local
// header signature.
func zipEntryNames(in []byte) []string {
	var names []string
	offset := 0
	for count := 0; count < zipEntryLimit; count++ {
		if offset+zipHeaderLen > len(in) {
			break
		}
		if !bytes.Equal(in[offset:offset+4], zipLocalHeader) {
			break
		}
		compressedSize := binary.LittleEndian.Uint32(in[offset+18 : offset+22])
		nameLen := int(binary.LittleEndian.Uint16(in[offset+26 : offset+28]))
		extraLen := int(binary.LittleEndian.Uint16(in[offset+28 : offset+30]))
		nameEnd := offset + zipHeaderLen + nameLen
		if nameEnd > len(in) {
			break
		}
		names = append(names, string(in[offset+zipHeaderLen:nameEnd]))

		if compressedSize == 0 || compressedSize == 0xFFFFFFFF {
			next := bytes.Index(in[nameEnd:], zipLocalHeader)
			if next == -1 {
				break
			}
			offset = nameEnd + next
			continue
		}
		offset = nameEnd + extraLen + int(compressedSize)
	}
	return names
}

// zipContains reports whether one of the leading entries has any of the
// given names.
func zipContains(in []byte, wanted ...string) bool {
	for _, name := range zipEntryNames(in) {
		for _, w := range wanted {
			if name == w {
				return true
			}
		}
	}
	return false
}

// msoxml reports whether the archive is an Office Open XML document of the
// given flavor. The flavor directory ("word/", "xl/", "ppt/") usually
// appears within the first entries; packaging metadata entries are skipped
// because their position varies between producers.
func msoxml(in []byte, flavor string) bool {
	for _, name := range zipEntryNames(in) {
		if len(name) >= len(flavor) && name[:len(flavor)] == flavor {
			return true
		}
		switch {
		case name == "[Content_Types].xml",
			name == "_rels/.rels",
			name == "docProps/app.xml",
			name == "docProps/core.xml",
			len(name) >= 9 && name[:9] == "customXml":
			continue
		default:
			return false
		}
	}
	return false
}

func matchDocx(in []byte) bool { return msoxml(in, "word/") }
func matchXlsx(in []byte) bool { return msoxml(in, "xl/") }
func matchPptx(in []byte) bool { return msoxml(in, "ppt/") }

// OpenDocument files store their MIME type uncompressed as the very first
// entry, named "mimetype", so the type string sits at a fixed offset.
func zipMimetype(in []byte, mime string) bool {
	marker := "mimetype" + mime
	end := zipHeaderLen + len(marker)
	if len(in) < end {
		return false
	}
	return string(in[zipHeaderLen:end]) == marker
}

func matchODT(in []byte) bool {
	return zipMimetype(in, "application/vnd.oasis.opendocument.text")
}

func matchODS(in []byte) bool {
	return zipMimetype(in, "application/vnd.oasis.opendocument.spreadsheet")
}

func matchODP(in []byte) bool {
	return zipMimetype(in, "application/vnd.oasis.opendocument.presentation")
}

func matchEpub(in []byte) bool {
	return zipMimetype(in, "application/epub+zip")
}

func matchJar(in []byte) bool {
	return zipContains(in, "META-INF/MANIFEST.MF")
}

func matchAPK(in []byte) bool {
	return zipContains(in,
		"AndroidManifest.xml",
		"META-INF/com/android/build/gradle/app-metadata.properties",
		"classes.dex",
		"resources.arsc",
		"res/drawable")
}

func matchKMZ(in []byte) bool {
	return zipContains(in, "doc.kml")
}

// OLE compound storage. The member formats are told apart by the CLSID of
// the root directory entry. The directory location is derived from the
// header: sector size at offset 30 (stored as a power of two) and the
// first directory sector number at offset 48; the CLSID lives 80 bytes
// into the root entry.
func matchOLEClsid(in []byte, clsid []byte) bool {
	if len(in) < 52 {
		return false
	}
	sectorLength := 1 << binary.LittleEndian.Uint16(in[30:32])
	if sectorLength != 512 && sectorLength != 4096 {
		return false
	}
	firstSecID := int(binary.LittleEndian.Uint32(in[48:52]))
	clsidOffset := sectorLength*(1+firstSecID) + 80
	if clsidOffset < 0 || clsidOffset+len(clsid) > len(in) {
		return false
	}
	return bytes.HasPrefix(in[clsidOffset:], clsid)
}

func matchOLE(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
}

func matchDoc(in []byte) bool {
	if matchOLEClsid(in, []byte{
		0x06, 0x09, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}) {
		return true
	}
	// Older Word files leave the CLSID zeroed; the WordDocument stream
	// header right after the OLE header identifies them.
	return len(in) > 516 && bytes.Equal(in[512:516], []byte{0xEC, 0xA5, 0xC1, 0x00})
}

func matchXLS(in []byte) bool {
	if matchOLEClsid(in, []byte{
		0x10, 0x08, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}) {
		return true
	}
	if matchOLEClsid(in, []byte{
		0x20, 0x08, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}) {
		return true
	}
	return len(in) > 520 && bytes.Equal(in[512:520], []byte{0x09, 0x08, 0x10, 0x00, 0x00, 0x06, 0x05, 0x00})
}

func matchPPT(in []byte) bool {
	if matchOLEClsid(in, []byte{
		0x10, 0x8D, 0x81, 0x64, 0x9B, 0x4F, 0xCF, 0x11,
		0x86, 0xEA, 0x00, 0xAA, 0x00, 0xB9, 0x29, 0xE8,
	}) {
		return true
	}
	if len(in) < 516 {
		return false
	}
	stream := in[512:516]
	return bytes.Equal(stream, []byte{0xA0, 0x46, 0x1D, 0xF0}) ||
		bytes.Equal(stream, []byte{0x00, 0x6E, 0x1E, 0xF0}) ||
		bytes.Equal(stream, []byte{0x0F, 0x00, 0xE8, 0x03})
}

func matchPub(in []byte) bool {
	return matchOLEClsid(in, []byte{
		0x01, 0x12, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	})
}

func matchMsg(in []byte) bool {
	return matchOLEClsid(in, []byte{
		0x0B, 0x0D, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	})
}

func matchMSI(in []byte) bool {
	return matchOLEClsid(in, []byte{
		0x84, 0x10, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	})
}
