package mimekit

import (
	"bytes"
	"encoding/binary"
)

// Image signatures.

func matchPNG(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A})
}

// matchAPNG walks the PNG chunk list looking for an acTL chunk before the
// first IDAT. Chunk layout is 4-byte big-endian length, 4-byte type,
// payload, 4-byte CRC.
func matchAPNG(in []byte) bool {
	if !matchPNG(in) {
		return false
	}
	offset := 8
	for offset+8 <= len(in) {
		length := binary.BigEndian.Uint32(in[offset : offset+4])
		chunkType := in[offset+4 : offset+8]
		switch {
		case bytes.Equal(chunkType, []byte("acTL")):
			return true
		case bytes.Equal(chunkType, []byte("IDAT")):
			return false
		}
		offset += 8 + int(length) + 4
	}
	return false
}

func matchJPEG(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFF, 0xD8, 0xFF})
}

// jpeg2000 checks the JP2 signature box and the brand stored in the file
// type box at offset 20.
func jpeg2000(in []byte, brand []byte) bool {
	if len(in) < 24 {
		return false
	}
	if !bytes.Equal(in[4:8], []byte("jP  ")) && !bytes.Equal(in[4:8], []byte("jP2 ")) {
		return false
	}
	return bytes.Equal(in[20:24], brand)
}

func matchJP2(in []byte) bool { return jpeg2000(in, []byte("jp2 ")) }
func matchJPX(in []byte) bool { return jpeg2000(in, []byte("jpx ")) }

func matchJXL(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFF, 0x0A}) ||
		bytes.HasPrefix(in, []byte("\x00\x00\x00\x0CJXL \x0D\x0A\x87\x0A"))
}

func matchJXR(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x49, 0x49, 0xBC, 0x01})
}

func matchGIF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("GIF87a")) || bytes.HasPrefix(in, []byte("GIF89a"))
}

func matchWebP(in []byte) bool {
	return len(in) > 12 &&
		bytes.Equal(in[0:4], []byte("RIFF")) &&
		bytes.Equal(in[8:12], []byte("WEBP"))
}

func matchTIFF(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x49, 0x49, 0x2A, 0x00}) ||
		bytes.HasPrefix(in, []byte{0x4D, 0x4D, 0x00, 0x2A})
}

func matchBMP(in []byte) bool {
	return len(in) > 13 && in[0] == 'B' && in[1] == 'M'
}

func matchICO(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x00, 0x00, 0x01, 0x00})
}

func matchICNS(in []byte) bool {
	return bytes.HasPrefix(in, []byte("icns"))
}

func matchPSD(in []byte) bool {
	return bytes.HasPrefix(in, []byte("8BPS"))
}

// Netpbm family. The magic is "P" plus a digit followed by whitespace.
func netpbm(in []byte, digits string) bool {
	if len(in) < 3 || in[0] != 'P' {
		return false
	}
	if !bytes.ContainsRune([]byte(digits), rune(in[1])) {
		return false
	}
	return in[2] == ' ' || in[2] == '\t' || in[2] == '\n' || in[2] == '\r'
}

func matchPBM(in []byte) bool { return netpbm(in, "14") }
func matchPGM(in []byte) bool { return netpbm(in, "25") }
func matchPPM(in []byte) bool { return netpbm(in, "36") }
func matchPAM(in []byte) bool { return bytes.HasPrefix(in, []byte("P7\n")) }

func matchBPG(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x42, 0x50, 0x47, 0xFB})
}

func matchDDS(in []byte) bool {
	return bytes.HasPrefix(in, []byte("DDS "))
}

func matchXCF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("gimp xcf"))
}

func matchGimpPat(in []byte) bool {
	return len(in) > 24 && bytes.Equal(in[20:24], []byte("GPAT"))
}

func matchGimpGbr(in []byte) bool {
	return len(in) > 24 && bytes.Equal(in[20:24], []byte("GIMP"))
}

func matchHDR(in []byte) bool {
	return bytes.HasPrefix(in, []byte("#?RADIANCE\n"))
}

func matchXPM(in []byte) bool {
	return bytes.HasPrefix(in, []byte("/* XPM */"))
}

var dwgVersions = []string{
	"1.40", "1.50", "2.10",
	"1002", "1003", "1004", "1006", "1009", "1012",
	"1014", "1015", "1018", "1021", "1024", "1027", "1032",
}

func matchDWG(in []byte) bool {
	if len(in) < 6 || in[0] != 'A' || in[1] != 'C' {
		return false
	}
	version := string(in[2:6])
	for _, v := range dwgVersions {
		if version == v {
			return true
		}
	}
	return false
}

// matchDXF looks for the header section marker in the first lines of the
// file: a "0" group code line followed by "SECTION".
func matchDXF(in []byte) bool {
	lines := bytes.SplitN(in, []byte("\n"), 3)
	if len(lines) < 2 {
		return false
	}
	first := bytes.TrimSpace(lines[0])
	second := bytes.TrimSpace(lines[1])
	return bytes.Equal(first, []byte("0")) && bytes.Equal(second, []byte("SECTION"))
}

func matchDICOM(in []byte) bool {
	return len(in) > 131 && bytes.Equal(in[128:132], []byte("DICM"))
}

// Audio signatures.

// matchMP3 accepts files with an ID3v2 tag and raw MPEG audio streams,
// which start with an 11-bit frame sync.
func matchMP3(in []byte) bool {
	if bytes.HasPrefix(in, []byte("ID3")) {
		return true
	}
	return len(in) > 1 && binary.BigEndian.Uint16(in[:2])&0xFFE6 == 0xFFE2
}

func matchFLAC(in []byte) bool {
	return bytes.HasPrefix(in, []byte("fLaC"))
}

func matchMIDI(in []byte) bool {
	return bytes.HasPrefix(in, []byte("MThd"))
}

func matchWAV(in []byte) bool {
	return len(in) > 12 &&
		bytes.Equal(in[0:4], []byte("RIFF")) &&
		bytes.Equal(in[8:12], []byte("WAVE"))
}

func matchAIFF(in []byte) bool {
	return len(in) > 12 &&
		bytes.Equal(in[0:4], []byte("FORM")) &&
		bytes.Equal(in[8:12], []byte("AIFF"))
}

func matchQCP(in []byte) bool {
	return len(in) > 12 &&
		bytes.Equal(in[0:4], []byte("RIFF")) &&
		bytes.Equal(in[8:12], []byte("QLCM"))
}

func matchApe(in []byte) bool {
	return bytes.HasPrefix(in, []byte("MAC \x96\x0F\x00\x00\x34\x00\x00\x00\x18\x00\x00\x00\x90\xE3"))
}

func matchMusePack(in []byte) bool {
	return bytes.HasPrefix(in, []byte("MPCK"))
}

func matchAu(in []byte) bool {
	return bytes.HasPrefix(in, []byte(".snd"))
}

func matchAMR(in []byte) bool {
	return bytes.HasPrefix(in, []byte("#!AMR"))
}

func matchVoc(in []byte) bool {
	return bytes.HasPrefix(in, []byte("Creative Voice File"))
}

func matchM3U(in []byte) bool {
	return bytes.HasPrefix(in, []byte("#EXTM3U"))
}

func matchAAC(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFF, 0xF1}) || bytes.HasPrefix(in, []byte{0xFF, 0xF9})
}

// Ogg containers. The codec identifier on the first logical page, at
// offset 28, separates audio from video streams.

func matchOgg(in []byte) bool {
	return bytes.HasPrefix(in, []byte("OggS"))
}

func oggCodec(in []byte, codecs ...string) bool {
	if len(in) < 29 {
		return false
	}
	for _, codec := range codecs {
		if bytes.HasPrefix(in[28:], []byte(codec)) {
			return true
		}
	}
	return false
}

func matchOggAudio(in []byte) bool {
	return oggCodec(in, "\x7FFLAC", "\x01vorbis", "OpusHead", "Speex   ")
}

func matchOggVideo(in []byte) bool {
	return oggCodec(in, "\x80theora", "fishead\x00", "\x01video\x00\x00")
}

// Video signatures.

// matchFtyp reports whether the input is an ISO base media file whose
// major brand at offset 8 is one of brands.
func matchFtyp(in []byte, brands ...string) bool {
	if len(in) < 12 || !bytes.Equal(in[4:8], []byte("ftyp")) {
		return false
	}
	major := in[8:12]
	for _, brand := range brands {
		if bytes.Equal(major, []byte(brand)) {
			return true
		}
	}
	return false
}

// matchMP4 accepts any ISO base media file with a plausible ftyp box. The
// brand-specific children below it (HEIC, AVIF, 3GPP, the audio container)
// refine the result; unknown brands stay at video/mp4.
func matchMP4(in []byte) bool {
	if len(in) < 12 {
		return false
	}
	boxSize := int(binary.BigEndian.Uint32(in[:4]))
	if boxSize%4 != 0 || boxSize < 12 || len(in) < boxSize {
		return false
	}
	return bytes.Equal(in[4:8], []byte("ftyp"))
}

func matchAudioMP4(in []byte) bool {
	return matchFtyp(in, "M4A ", "M4B ", "M4P ", "F4A ", "F4B ")
}

func matchM4V(in []byte) bool {
	return matchFtyp(in, "M4V ", "M4VH", "M4VP")
}

func matchHEIC(in []byte) bool         { return matchFtyp(in, "heic", "heix") }
func matchHEICSequence(in []byte) bool { return matchFtyp(in, "hevc", "hevx") }
func matchHEIF(in []byte) bool         { return matchFtyp(in, "mif1", "heim", "heis", "avic") }
func matchHEIFSequence(in []byte) bool { return matchFtyp(in, "msf1", "hevm", "hevs", "avcs") }
func matchAVIF(in []byte) bool         { return matchFtyp(in, "avif", "avis") }

func match3GPP(in []byte) bool {
	return matchFtyp(in, "3gp1", "3gp2", "3gp3", "3gp4", "3gp5", "3gp6", "3gp7",
		"3gs7", "3ge6", "3ge7", "3gg6")
}

func match3GPP2(in []byte) bool {
	return matchFtyp(in, "3g24", "3g25", "3g26", "3g2a", "3g2b", "3g2c", "KDDI")
}

func matchMQV(in []byte) bool {
	return matchFtyp(in, "mqt ")
}

// matchQuickTime accepts the qt ftyp brand and headerless movies that open
// directly with a top-level atom.
func matchQuickTime(in []byte) bool {
	if matchFtyp(in, "qt  ") {
		return true
	}
	if len(in) < 8 {
		return false
	}
	atom := in[4:8]
	for _, name := range []string{"moov", "mdat", "free", "skip", "pnot", "wide"} {
		if bytes.Equal(atom, []byte(name)) {
			return true
		}
	}
	return false
}

// Matroska containers. The doctype is stored as an EBML element shortly
// after the header magic; the element ID is 0x4282 and the payload length
// is a variable-width integer.
func matroskaDocType(in []byte, docType string) bool {
	if !bytes.HasPrefix(in, []byte{0x1A, 0x45, 0xDF, 0xA3}) {
		return false
	}
	idx := bytes.Index(in, []byte{0x42, 0x82})
	if idx == -1 || idx+3 >= len(in) {
		return false
	}
	// The byte after the element ID encodes the payload size as a vint;
	// the number of leading zero bits gives the width.
	offset := idx + 3
	end := offset + len(docType)
	if end > len(in) {
		return false
	}
	return string(in[offset:end]) == docType
}

func matchWebM(in []byte) bool { return matroskaDocType(in, "webm") }
func matchMKV(in []byte) bool  { return matroskaDocType(in, "matroska") }

func matchAVI(in []byte) bool {
	return len(in) > 12 &&
		bytes.Equal(in[0:4], []byte("RIFF")) &&
		bytes.Equal(in[8:12], []byte("AVI "))
}

func matchMPEG(in []byte) bool {
	return len(in) > 3 &&
		bytes.HasPrefix(in, []byte{0x00, 0x00, 0x01}) &&
		in[3] >= 0xB0 && in[3] <= 0xBF
}

func matchFLV(in []byte) bool {
	return bytes.HasPrefix(in, []byte("FLV\x01"))
}

func matchASF(in []byte) bool {
	return bytes.HasPrefix(in, []byte{
		0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
		0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
	})
}

func matchRMVB(in []byte) bool {
	return bytes.HasPrefix(in, []byte(".RMF"))
}
