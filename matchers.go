package mimekit

import (
	"bytes"
	"encoding/binary"
)

// Fixed-signature matchers. Each one checks a magic number at a known
// offset and must tolerate inputs shorter than the signature.

func matchPDF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("%PDF-"))
}

func matchFDF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("%FDF"))
}

func matchPS(in []byte) bool {
	return bytes.HasPrefix(in, []byte("%!PS-Adobe-"))
}

func matchSevenZ(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x37, 0x7A, 0xBC, 0xAF, 0x27, 0x1C})
}

// matchZip accepts local file headers, empty archives and spanned archives:
// "PK" followed by 03 04, 05 06 or 07 08.
func matchZip(in []byte) bool {
	return len(in) > 3 &&
		in[0] == 'P' && in[1] == 'K' &&
		(in[2] == 0x3 || in[2] == 0x5 || in[2] == 0x7) &&
		(in[3] == 0x4 || in[3] == 0x6 || in[3] == 0x8)
}

func matchRar(in []byte) bool {
	if !bytes.HasPrefix(in, []byte("Rar!\x1A\x07")) {
		return false
	}
	return len(in) > 6 && (in[6] == 0x0 || in[6] == 0x1)
}

func matchGzip(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x1F, 0x8B})
}

func matchBz2(in []byte) bool {
	return bytes.HasPrefix(in, []byte("BZh"))
}

func matchXz(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00})
}

// matchZstd accepts regular frames and the skippable frame range
// 0x184D2A50..0x184D2A5F.
func matchZstd(in []byte) bool {
	if len(in) < 4 {
		return false
	}
	magic := binary.LittleEndian.Uint32(in)
	return magic == 0xFD2FB528 || (magic >= 0x184D2A50 && magic <= 0x184D2A5F)
}

func matchLzip(in []byte) bool {
	return bytes.HasPrefix(in, []byte("LZIP"))
}

func matchLz4(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x04, 0x22, 0x4D, 0x18})
}

// matchPcap accepts both byte orders of the classic tcpdump header, in the
// microsecond and nanosecond timestamp variants.
func matchPcap(in []byte) bool {
	if len(in) < 4 {
		return false
	}
	magic := binary.BigEndian.Uint32(in)
	switch magic {
	case 0xA1B2C3D4, 0xD4C3B2A1, 0xA1B23C4D, 0x4D3CB2A1:
		return true
	}
	return false
}

func matchPcapng(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x0A, 0x0D, 0x0D, 0x0A})
}

func matchCab(in []byte) bool {
	return bytes.HasPrefix(in, []byte("MSCF\x00\x00\x00\x00"))
}

func matchInstallShieldCab(in []byte) bool {
	return len(in) > 7 && bytes.HasPrefix(in, []byte("ISc(")) &&
		in[6] == 0 && (in[7] == 1 || in[7] == 2 || in[7] == 4)
}

func matchCpio(in []byte) bool {
	return bytes.HasPrefix(in, []byte("070707")) ||
		bytes.HasPrefix(in, []byte("070701")) ||
		bytes.HasPrefix(in, []byte("070702")) ||
		bytes.HasPrefix(in, []byte{0x71, 0xC7}) ||
		bytes.HasPrefix(in, []byte{0xC7, 0x71})
}

func matchAr(in []byte) bool {
	return bytes.HasPrefix(in, []byte("!<arch>\n"))
}

func matchDeb(in []byte) bool {
	return len(in) > 21 && bytes.Equal(in[8:21], []byte("debian-binary"))
}

func matchRPM(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xED, 0xAB, 0xEE, 0xDB})
}

func matchTorrent(in []byte) bool {
	return bytes.HasPrefix(in, []byte("d8:announce")) ||
		bytes.HasPrefix(in, []byte("d7:comment")) ||
		bytes.HasPrefix(in, []byte("d4:info"))
}

func matchXar(in []byte) bool {
	return bytes.HasPrefix(in, []byte("xar!"))
}

func matchFITS(in []byte) bool {
	return bytes.HasPrefix(in, []byte("SIMPLE  =                    T"))
}

// matchTar validates the header checksum of the first 512-byte record.
// The recorded checksum is stored as an octal string at bytes 148..155 and
// is computed over the header with the checksum field itself replaced by
// spaces. Both the signed and the unsigned sum are accepted, matching
// historic tar implementations. An all-zero block fails the octal parse
// and is not a tar archive.
func matchTar(in []byte) bool {
	const recordSize = 512
	if len(in) < recordSize {
		return false
	}
	recorded := parseOctal(in[148:156])
	if recorded < 0 {
		return false
	}
	var unsigned, signed int64
	for i, c := range in[:recordSize] {
		if i >= 148 && i < 156 {
			c = ' '
		}
		unsigned += int64(c)
		signed += int64(int8(c))
	}
	return recorded == unsigned || recorded == signed
}

// parseOctal reads a tar-style octal field: optional leading spaces and
// NULs, octal digits, terminated by space or NUL. Returns -1 on malformed
// input.
func parseOctal(in []byte) int64 {
	in = bytes.Trim(in, " \x00")
	if len(in) == 0 {
		return -1
	}
	var value int64
	for _, c := range in {
		if c < '0' || c > '7' {
			return -1
		}
		value = value<<3 | int64(c-'0')
	}
	return value
}

func matchExe(in []byte) bool {
	return bytes.HasPrefix(in, []byte("MZ"))
}

func matchELF(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x7F, 'E', 'L', 'F'})
}

// elfType extracts the e_type field, honoring the encoding byte at offset
// 5 (1 little endian, 2 big endian).
func elfType(in []byte) uint16 {
	if len(in) < 18 {
		return 0
	}
	if in[5] == 2 {
		return binary.BigEndian.Uint16(in[16:18])
	}
	return binary.LittleEndian.Uint16(in[16:18])
}

func matchELFObj(in []byte) bool  { return elfType(in) == 1 }
func matchELFExe(in []byte) bool  { return elfType(in) == 2 }
func matchELFLib(in []byte) bool  { return elfType(in) == 3 }
func matchELFDump(in []byte) bool { return elfType(in) == 4 }

var machOMagics = [][]byte{
	{0xFE, 0xED, 0xFA, 0xCE},
	{0xFE, 0xED, 0xFA, 0xCF},
	{0xCE, 0xFA, 0xED, 0xFE},
	{0xCF, 0xFA, 0xED, 0xFE},
}

// matchMachO covers thin binaries and fat binaries. The fat magic collides
// with Java's CAFEBABE; byte 7 disambiguates, a fat binary stores its
// architecture count there and never exceeds a small number.
func matchMachO(in []byte) bool {
	for _, magic := range machOMagics {
		if bytes.HasPrefix(in, magic) {
			return true
		}
	}
	return len(in) > 7 && bytes.HasPrefix(in, []byte{0xCA, 0xFE, 0xBA, 0xBE}) && in[7] < 0x14
}

func matchClass(in []byte) bool {
	return len(in) > 7 && bytes.HasPrefix(in, []byte{0xCA, 0xFE, 0xBA, 0xBE}) && in[7] > 0x1E
}

func matchWasm(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x00, 0x61, 0x73, 0x6D})
}

func matchSWF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("FWS")) ||
		bytes.HasPrefix(in, []byte("CWS")) ||
		bytes.HasPrefix(in, []byte("ZWS"))
}

func matchCRX(in []byte) bool {
	return bytes.HasPrefix(in, []byte("Cr24"))
}

var pkcs7SignedDataOID = []byte{0x06, 0x09, 0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D, 0x01, 0x07, 0x02}

// matchP7S accepts PEM-wrapped PKCS#7 signatures and DER sequences whose
// leading bytes carry the signedData object identifier.
func matchP7S(in []byte) bool {
	if bytes.HasPrefix(in, []byte("-----BEGIN PKCS7")) {
		return true
	}
	if len(in) < 20 || in[0] != 0x30 {
		return false
	}
	limit := len(in)
	if limit > 32 {
		limit = 32
	}
	return bytes.Contains(in[:limit], pkcs7SignedDataOID)
}

func matchTTF(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x00, 0x01, 0x00, 0x00})
}

func matchWOFF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("wOFF"))
}

func matchWOFF2(in []byte) bool {
	return bytes.HasPrefix(in, []byte("wOF2"))
}

func matchOTF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("OTTO"))
}

func matchTTC(in []byte) bool {
	return bytes.HasPrefix(in, []byte("ttcf"))
}

// matchEOT wants 34 NUL bytes followed by "LP".
func matchEOT(in []byte) bool {
	if len(in) < 36 {
		return false
	}
	for _, b := range in[:34] {
		if b != 0 {
			return false
		}
	}
	return in[34] == 'L' && in[35] == 'P'
}

func matchSQLite(in []byte) bool {
	return bytes.HasPrefix(in, []byte("SQLite format 3\x00"))
}

func matchMDB(in []byte) bool {
	return len(in) > 19 && bytes.Equal(in[4:19], []byte("Standard Jet DB"))
}

func matchAccDB(in []byte) bool {
	return len(in) > 19 && bytes.Equal(in[4:19], []byte("Standard ACE DB"))
}

func matchParquet(in []byte) bool {
	return bytes.HasPrefix(in, []byte("PAR1"))
}

func matchNES(in []byte) bool {
	return bytes.HasPrefix(in, []byte("NES\x1A"))
}

func matchLnk(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0x4C, 0x00, 0x00, 0x00, 0x01, 0x14, 0x02, 0x00})
}

func matchTzif(in []byte) bool {
	return bytes.HasPrefix(in, []byte("TZif"))
}

func matchGLB(in []byte) bool {
	return bytes.HasPrefix(in, []byte("glTF\x02\x00\x00\x00")) ||
		bytes.HasPrefix(in, []byte("glTF\x01\x00\x00\x00"))
}

func matchCHM(in []byte) bool {
	return bytes.HasPrefix(in, []byte("ITSF\x03\x00\x00\x00"))
}

func matchMobi(in []byte) bool {
	return len(in) > 68 && bytes.Equal(in[60:68], []byte("BOOKMOBI"))
}

func matchLit(in []byte) bool {
	return bytes.HasPrefix(in, []byte("ITOLITLS"))
}

func matchDjVu(in []byte) bool {
	return len(in) >= 16 &&
		bytes.HasPrefix(in, []byte("AT&TFORM")) &&
		bytes.Equal(in[12:16], []byte("DJVU"))
}
