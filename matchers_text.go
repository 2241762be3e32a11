package mimekit

import (
	"bytes"
	"encoding/csv"
	"strings"
)

// Text matchers. These are the loosest and most expensive checks in the
// tree, which is why the generic text node is the last root child.

// matchText implements the WHATWG binary-vs-text heuristic: data is text
// when it contains none of the control bytes that never appear in textual
// content. Empty input is not text.
func matchText(in []byte) bool {
	if len(in) == 0 {
		return false
	}
	for _, b := range in {
		if b <= 0x08 || b == 0x0B || (b >= 0x0E && b <= 0x1A) || (b >= 0x1C && b <= 0x1F) {
			return false
		}
	}
	return true
}

func matchUTF8BOM(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xEF, 0xBB, 0xBF})
}

func matchUTF16BE(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFE, 0xFF})
}

func matchUTF16LE(in []byte) bool {
	return bytes.HasPrefix(in, []byte{0xFF, 0xFE})
}

// trimTextStart drops the UTF-8 BOM and leading whitespace.
func trimTextStart(in []byte) []byte {
	in = bytes.TrimPrefix(in, []byte{0xEF, 0xBB, 0xBF})
	return bytes.TrimLeft(in, " \t\r\n")
}

// htmlTags are the openings the WHATWG sniffing algorithm recognizes. Each
// must be followed by a space, ">" or "/" to count as a tag.
var htmlTags = []string{
	"<!DOCTYPE HTML", "<HTML", "<HEAD", "<SCRIPT", "<IFRAME", "<H1",
	"<DIV", "<FONT", "<TABLE", "<A", "<STYLE", "<TITLE", "<B",
	"<BODY", "<BR", "<P", "<!--",
}

func matchHTML(in []byte) bool {
	in = trimTextStart(in)
	for _, tag := range htmlTags {
		if len(in) <= len(tag) {
			continue
		}
		if !strings.EqualFold(string(in[:len(tag)]), tag) {
			continue
		}
		switch next := in[len(tag)]; {
		case tag == "<!--":
			return true
		case next == ' ' || next == '>' || next == '/':
			return true
		}
	}
	return false
}

func matchXML(in []byte) bool {
	return bytes.HasPrefix(trimTextStart(in), []byte("<?xml"))
}

// xmlContains reports whether an XML document mentions marker in its
// leading bytes, enough to identify the vocabulary of the root element.
func xmlContains(in []byte, marker string) bool {
	return bytes.Contains(in, []byte(marker))
}

func matchRSS(in []byte) bool   { return xmlContains(in, "<rss") }
func matchAtom(in []byte) bool  { return xmlContains(in, "<feed") }
func matchKML(in []byte) bool   { return xmlContains(in, "<kml") }
func matchGPX(in []byte) bool   { return xmlContains(in, "<gpx") }
func matchXHTML(in []byte) bool { return xmlContains(in, "http://www.w3.org/1999/xhtml") }

func matchSVG(in []byte) bool {
	return bytes.Contains(in, []byte("<svg"))
}

func matchRTF(in []byte) bool {
	return bytes.HasPrefix(in, []byte("{\\rtf"))
}

func matchWARC(in []byte) bool {
	return bytes.HasPrefix(in, []byte("WARC/1.0")) || bytes.HasPrefix(in, []byte("WARC/1.1"))
}

// shebang reports whether the first line is a "#!" interpreter line whose
// program name matches, either directly or through /usr/bin/env.
func shebang(in []byte, program string) bool {
	if !bytes.HasPrefix(in, []byte("#!")) {
		return false
	}
	line := in[2:]
	if idx := bytes.IndexByte(line, '\n'); idx != -1 {
		line = line[:idx]
	}
	fields := strings.Fields(string(line))
	if len(fields) == 0 {
		return false
	}
	base := fields[0]
	if idx := strings.LastIndexByte(base, '/'); idx != -1 {
		base = base[idx+1:]
	}
	if base == "env" && len(fields) > 1 {
		base = fields[1]
	}
	return base == program || strings.HasPrefix(base, program)
}

func matchPHP(in []byte) bool {
	if shebang(in, "php") {
		return true
	}
	start := trimTextStart(in)
	return bytes.HasPrefix(start, []byte("<?php")) || bytes.HasPrefix(start, []byte("<?=")) ||
		bytes.HasPrefix(start, []byte("<? "))
}

func matchJS(in []byte) bool     { return shebang(in, "node") }
func matchPython(in []byte) bool { return shebang(in, "python") }
func matchPerl(in []byte) bool   { return shebang(in, "perl") }
func matchRuby(in []byte) bool   { return shebang(in, "ruby") }
func matchLua(in []byte) bool    { return shebang(in, "lua") }

func matchShell(in []byte) bool {
	for _, sh := range []string{"sh", "bash", "zsh", "ksh", "dash"} {
		if shebang(in, sh) {
			return true
		}
	}
	return false
}

func matchTcl(in []byte) bool {
	return shebang(in, "tcl") || shebang(in, "tclsh") || shebang(in, "wish")
}

// matchJSON validates the input with a small structural scanner. Whole
// documents must balance exactly; input truncated at the read limit is
// accepted as long as no structural error occurred.
func matchJSON(in []byte) bool {
	trimmed := trimTextStart(in)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	parsed, balanced := scanJSONStructure(trimmed)
	if parsed == -1 {
		return false
	}
	if balanced {
		return len(bytes.TrimSpace(trimmed[parsed:])) == 0
	}
	// Unterminated document: fine only when the input was cut short.
	return len(in) >= ReadLimit
}

// scanJSONStructure walks braces and brackets, skipping string literals.
// It returns the offset one past the point where the top-level value
// closed and whether it closed at all; a parse error returns (-1, false).
func scanJSONStructure(in []byte) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i, b := range in {
		if inString {
			switch {
			case escaped:
				escaped = false
			case b == '\\':
				escaped = true
			case b == '"':
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth < 0 {
				return -1, false
			}
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(in), false
}

// jsonFieldValue finds `"field":` near the start of a JSON object and
// returns the quoted string value that follows, or "" when absent.
func jsonFieldValue(in []byte, field string) string {
	idx := bytes.Index(in, []byte(`"`+field+`"`))
	if idx == -1 {
		return ""
	}
	rest := in[idx+len(field)+2:]
	rest = bytes.TrimLeft(rest, " \t\r\n")
	if len(rest) == 0 || rest[0] != ':' {
		return ""
	}
	rest = bytes.TrimLeft(rest[1:], " \t\r\n")
	if len(rest) == 0 || rest[0] != '"' {
		return ""
	}
	end := bytes.IndexByte(rest[1:], '"')
	if end == -1 {
		return ""
	}
	return string(rest[1 : 1+end])
}

var geoJSONTypes = []string{
	"Feature", "FeatureCollection", "Point", "LineString", "Polygon",
	"MultiPoint", "MultiLineString", "MultiPolygon", "GeometryCollection",
}

func matchGeoJSON(in []byte) bool {
	trimmed := trimTextStart(in)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	value := jsonFieldValue(trimmed, "type")
	for _, t := range geoJSONTypes {
		if value == t {
			return true
		}
	}
	return false
}

// matchNDJSON wants at least two newline-separated JSON values. A trailing
// line cut off by the read limit is ignored.
func matchNDJSON(in []byte) bool {
	lines := bytes.Split(in, []byte("\n"))
	truncated := len(in) >= ReadLimit
	valid := 0
	for i, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] != '{' && line[0] != '[' {
			return false
		}
		parsed, balanced := scanJSONStructure(line)
		if parsed == -1 {
			return false
		}
		if !balanced {
			if truncated && i == len(lines)-1 {
				continue
			}
			return false
		}
		valid++
	}
	return valid >= 2
}

func matchHAR(in []byte) bool {
	trimmed := trimTextStart(in)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	idx := bytes.Index(trimmed, []byte(`"log"`))
	if idx == -1 {
		return false
	}
	rest := bytes.TrimLeft(trimmed[idx+5:], " \t\r\n")
	return len(rest) > 0 && rest[0] == ':' && bytes.Contains(trimmed, []byte(`"version"`))
}

func matchGLTF(in []byte) bool {
	trimmed := trimTextStart(in)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return bytes.Contains(trimmed, []byte(`"scenes"`)) ||
		(bytes.Contains(trimmed, []byte(`"asset"`)) && bytes.Contains(trimmed, []byte(`"version"`)))
}

// Delimiter-separated values. The input is text with at least two lines
// that agree on a field count greater than one.
func matchDelimited(in []byte, comma rune) bool {
	if !matchText(in) {
		return false
	}
	// Drop a trailing line that may have been cut by the read limit.
	if len(in) >= ReadLimit {
		if idx := bytes.LastIndexByte(in, '\n'); idx != -1 {
			in = in[:idx]
		}
	}
	r := csv.NewReader(bytes.NewReader(in))
	r.Comma = comma
	r.Comment = '#'
	r.LazyQuotes = true
	records, err := r.ReadAll()
	if err != nil {
		return false
	}
	return len(records) > 1 && len(records[0]) > 1
}

func matchCSV(in []byte) bool { return matchDelimited(in, ',') }
func matchTSV(in []byte) bool { return matchDelimited(in, '\t') }

// matchSRT checks the first subtitle block: a bare sequence number line
// followed by a "HH:MM:SS,mmm --> HH:MM:SS,mmm" timing line.
func matchSRT(in []byte) bool {
	lines := bytes.SplitN(in, []byte("\n"), 3)
	if len(lines) < 2 {
		return false
	}
	first := bytes.TrimSpace(lines[0])
	if len(first) == 0 {
		return false
	}
	for _, c := range first {
		if c < '0' || c > '9' {
			return false
		}
	}
	second := string(bytes.TrimSpace(lines[1]))
	return srtTiming(second)
}

func srtTiming(line string) bool {
	const layout = "00:00:00,000 --> 00:00:00,000"
	if len(line) < len(layout) {
		return false
	}
	for i := 0; i < len(layout); i++ {
		switch layout[i] {
		case '0':
			if line[i] < '0' || line[i] > '9' {
				return false
			}
		default:
			if line[i] != layout[i] {
				return false
			}
		}
	}
	return true
}

func matchVTT(in []byte) bool {
	in = bytes.TrimPrefix(in, []byte{0xEF, 0xBB, 0xBF})
	if !bytes.HasPrefix(in, []byte("WEBVTT")) {
		return false
	}
	if len(in) == 6 {
		return true
	}
	switch in[6] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func matchVCard(in []byte) bool {
	return bytes.HasPrefix(trimTextStart(in), []byte("BEGIN:VCARD"))
}

func matchICalendar(in []byte) bool {
	return bytes.HasPrefix(trimTextStart(in), []byte("BEGIN:VCALENDAR"))
}
