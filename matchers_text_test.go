package mimekit

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestMatchText(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected bool
	}{
		{"ascii", []byte("hello"), true},
		{"with newlines and tabs", []byte("a\tb\r\nc"), true},
		{"utf8 multibyte", []byte("héllo wörld ✓"), true},
		{"empty", nil, false},
		{"nul byte", []byte("abc\x00def"), false},
		{"control byte", []byte{0x01, 'a'}, false},
		{"escape allowed", []byte("\x1b[1mbold"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchText(tt.data); got != tt.expected {
				t.Errorf("matchText(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestMatchHTML(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"doctype", "<!DOCTYPE html>", true},
		{"doctype uppercase", "<!DOCTYPE HTML PUBLIC>", true},
		{"html tag", "<html lang=\"en\">", true},
		{"leading whitespace", "\n\t <html>", true},
		{"body tag", "<body>", true},
		{"comment", "<!-- a comment -->", true},
		{"tag must terminate", "<htmlx>", false},
		{"plain text", "html is nice", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchHTML([]byte(tt.data)); got != tt.expected {
				t.Errorf("matchHTML(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestMatchJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"object", `{"a": 1}`, true},
		{"array", `[1, 2]`, true},
		{"nested", `{"a": {"b": [1, {"c": 2}]}}`, true},
		{"braces in strings", `{"a": "}{][", "b": "\""}`, true},
		{"leading whitespace", "  \n {\"a\": 1}", true},
		{"unbalanced", `{"a": 1`, false},
		{"trailing garbage", `{"a": 1} extra`, false},
		{"scalar", `42`, false},
		{"quoted scalar", `"just a string"`, false},
		{"empty", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchJSON([]byte(tt.data)); got != tt.expected {
				t.Errorf("matchJSON(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestMatchJSONTruncated(t *testing.T) {
	// A huge document cut at the read limit has no closing brace in view;
	// it still counts as JSON as long as the structure is sound so far.
	var buf bytes.Buffer
	buf.WriteString(`{"items": [`)
	for buf.Len() < ReadLimit {
		buf.WriteString(`{"k": "v"}, `)
	}
	if !matchJSON(buf.Bytes()[:ReadLimit]) {
		t.Error("truncated JSON rejected")
	}
}

func TestMatchNDJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"two objects", "{\"a\": 1}\n{\"b\": 2}\n", true},
		{"three objects", "{\"a\": 1}\n{\"b\": 2}\n{\"c\": 3}", true},
		{"single object", "{\"a\": 1}\n", false},
		{"broken line", "{\"a\": 1}\nnot json\n", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchNDJSON([]byte(tt.data)); got != tt.expected {
				t.Errorf("matchNDJSON(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

func TestMatchCSVConsistency(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected bool
	}{
		{"consistent rows", "a,b,c\n1,2,3\n4,5,6\n", true},
		{"quoted field with comma", "a,b\n\"x,y\",2\n", true},
		{"single column", "a\nb\nc\n", false},
		{"single row", "a,b,c\n", false},
		{"inconsistent rows", "a,b,c\n1,2\n", false},
		{"binary", "\x00a,b\n1,2\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchCSV([]byte(tt.data)); got != tt.expected {
				t.Errorf("matchCSV(%q) = %v, want %v", tt.data, got, tt.expected)
			}
		})
	}
}

// Builds the fixture with encoding/csv to keep the writer and the detector
// in agreement, and to keep the stdlib csv import coexisting with the
// csvType tree node in this package.
func TestDetectWrittenCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	records := [][]string{
		{"name", "extension", "kind"},
		{"portable network graphics", ".png", "image"},
		{"tape archive", ".tar", "archive"},
	}
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}
	if got := Detect(buf.Bytes()).MIME(); got != "text/csv" {
		t.Errorf("Detect(csv) = %q, want text/csv", got)
	}
}

func TestShebangMatchers(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		matcher MatcherFunc
		want    bool
	}{
		{"bash direct", "#!/bin/bash\n", matchShell, true},
		{"sh via env", "#!/usr/bin/env sh\n", matchShell, true},
		{"zsh", "#!/usr/bin/zsh\n", matchShell, true},
		{"python direct", "#!/usr/bin/python3\n", matchPython, true},
		{"python via env", "#!/usr/bin/env python3\n", matchPython, true},
		{"perl", "#!/usr/bin/perl -w\n", matchPerl, true},
		{"node", "#!/usr/bin/env node\n", matchJS, true},
		{"ruby", "#!/usr/local/bin/ruby\n", matchRuby, true},
		{"lua", "#!/usr/bin/lua5.4\n", matchLua, true},
		{"no shebang", "echo hi\n", matchShell, false},
		{"wrong interpreter", "#!/usr/bin/python\n", matchShell, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.matcher([]byte(tt.data)); got != tt.want {
				t.Errorf("matcher(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestXMLVocabularies(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected string
	}{
		{
			name:     "rss",
			data:     `<?xml version="1.0"?><rss version="2.0"><channel></channel></rss>`,
			expected: "application/rss+xml",
		},
		{
			name:     "atom",
			data:     `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`,
			expected: "application/atom+xml",
		},
		{
			name:     "kml",
			data:     `<?xml version="1.0"?><kml xmlns="http://www.opengis.net/kml/2.2"></kml>`,
			expected: "application/vnd.google-earth.kml+xml",
		},
		{
			name:     "gpx",
			data:     `<?xml version="1.0"?><gpx version="1.1"></gpx>`,
			expected: "application/gpx+xml",
		},
		{
			name:     "xhtml",
			data:     `<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"></html>`,
			expected: "application/xhtml+xml",
		},
		{
			name:     "generic xml",
			data:     `<?xml version="1.0"?><inventory></inventory>`,
			expected: "text/xml; charset=utf-8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect([]byte(tt.data)).MIME(); got != tt.expected {
				t.Errorf("Detect() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestMatchSRT(t *testing.T) {
	valid := "1\n00:00:01,000 --> 00:00:04,500\nText here\n"
	if !matchSRT([]byte(valid)) {
		t.Error("valid SRT rejected")
	}
	for _, bad := range []string{
		"one\n00:00:01,000 --> 00:00:04,500\n",
		"1\nnot a timestamp\n",
		"1\n",
		"",
	} {
		if matchSRT([]byte(bad)) {
			t.Errorf("matchSRT(%q) = true", bad)
		}
	}
}

func TestMatchVTT(t *testing.T) {
	if !matchVTT([]byte("WEBVTT\n")) {
		t.Error("bare WEBVTT header rejected")
	}
	if !matchVTT([]byte("\xEF\xBB\xBFWEBVTT - description\n")) {
		t.Error("BOM-prefixed WEBVTT rejected")
	}
	if matchVTT([]byte("WEBVTTX\n")) {
		t.Error("WEBVTTX accepted")
	}
}
