package mimekit

import (
	"bytes"
	"sync"
	"testing"
)

func TestDetectorCachesResults(t *testing.T) {
	d, err := NewDetector(16)
	if err != nil {
		t.Fatal(err)
	}
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

	first := d.Detect(png)
	second := d.Detect(png)
	if first != second {
		t.Error("cached detection must return the same node")
	}
	if first.MIME() != "image/png" {
		t.Errorf("Detect = %q", first.MIME())
	}

	stats := d.Stats()
	if stats.Misses != 1 || stats.Hits != 1 {
		t.Errorf("stats = %+v, want 1 hit and 1 miss", stats)
	}
	if stats.Entries != 1 {
		t.Errorf("entries = %d, want 1", stats.Entries)
	}
}

func TestDetectorMatchesPackageDetect(t *testing.T) {
	d, err := NewDetector(64)
	if err != nil {
		t.Fatal(err)
	}
	inputs := [][]byte{
		nil,
		[]byte("%PDF-1.4"),
		[]byte("PK\x03\x04\x00\x00"),
		[]byte("plain old text"),
		bytes.Repeat([]byte{0x00}, 600),
	}
	for _, in := range inputs {
		if got, want := d.Detect(in), Detect(in); got.MIME() != want.MIME() {
			t.Errorf("Detector.Detect = %q, Detect = %q", got.MIME(), want.MIME())
		}
	}
}

func TestDetectorSharedPrefix(t *testing.T) {
	d, err := NewDetector(16)
	if err != nil {
		t.Fatal(err)
	}
	// Two inputs identical in the first ReadLimit bytes share an entry.
	base := append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte{'a'}, ReadLimit)...)
	other := append(append([]byte{}, base[:ReadLimit]...), []byte("trailing difference")...)

	d.Detect(base)
	d.Detect(other)
	stats := d.Stats()
	if stats.Hits != 1 {
		t.Errorf("hits = %d, want 1 (shared prefix)", stats.Hits)
	}
}

func TestDetectorPurge(t *testing.T) {
	d, err := NewDetector(16)
	if err != nil {
		t.Fatal(err)
	}
	d.Detect([]byte("%PDF-1.4"))
	d.Purge()
	if entries := d.Stats().Entries; entries != 0 {
		t.Errorf("entries after purge = %d", entries)
	}
}

func TestDetectorConcurrent(t *testing.T) {
	d, err := NewDetector(128)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if got := d.Detect([]byte("%PDF-1.4")).MIME(); got != "application/pdf" {
					t.Errorf("concurrent Detect = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewDetectorFromConfig(t *testing.T) {
	d, err := NewDetectorFromConfig(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Detect([]byte("GIF89a")).MIME(); got != "image/gif" {
		t.Errorf("Detect = %q", got)
	}

	// Disabled caching still yields a functional detector.
	cfg := DefaultConfig()
	cfg.CacheEnabled = false
	d, err = NewDetectorFromConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Detect([]byte("GIF89a")).MIME(); got != "image/gif" {
		t.Errorf("Detect with caching disabled = %q", got)
	}
}

func TestNewDetectorRejectsBadSize(t *testing.T) {
	if _, err := NewDetector(0); err == nil {
		t.Error("NewDetector(0) must fail")
	}
	if _, err := NewDetector(-5); err == nil {
		t.Error("NewDetector(-5) must fail")
	}
}
