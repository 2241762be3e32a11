package mimekit

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Detector wraps detection with an LRU cache of previous results. Workloads
// that classify the same payloads repeatedly (uploads of identical files,
// retried messages) skip the tree walk on a hit.
//
// Results are keyed by the xxhash of the sniffed prefix, so two inputs that
// agree on their first ReadLimit bytes share a cache entry. That is safe:
// detection never looks past the prefix.
//
// A Detector is safe for concurrent use.
type Detector struct {
	cache  *lru.Cache[uint64, *MIMEType]
	hits   atomic.Int64
	misses atomic.Int64
}

// DetectorStats contains cache performance counters.
type DetectorStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// NewDetector creates a caching detector holding at most size entries.
// Size must be positive.
func NewDetector(size int) (*Detector, error) {
	cache, err := lru.New[uint64, *MIMEType](size)
	if err != nil {
		return nil, err
	}
	return &Detector{cache: cache}, nil
}

// NewDetectorFromConfig builds a detector sized per cfg. When caching is
// disabled in the config it still returns a working detector with a
// minimal cache.
func NewDetectorFromConfig(cfg *Config) (*Detector, error) {
	size := cfg.CacheSize
	if !cfg.CacheEnabled || size <= 0 {
		size = 1
	}
	return NewDetector(size)
}

// Detect behaves like the package-level Detect but consults the cache
// first.
func (d *Detector) Detect(in []byte) *MIMEType {
	if len(in) > ReadLimit {
		in = in[:ReadLimit]
	}
	key := xxhash.Sum64(in)
	if cached, ok := d.cache.Get(key); ok {
		d.hits.Add(1)
		return cached
	}
	d.misses.Add(1)
	result := Detect(in)
	d.cache.Add(key, result)
	return result
}

// DetectReader reads at most ReadLimit bytes from r and detects them
// through the cache.
func (d *Detector) DetectReader(r io.Reader) (*MIMEType, error) {
	ensureInit()
	buf := make([]byte, ReadLimit)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return root, err
	}
	return d.Detect(buf[:n]), nil
}

// DetectFile opens path and detects its content through the cache.
func (d *Detector) DetectFile(path string) (*MIMEType, error) {
	f, err := os.Open(path)
	if err != nil {
		ensureInit()
		return root, err
	}
	defer f.Close()
	return d.DetectReader(f)
}

// Stats returns the cache counters accumulated so far.
func (d *Detector) Stats() DetectorStats {
	return DetectorStats{
		Hits:    d.hits.Load(),
		Misses:  d.misses.Load(),
		Entries: d.cache.Len(),
	}
}

// Purge drops all cached entries. The counters are kept.
func (d *Detector) Purge() {
	d.cache.Purge()
}
