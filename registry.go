package mimekit

import "sync"

// matcherRegistry is an append-only mapping from a key (MIME string or file
// extension) to the matchers registered for it. Reads are concurrent;
// registration takes the write lock for the duration of the append only.
type matcherRegistry struct {
	mu       sync.RWMutex
	matchers map[string][]MatcherFunc
}

func newMatcherRegistry() *matcherRegistry {
	return &matcherRegistry{
		matchers: make(map[string][]MatcherFunc),
	}
}

// add appends a matcher for key. Registering the same key again appends
// another matcher rather than replacing the existing ones; matchers are
// never removed for the lifetime of the process.
func (r *matcherRegistry) add(key string, matcher MatcherFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchers[key] = append(r.matchers[key], matcher)
}

// has reports whether at least one matcher is registered for key.
func (r *matcherRegistry) has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matchers[key]) > 0
}

// match reports whether any matcher registered for key accepts in.
// Matchers run in registration order and the check short-circuits on the
// first hit. An unregistered key never matches.
func (r *matcherRegistry) match(key string, in []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, matcher := range r.matchers[key] {
		if matcher(in) {
			return true
		}
	}
	return false
}

// Global registries. The detection tree publishes its own matchers here on
// first use; callers extend them through RegisterMIME and RegisterExtension.
var (
	mimeRegistry = newMatcherRegistry()
	extRegistry  = newMatcherRegistry()
)

// RegisterMIME registers a custom matcher for a MIME type. Detection through
// MatchMIME and IsSupported consults custom matchers alongside the built-in
// ones; the static detection tree used by Detect is not affected.
//
// Registration is safe for concurrent use. It is expected to happen during
// process startup: matchers accumulate and are never removed.
//
// The key is normalized the same way lookups are, so registering under
// "text/plain; charset=utf-8" and querying "text/plain" agree.
func RegisterMIME(mime string, matcher MatcherFunc) {
	mimeRegistry.add(normalizeMIME(mime), matcher)
}

// RegisterExtension registers a custom matcher for a file extension, e.g.
// ".myformat". See RegisterMIME for the registration semantics.
func RegisterExtension(extension string, matcher MatcherFunc) {
	extRegistry.add(extension, matcher)
}

// IsSupported reports whether a MIME type has any matcher registered,
// built-in or custom. The MIME string is normalized before lookup.
func IsSupported(mime string) bool {
	ensureInit()
	return mimeRegistry.has(normalizeMIME(mime))
}

// IsSupportedExtension reports whether a file extension has any matcher
// registered, built-in or custom.
func IsSupportedExtension(extension string) bool {
	ensureInit()
	return extRegistry.has(extension)
}
