package mimekit

import "strings"

// MatcherFunc is a detection predicate. Implementations must be pure, must
// never panic, and must tolerate inputs of any length including empty —
// offset checks short-circuit to false when the input is too short.
type MatcherFunc func([]byte) bool

// MIMEType is a single node in the detection tree. It pairs a MIME string
// with a matcher function and the more specific sub-formats that should be
// tried once this node's matcher accepts the input.
//
// All MIMEType values are constructed at package init and never mutated
// afterwards; runtime extensibility goes through RegisterMIME and
// RegisterExtension instead.
type MIMEType struct {
	mime       string
	aliases    []string
	extension  string
	extAliases []string
	matcher    MatcherFunc

	// children are ordered by priority; the first matching child wins and
	// its siblings are never revisited.
	children []*MIMEType

	// parent is a non-owning back-reference, used for kind inheritance and
	// upward queries only.
	parent *MIMEType

	kind Kind
}

// newMIMEType creates a detection tree node. Children are listed in
// priority order.
func newMIMEType(mime, extension string, matcher MatcherFunc, children ...*MIMEType) *MIMEType {
	return &MIMEType{
		mime:      mime,
		extension: extension,
		matcher:   matcher,
		children:  children,
	}
}

func (m *MIMEType) withAliases(aliases ...string) *MIMEType {
	m.aliases = aliases
	return m
}

func (m *MIMEType) withExtensionAliases(aliases ...string) *MIMEType {
	m.extAliases = aliases
	return m
}

func (m *MIMEType) withKind(kind Kind) *MIMEType {
	m.kind = kind
	return m
}

// MIME returns the canonical MIME string, e.g. "image/png".
func (m *MIMEType) MIME() string {
	return m.mime
}

// Extension returns the canonical file extension including the leading dot,
// e.g. ".png". The root fallback type has no extension.
func (m *MIMEType) Extension() string {
	return m.extension
}

// Parent returns the node one level up the detection hierarchy, or nil for
// top-level types.
func (m *MIMEType) Parent() *MIMEType {
	return m.parent
}

// Kind returns the category of the type merged with the categories of all
// its ancestors. A DOCX file therefore reports both document and archive,
// because its parent in the tree is ZIP.
func (m *MIMEType) Kind() Kind {
	if m.parent != nil {
		return m.kind.Union(m.parent.Kind())
	}
	return m.kind
}

// String implements fmt.Stringer and returns the MIME string.
func (m *MIMEType) String() string {
	return m.mime
}

// Is reports whether the type equals the expected MIME string. Both sides
// are normalized by dropping any parameter part (";charset=..." and the
// like) and trimming whitespace. Registered aliases compare equal to the
// canonical name.
func (m *MIMEType) Is(expected string) bool {
	expected = normalizeMIME(expected)
	if normalizeMIME(m.mime) == expected {
		return true
	}
	for _, alias := range m.aliases {
		if alias == expected {
			return true
		}
	}
	return false
}

// match walks the subtree rooted at m and returns the most specific node
// whose matcher accepts in. Children are tried in priority order and the
// first match wins; once a child matches, its siblings are never
// reconsidered, even if the descent below that child goes no deeper.
func (m *MIMEType) match(in []byte) *MIMEType {
	for _, child := range m.children {
		if child.matcher(in) {
			return child.match(in)
		}
	}
	return m
}

// Flatten returns the node and every descendant in depth-first order.
func (m *MIMEType) Flatten() []*MIMEType {
	result := []*MIMEType{m}
	for _, child := range m.children {
		result = append(result, child.Flatten()...)
	}
	return result
}

// register publishes the node's matcher into the global registries under
// its MIME string, extension, and every alias, then recurses into children.
func (m *MIMEType) register() {
	RegisterMIME(m.mime, m.matcher)
	if m.extension != "" {
		RegisterExtension(m.extension, m.matcher)
	}
	for _, alias := range m.aliases {
		RegisterMIME(alias, m.matcher)
	}
	for _, alias := range m.extAliases {
		RegisterExtension(alias, m.matcher)
	}
	for _, child := range m.children {
		child.register()
	}
}

// normalizeMIME drops any parameter suffix and surrounding whitespace:
// "text/html; charset=utf-8" normalizes to "text/html".
func normalizeMIME(mime string) string {
	if idx := strings.IndexByte(mime, ';'); idx != -1 {
		mime = mime[:idx]
	}
	return strings.TrimSpace(mime)
}
