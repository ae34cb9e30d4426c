// Package skill contains the document validation engine: the frontmatter
// parser, the rule catalog, and the body reference extractor. Everything in
// this package is pure; filesystem access stays behind the domain ports.
package skill

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// frontmatterRe matches the whole document in one pass: an opening --- line
// anchored at the start, a non-greedy metadata block, a closing --- line, and
// the body as everything after. (?s) makes . match newlines.
var frontmatterRe = regexp.MustCompile(`(?s)^---\s*\n(.*?)\n---\s*\n(.*)$`)

// MissingFrontmatterError reports a document that does not open with the ---
// delimiter pattern. Fatal: without delimiters there is no body to degrade to.
type MissingFrontmatterError struct{}

func (*MissingFrontmatterError) Error() string {
	return "missing YAML frontmatter (document must start with ---)"
}

// InvalidMetadataError wraps a YAML decode failure of the metadata block. The
// body was still extracted, so callers can keep running body-level rules.
type InvalidMetadataError struct {
	Err error
}

func (e *InvalidMetadataError) Error() string {
	return fmt.Sprintf("invalid YAML frontmatter: %v", e.Err)
}

func (e *InvalidMetadataError) Unwrap() error { return e.Err }

// Frontmatter is the decoded metadata mapping. Keys behave as a set for
// lookup but insertion order is preserved for display.
type Frontmatter struct {
	keys   []string
	values map[string]any
}

// Len returns the number of top-level keys.
func (f Frontmatter) Len() int { return len(f.keys) }

// Keys returns the top-level keys in document order.
func (f Frontmatter) Keys() []string { return f.keys }

// Has reports whether the key is present, regardless of its value type.
func (f Frontmatter) Has(key string) bool {
	_, ok := f.values[key]
	return ok
}

// Get returns the decoded value for key.
func (f Frontmatter) Get(key string) (any, bool) {
	v, ok := f.values[key]
	return v, ok
}

// GetString returns the value for key when it is present and a string.
func (f Frontmatter) GetString(key string) (string, bool) {
	v, ok := f.values[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// StringOr returns the string value for key, or fallback when the key is
// absent or not a string.
func (f Frontmatter) StringOr(key, fallback string) string {
	if s, ok := f.GetString(key); ok {
		return s
	}
	return fallback
}

// Document is one parsed skill document, immutable after parsing.
type Document struct {
	Raw  string
	Meta Frontmatter
	Body string
}

// ParseDocument splits raw text into frontmatter and body and decodes the
// metadata block.
//
// On a *MissingFrontmatterError the document is unusable. On an
// *InvalidMetadataError the returned Document still carries the extracted
// body so body-level checks can degrade gracefully. An empty or null
// metadata block decodes to an empty mapping, not an error.
func ParseDocument(raw string) (Document, error) {
	m := frontmatterRe.FindStringSubmatch(raw)
	if m == nil {
		return Document{Raw: raw}, &MissingFrontmatterError{}
	}

	doc := Document{Raw: raw, Body: m[2]}

	meta, err := decodeFrontmatter([]byte(m[1]))
	if err != nil {
		return doc, &InvalidMetadataError{Err: err}
	}
	doc.Meta = meta
	return doc, nil
}

// decodeFrontmatter decodes the metadata block via an intermediate yaml.Node
// so the original key order survives into Frontmatter.
func decodeFrontmatter(block []byte) (Frontmatter, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(block, &root); err != nil {
		return Frontmatter{}, err
	}

	fm := Frontmatter{values: map[string]any{}}

	// Empty block or explicit null: treat as an empty mapping.
	if len(root.Content) == 0 {
		return fm, nil
	}
	node := root.Content[0]
	if node.Tag == "!!null" {
		return fm, nil
	}
	if node.Kind != yaml.MappingNode {
		return Frontmatter{}, fmt.Errorf("frontmatter must be a mapping, got %s", node.Tag)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var value any
		if err := valNode.Decode(&value); err != nil {
			return Frontmatter{}, err
		}
		key := keyNode.Value
		if _, dup := fm.values[key]; !dup {
			fm.keys = append(fm.keys, key)
		}
		fm.values[key] = value
	}
	return fm, nil
}
