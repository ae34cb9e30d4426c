package skill

import (
	"regexp"
	"sort"
	"strings"
)

// Reference extraction is a stateless text-pattern scan. The patterns mirror
// the authoring conventions for skills: markdown links to local files and
// inline code spans naming files under the bundled resource directories.
// Known limitation: inline code containing a slash can false-positive, and
// references inside fenced code blocks are still picked up.
var (
	markdownLinkRe = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)
	inlineCodeRe   = regexp.MustCompile("`((?:scripts|templates|assets|references)/[^`]+)`")
)

// ExtractReferences returns the distinct local file references in body text:
// markdown link targets (excluding http/https URLs) and inline code spans
// under scripts/, templates/, assets/, or references/. References are
// trimmed, deduplicated, and returned in sorted order so repeated runs
// produce identical reports.
func ExtractReferences(body string) []string {
	seen := map[string]bool{}

	for _, m := range markdownLinkRe.FindAllStringSubmatch(body, -1) {
		addReference(seen, m[1])
	}
	for _, m := range inlineCodeRe.FindAllStringSubmatch(body, -1) {
		addReference(seen, m[1])
	}

	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func addReference(seen map[string]bool, ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "http") {
		return
	}
	seen[ref] = true
}
