package theme

import (
	"fmt"

	"github.com/lunit-heesungyang/facet/internal/style"
)

// Mapping points an external style name at semantic faces. When several
// faces are listed the rightmost wins on conflicting attributes.
type Mapping struct {
	Name    string
	Inherit []string
}

// Mappings is the static table of external styles. It is plain data and
// is never reevaluated: the faces it points at are.
var Mappings = []Mapping{
	// Basics
	{"default", []string{FaceDefault}},
	{"bold", []string{FaceStrong}},
	{"shadow", []string{FaceFaded}},
	{"link", []string{FaceSalient}},
	{"link-visited", []string{FaceFaded, FaceSalient}},
	{"highlight", []string{FaceHover}},
	{"region", []string{FaceSelected}},
	{"match", []string{FacePopout}},
	{"cursor", []string{FaceSalientI}},
	{"tooltip", []string{FaceSubtle}},

	// Status
	{"error", []string{FaceCritical}},
	{"warning", []string{FacePopout, FaceStrong}},
	{"success", []string{FaceSalient}},
	{"notice", []string{FaceCriticalSubtle}},

	// Chrome
	{"mode-line", []string{FaceSubtle, FaceDefault, FaceStrong}},
	{"mode-line-inactive", []string{FaceSubtle, FaceFaded}},
	{"header-line", []string{FaceHeader}},
	{"vertical-border", []string{FaceFaded}},
	{"line-number", []string{FaceFaded}},
	{"line-number-current", []string{FaceDefault, FaceStrong}},
	{"minibuffer-prompt", []string{FaceStrong}},
	{"button", []string{FaceBoxed, FaceSalient}},

	// Search
	{"isearch", []string{FacePopoutI}},
	{"lazy-highlight", []string{FacePopout, FaceSubtle}},
	{"show-paren-match", []string{FaceStrong, FaceSalient}},
	{"show-paren-mismatch", []string{FaceCritical}},

	// Syntax
	{"font-lock-comment", []string{FaceFaded}},
	{"font-lock-string", []string{FacePopout}},
	{"font-lock-keyword", []string{FaceSalient}},
	{"font-lock-builtin", []string{FaceSalient}},
	{"font-lock-function-name", []string{FaceStrong, FaceSalient}},
	{"font-lock-type", []string{FaceSalient}},
	{"font-lock-constant", []string{FaceSalient}},
	{"font-lock-variable-name", []string{FaceStrong}},
	{"font-lock-warning", []string{FacePopout}},

	// Diffs
	{"diff-added", []string{"facet-" + AccentAnalog1 + "-subtle"}},
	{"diff-removed", []string{FaceCriticalSubtle}},
	{"diff-changed", []string{"facet-" + AccentComplement + "-subtle"}},
	{"diff-header", []string{FaceHeader}},

	// Markup
	{"markup-heading", []string{FaceStrong}},
	{"markup-code", []string{FaceSubtle, FaceDefault}},
	{"markup-quote", []string{FaceFaded}},
	{"markup-link", []string{FaceSalient}},
}

// InstallMappings applies every mapping to store as a face whose only
// attribute is its inherit list.
func InstallMappings(store *style.Store) error {
	for _, m := range Mappings {
		face := style.Face{Inherit: append([]string(nil), m.Inherit...)}
		if err := store.ApplyStyle(m.Name, face, style.PriorityDefault); err != nil {
			return fmt.Errorf("installing mapping %s: %w", m.Name, err)
		}
	}
	return nil
}
