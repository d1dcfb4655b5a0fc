package doctree

import "strings"

// Kind is the closed set of structural roles a node may have.
type Kind string

const (
	KindRoot          Kind = "root"
	KindTOC           Kind = "toc"
	KindPart          Kind = "part"
	KindChapter       Kind = "chapter"
	KindSection       Kind = "section"
	KindSubsection    Kind = "subsection"
	KindSubsubsection Kind = "subsubsection"
	KindParagraph     Kind = "paragraph"
	KindPage          Kind = "page"
)

// Structural rules are dispatched through tables keyed by kind rather than
// per-kind types, so each kind's behavior stays in one place.

var allowedChildren = map[Kind][]Kind{
	KindRoot:          {KindTOC, KindPart, KindChapter, KindPage},
	KindPart:          {KindChapter, KindPage},
	KindChapter:       {KindSection, KindParagraph, KindPage},
	KindSection:       {KindSubsection, KindParagraph},
	KindSubsection:    {KindSubsubsection, KindParagraph},
	KindSubsubsection: {KindParagraph},
}

// promoteTo maps a kind to the kind one level up the hierarchy. Kinds absent
// from the table (part, and the non-sectioning kinds) cannot be promoted.
var promoteTo = map[Kind]Kind{
	KindChapter:       KindPart,
	KindSection:       KindChapter,
	KindSubsection:    KindSection,
	KindSubsubsection: KindSubsection,
	KindParagraph:     KindSubsubsection,
}

var demoteTo = map[Kind]Kind{
	KindPart:          KindChapter,
	KindChapter:       KindSection,
	KindSection:       KindSubsection,
	KindSubsection:    KindSubsubsection,
	KindSubsubsection: KindParagraph,
}

// citable kinds may anchor a formatted cross-reference.
var citable = map[Kind]bool{
	KindPart:    true,
	KindChapter: true,
	KindSection: true,
}

var validKinds = map[Kind]bool{
	KindRoot: true, KindTOC: true, KindPart: true, KindChapter: true,
	KindSection: true, KindSubsection: true, KindSubsubsection: true,
	KindParagraph: true, KindPage: true,
}

// ValidKind reports whether k is a member of the kind enumeration.
func ValidKind(k Kind) bool {
	return validKinds[k]
}

// CanContain reports whether a node of kind parent may hold a child of kind child.
func CanContain(parent, child Kind) bool {
	for _, k := range allowedChildren[parent] {
		if k == child {
			return true
		}
	}
	return false
}

// Citable reports whether k may anchor a formatted reference.
func Citable(k Kind) bool {
	return citable[k]
}

// Display returns the capitalized form used in reference text, e.g. "Section".
func (k Kind) Display() string {
	if k == "" {
		return ""
	}
	return strings.ToUpper(string(k[0])) + string(k[1:])
}
