package export

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/refs"
)

var latexCommand = map[doctree.Kind]string{
	doctree.KindPart:          `\part`,
	doctree.KindChapter:       `\chapter`,
	doctree.KindSection:       `\section`,
	doctree.KindSubsection:    `\subsection`,
	doctree.KindSubsubsection: `\subsubsection`,
}

// LaTeX renders a minimal book-class document. Reference markers are
// rewritten to \ref{label} rather than resolved to static text — LaTeX does
// its own numbering and cross-referencing at compile time.
func LaTeX(s *doctree.DocumentState) string {
	var b strings.Builder
	b.WriteString("\\documentclass{book}\n\n\\begin{document}\n\n")

	if root := s.Nodes[s.RootID]; root != nil && root.Title != "" {
		b.WriteString(`\title{` + latexEscape(root.Title) + "}\n\\maketitle\n\n")
	}
	if hasRootTOC(s) {
		b.WriteString("\\tableofcontents\n\n")
	}

	walk(s, func(n *doctree.DocNode, _ int) {
		switch n.Kind {
		case doctree.KindTOC:
			return
		case doctree.KindPage:
			b.WriteString("\\newpage\n\n")
			return
		}
		if cmd, ok := latexCommand[n.Kind]; ok && n.Title != "" {
			if !n.IsNumbered() {
				cmd += "*"
			}
			b.WriteString(cmd + "{" + latexEscape(n.Title) + "}\n")
			if n.Label != "" {
				b.WriteString(`\label{` + n.Label + "}\n")
			}
			b.WriteString("\n")
		}
		if n.Content != "" {
			b.WriteString(latexContent(n.Content) + "\n\n")
		}
	})

	b.WriteString("\\end{document}\n")
	return b.String()
}

// latexContent escapes free text while rewriting reference markers to \ref.
// Markers are located first so the emitted \ref{...} is not itself escaped.
func latexContent(content string) string {
	markers := refs.Scan(content)
	var b strings.Builder
	last := 0
	for _, m := range markers {
		b.WriteString(latexEscape(content[last:m.Start]))
		b.WriteString(`\ref{` + m.Label + "}")
		last = m.End
	}
	b.WriteString(latexEscape(content[last:]))
	return b.String()
}

// latexEscape neutralizes LaTeX special characters: \ { } $ & # ^ _ ~ %.
func latexEscape(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\textbackslash{}`)
		case '^':
			b.WriteString(`\textasciicircum{}`)
		case '~':
			b.WriteString(`\textasciitilde{}`)
		case '{', '}', '$', '&', '#', '_', '%':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
