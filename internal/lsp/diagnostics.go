package lsp

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sourcegraph/go-lsp"

	"github.com/moinwiki/nowiki"
)

const diagnosticSource = "nowiki"

var fenceOpenRe = regexp.MustCompile(`^(\{{3,})(.*)$`)
var fenceCloseRe = regexp.MustCompile(`^(\}{3,})\s*$`)

// Analyzer scans moin documents for {{{#!...}}} directives and reports the
// ones the expander would flag: unknown formats and highlight hints no
// lexer resolves. It mirrors the expander's nesting rules, so fences inside
// an opaque block (anything but a wiki sub-document) are not scanned.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// openFence tracks one unclosed {{{ marker while scanning.
type openFence struct {
	markerLen int
	// opaque fences keep their body raw, so inner fences are not analyzed
	opaque bool
}

// Analyze returns diagnostics for every problematic directive in text.
// Positions are zero-based, per the LSP spec.
func (a *Analyzer) Analyze(text string) []lsp.Diagnostic {
	diagnostics := []lsp.Diagnostic{}
	var stack []openFence

	for i, line := range nowiki.NormalizeSplit(text) {
		trimmed := strings.TrimRight(line, " \t")

		if cm := fenceCloseRe.FindStringSubmatch(trimmed); cm != nil && len(stack) > 0 {
			if len(cm[1]) == stack[len(stack)-1].markerLen {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if len(stack) > 0 && stack[len(stack)-1].opaque {
			continue
		}

		om := fenceOpenRe.FindStringSubmatch(trimmed)
		if om == nil || strings.Contains(om[2], "}}}") {
			// inline {{{...}}} nowiki never opens a block fence
			continue
		}

		directive := nowiki.ParseDirective(om[2])
		format := nowiki.ResolveFormat(directive.Name)
		stack = append(stack, openFence{
			markerLen: len(om[1]),
			opaque:    format != nowiki.FormatWiki,
		})

		if d, ok := a.checkDirective(i, len(om[1]), trimmed, directive, format); ok {
			diagnostics = append(diagnostics, d)
		}
	}

	return diagnostics
}

func (a *Analyzer) checkDirective(line, markerLen int, raw string, directive nowiki.Directive, format nowiki.Format) (lsp.Diagnostic, bool) {
	// Only #! directives are validated. Bare {{{ fences are deliberate
	// preformatted blocks; warning on every one of them would be noise.
	if !strings.HasPrefix(strings.TrimSpace(raw[markerLen:]), "#!") {
		return lsp.Diagnostic{}, false
	}

	var message string
	switch {
	case format == nowiki.FormatUnknown:
		message = fmt.Sprintf("unknown raw block format %q, content will fall back to plain text", directive.Name)
	case format == nowiki.FormatHighlight && !nowiki.KnownLexer(directive.Args):
		message = fmt.Sprintf("no lexer found for %q, content will fall back to plain text", directive.Args)
	default:
		return lsp.Diagnostic{}, false
	}

	return lsp.Diagnostic{
		Range: lsp.Range{
			Start: lsp.Position{Line: line, Character: markerLen},
			End:   lsp.Position{Line: line, Character: len(raw)},
		},
		Severity: lsp.Warning,
		Source:   diagnosticSource,
		Message:  message,
	}, true
}
