// Package markup implements the embedded-language parsers a raw block can
// dispatch to: moin wiki, creole, reStructuredText, DocBook, Markdown and
// MediaWiki. Each parser produces document tree nodes; none of them render
// output.
package markup

import "github.com/moinwiki/nowiki"

// Default returns a registry wired with all six embedded-language parsers
// under their canonical IDs. The registry is safe to share across
// expanders; the parsers hold no per-document state.
func Default() *nowiki.Registry {
	r := nowiki.NewRegistry()
	r.RegisterBlock(nowiki.ParserWiki, NewWiki())
	r.RegisterBlock(nowiki.ParserCreole, NewCreole())
	r.RegisterText(nowiki.ParserRST, NewRST())
	r.RegisterText(nowiki.ParserDocBook, NewDocBook())
	r.RegisterText(nowiki.ParserMarkdown, NewMarkdown())
	r.RegisterText(nowiki.ParserMediaWiki, NewMediaWiki())
	return r
}
