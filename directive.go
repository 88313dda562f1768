package nowiki

import "strings"

// legacyHighlight holds the old-style bare language directives that are
// rewritten to "highlight <name>" before dispatch, so {{{#!python behaves
// like {{{#!highlight python.
var legacyHighlight = map[string]struct{}{
	"diff":      {},
	"cplusplus": {},
	"python":    {},
	"java":      {},
	"pascal":    {},
	"irc":       {},
}

// Directive is the parsed form of a raw block's #!format line.
type Directive struct {
	// Name is the declared format, after legacy alias rewriting.
	// Empty when the line carries no #! sentinel.
	Name string
	// Args is the residual argument string after the first space.
	Args string
	// HasArgs reports whether the line carried a residual argument string.
	HasArgs bool
}

// ParseDirective parses a raw directive line such as "#!highlight python".
// A missing sentinel or an empty directive yields a zero Directive, which
// dispatches to the unknown-format path. It never fails.
func ParseDirective(line string) Directive {
	line = strings.TrimRight(line, " \t\r\n")
	if !strings.HasPrefix(line, "#!") || len(line) <= 2 {
		return Directive{}
	}

	name, args, found := strings.Cut(line[2:], " ")
	d := Directive{Name: name, Args: args, HasArgs: found}

	if _, ok := legacyHighlight[d.Name]; ok {
		d.Args = d.Name
		d.HasArgs = true
		d.Name = "highlight"
	}
	return d
}

// Format is the closed set of raw-block formats the expander dispatches on.
type Format int

const (
	FormatUnknown Format = iota
	FormatHighlight
	FormatCSV
	FormatWiki
	FormatCreole
	FormatRST
	FormatDocBook
	FormatMarkdown
	FormatMediaWiki
)

func (f Format) String() string {
	switch f {
	case FormatHighlight:
		return "highlight"
	case FormatCSV:
		return "csv"
	case FormatWiki:
		return "wiki"
	case FormatCreole:
		return "creole"
	case FormatRST:
		return "rst"
	case FormatDocBook:
		return "docbook"
	case FormatMarkdown:
		return "markdown"
	case FormatMediaWiki:
		return "mediawiki"
	default:
		return "unknown"
	}
}

// ResolveFormat maps a directive name to its Format. Matching is exact and
// case-sensitive; anything unrecognized resolves to FormatUnknown.
func ResolveFormat(name string) Format {
	switch name {
	case "highlight":
		return FormatHighlight
	case "csv", "text/csv":
		return FormatCSV
	case "wiki", "text/x.moin.wiki":
		return FormatWiki
	case "creole", "text/x.moin.creole":
		return FormatCreole
	case "rst", "text/x-rst":
		return FormatRST
	case "docbook", "application/docbook+xml":
		return FormatDocBook
	case "markdown", "text/x-markdown":
		return FormatMarkdown
	case "mediawiki", "text/x-mediawiki":
		return FormatMediaWiki
	default:
		return FormatUnknown
	}
}
