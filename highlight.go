package nowiki

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerFor resolves a highlight hint, first as a lexer name, then as a
// mimetype. ok is false when neither resolves; callers fall back to the
// plain-text lexer after reporting the bad hint.
func lexerFor(hint string) (chroma.Lexer, bool) {
	if hint == "" {
		return nil, false
	}
	if lx := lexers.Get(hint); lx != nil {
		return lx, true
	}
	if lx := lexers.MatchMimeType(hint); lx != nil {
		return lx, true
	}
	return nil, false
}

// KnownLexer reports whether a highlight hint resolves to a lexer, by name
// or by mimetype.
func KnownLexer(hint string) bool {
	_, ok := lexerFor(hint)
	return ok
}

// plainLexer returns the guaranteed plain-text lexer.
func plainLexer() chroma.Lexer {
	return lexers.Fallback
}

// tokenClass maps a token type to its short CSS class, falling back through
// the type's sub-category and category the way the HTML formatter does.
func tokenClass(tt chroma.TokenType) string {
	if c, ok := chroma.StandardTypes[tt]; ok {
		return c
	}
	if c, ok := chroma.StandardTypes[tt.SubCategory()]; ok {
		return c
	}
	return chroma.StandardTypes[tt.Category()]
}

// highlightBlock tokenizes content with the given lexer and renders the
// token stream into a single blockcode node. Tokens with a class become
// class-tagged spans; untyped text is appended as bare text runs. This
// path never fails outward: a tokenizer error degrades to an unhighlighted
// text run.
func highlightBlock(content string, lexer chroma.Lexer) *Node {
	code := NewNode(TagBlockcode).SetAttr(AttrClass, "highlight")

	it, err := chroma.Coalesce(lexer).Tokenise(nil, content)
	if err != nil {
		code.Append(NewText(content))
		return code
	}

	for _, tok := range it.Tokens() {
		class := tokenClass(tok.Type)
		if class == "" {
			code.Append(NewText(tok.Value))
			continue
		}
		code.Append(NewNode(TagSpan).SetAttr(AttrClass, class).Append(NewText(tok.Value)))
	}
	return code
}
