package markup

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/moinwiki/nowiki"
)

var (
	fenceOpenRe  = regexp.MustCompile(`^(\{{3,})(.*)$`)
	fenceCloseRe = regexp.MustCompile(`^(\}{3,})\s*$`)
	headingRe    = regexp.MustCompile(`^(=+)\s*(.*?)\s*=*\s*$`)
	ruleRe       = regexp.MustCompile(`^-{4,}\s*$`)
	bulletRe     = regexp.MustCompile(`^\s+\*\s+(.*)$`)
)

// Wiki parses moin wiki markup at block level: headings, bullet lists,
// horizontal rules, paragraphs and {{{...}}} fenced raw blocks. Fenced
// blocks are not interpreted here; they become raw-block placeholder nodes
// for the expander to consume.
type Wiki struct{}

func NewWiki() *Wiki {
	return &Wiki{}
}

// ParseDocument parses a whole wiki page into a document whose raw blocks
// are unexpanded placeholders.
func (w *Wiki) ParseDocument(r io.Reader, meta nowiki.MetaData) (*nowiki.Document, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := nowiki.NewLineCursor(nowiki.NormalizeSplit(string(content)))
	body, err := w.ParseBlock(lines, "")
	if err != nil {
		return nil, err
	}

	return &nowiki.Document{
		Metadata: meta,
		Root:     nowiki.NewNode(nowiki.TagPage).Append(body),
	}, nil
}

// ParseBlock consumes the cursor and returns a body wrapper. A non-empty
// args string becomes the wrapper's CSS class.
func (w *Wiki) ParseBlock(lines *nowiki.LineCursor, args string) (*nowiki.Node, error) {
	body := nowiki.NewNode(nowiki.TagBlock)
	if args != "" {
		body.SetAttr(nowiki.AttrClass, args)
	}

	var para []string
	flush := func() {
		if len(para) > 0 {
			body.Append(paragraph(para))
			para = nil
		}
	}

	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		trimmed := strings.TrimRight(line, " \t")

		switch {
		case strings.TrimSpace(trimmed) == "":
			flush()

		case fenceOpenRe.MatchString(trimmed) && !strings.Contains(trimmed, "}}}"):
			flush()
			body.Append(w.parseFence(trimmed, lines))

		case headingRe.MatchString(trimmed) && strings.HasPrefix(trimmed, "="):
			flush()
			body.Append(heading(trimmed))

		case ruleRe.MatchString(trimmed):
			flush()
			body.Append(nowiki.NewNode(nowiki.TagSeparator))

		case bulletRe.MatchString(line):
			flush()
			body.Append(w.parseList(line, lines))

		default:
			para = append(para, strings.TrimSpace(line))
		}
	}
	flush()
	return body, nil
}

// parseFence captures a {{{...}}} block verbatim into a placeholder node.
// The directive, if any, rides on the open line immediately after the
// braces. Nested fences are tracked by marker length so an inner block
// stays part of the outer block's raw body; an unterminated fence runs to
// the end of input.
func (w *Wiki) parseFence(open string, lines *nowiki.LineCursor) *nowiki.Node {
	m := fenceOpenRe.FindStringSubmatch(open)
	marker := m[1]
	directive := strings.TrimRight(m[2], " \t")

	var body []string
	depth := []int{len(marker)}
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}
		if cm := fenceCloseRe.FindStringSubmatch(line); cm != nil && len(cm[1]) == depth[len(depth)-1] {
			depth = depth[:len(depth)-1]
			if len(depth) == 0 {
				break
			}
			body = append(body, line)
			continue
		}
		if om := fenceOpenRe.FindStringSubmatch(strings.TrimRight(line, " \t")); om != nil {
			depth = append(depth, len(om[1]))
		}
		body = append(body, line)
	}

	return nowiki.NewRawBlock(marker, directive, strings.Join(body, "\n"))
}

func (w *Wiki) parseList(first string, lines *nowiki.LineCursor) *nowiki.Node {
	list := nowiki.NewNode(nowiki.TagList)
	item := bulletRe.FindStringSubmatch(first)[1]
	list.Append(listItem(item))

	for {
		next, ok := lines.Peek()
		if !ok {
			break
		}
		m := bulletRe.FindStringSubmatch(next)
		if m == nil {
			break
		}
		lines.Next()
		list.Append(listItem(m[1]))
	}
	return list
}

func listItem(text string) *nowiki.Node {
	return nowiki.NewNode(nowiki.TagListItem).Append(nowiki.NewText(text))
}

func paragraph(lines []string) *nowiki.Node {
	return nowiki.NewNode(nowiki.TagP).Append(nowiki.NewText(strings.Join(lines, " ")))
}

func heading(line string) *nowiki.Node {
	m := headingRe.FindStringSubmatch(line)
	level := len(m[1])
	if level > 6 {
		level = 6
	}
	return nowiki.NewNode(nowiki.TagHeading).
		SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(level)).
		Append(nowiki.NewText(m[2]))
}
