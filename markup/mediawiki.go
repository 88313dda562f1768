package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/moinwiki/nowiki"
)

var (
	mwHeadingRe = regexp.MustCompile(`^(={1,6})\s*(.*?)\s*=*\s*$`)
	mwBulletRe  = regexp.MustCompile(`^([*#])\s*(.*)$`)
	mwRuleRe    = regexp.MustCompile(`^-{4,}\s*$`)
)

// MediaWiki parses MediaWiki markup at block level. It is a whole-text
// parser; arg carries the residual directive arguments and becomes a CSS
// class on the body when present.
type MediaWiki struct{}

func NewMediaWiki() *MediaWiki {
	return &MediaWiki{}
}

func (m *MediaWiki) Parse(text string, arg string) (*nowiki.Node, error) {
	body := nowiki.NewNode(nowiki.TagBlock)
	if arg != "" {
		body.SetAttr(nowiki.AttrClass, arg)
	}

	var para []string
	flush := func() {
		if len(para) > 0 {
			body.Append(paragraph(para))
			para = nil
		}
	}

	lines := nowiki.NewLineCursor(nowiki.NormalizeSplit(text))
	for {
		line, ok := lines.Next()
		if !ok {
			break
		}

		switch {
		case strings.TrimSpace(line) == "":
			flush()

		case mwHeadingRe.MatchString(line) && strings.HasPrefix(line, "="):
			flush()
			hm := mwHeadingRe.FindStringSubmatch(line)
			body.Append(nowiki.NewNode(nowiki.TagHeading).
				SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(len(hm[1]))).
				Append(nowiki.NewText(hm[2])))

		case mwRuleRe.MatchString(line):
			flush()
			body.Append(nowiki.NewNode(nowiki.TagSeparator))

		case mwBulletRe.MatchString(line):
			flush()
			body.Append(m.parseList(line, lines))

		default:
			para = append(para, strings.TrimSpace(line))
		}
	}
	flush()

	return nowiki.NewNode(nowiki.TagPage).Append(body), nil
}

func (m *MediaWiki) parseList(first string, lines *nowiki.LineCursor) *nowiki.Node {
	fm := mwBulletRe.FindStringSubmatch(first)
	list := nowiki.NewNode(nowiki.TagList)
	if fm[1] == "#" {
		list.SetAttr(nowiki.AttrClass, "ordered")
	}
	list.Append(listItem(fm[2]))

	for {
		next, ok := lines.Peek()
		if !ok {
			break
		}
		nm := mwBulletRe.FindStringSubmatch(next)
		if nm == nil || nm[1] != fm[1] {
			break
		}
		lines.Next()
		list.Append(listItem(nm[2]))
	}
	return list
}
