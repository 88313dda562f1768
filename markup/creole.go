package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/moinwiki/nowiki"
)

var (
	creoleHeadingRe = regexp.MustCompile(`^(={1,6})\s*(.*?)\s*=*\s*$`)
	creoleBulletRe  = regexp.MustCompile(`^\s*([*#])\s+(.*)$`)
	creoleRuleRe    = regexp.MustCompile(`^----\s*$`)
)

// Creole parses WikiCreole markup at block level: headings, unordered and
// ordered lists, horizontal rules and paragraphs.
type Creole struct{}

func NewCreole() *Creole {
	return &Creole{}
}

func (c *Creole) ParseBlock(lines *nowiki.LineCursor, args string) (*nowiki.Node, error) {
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

		switch {
		case strings.TrimSpace(line) == "":
			flush()

		case creoleHeadingRe.MatchString(line) && strings.HasPrefix(line, "="):
			flush()
			m := creoleHeadingRe.FindStringSubmatch(line)
			body.Append(nowiki.NewNode(nowiki.TagHeading).
				SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(len(m[1]))).
				Append(nowiki.NewText(m[2])))

		case creoleRuleRe.MatchString(line):
			flush()
			body.Append(nowiki.NewNode(nowiki.TagSeparator))

		case creoleBulletRe.MatchString(line):
			flush()
			body.Append(c.parseList(line, lines))

		default:
			para = append(para, strings.TrimSpace(line))
		}
	}
	flush()
	return body, nil
}

func (c *Creole) parseList(first string, lines *nowiki.LineCursor) *nowiki.Node {
	m := creoleBulletRe.FindStringSubmatch(first)
	list := nowiki.NewNode(nowiki.TagList)
	if m[1] == "#" {
		list.SetAttr(nowiki.AttrClass, "ordered")
	}
	list.Append(listItem(m[2]))

	for {
		next, ok := lines.Peek()
		if !ok {
			break
		}
		nm := creoleBulletRe.FindStringSubmatch(next)
		if nm == nil || nm[1] != m[1] {
			break
		}
		lines.Next()
		list.Append(listItem(nm[2]))
	}
	return list
}
