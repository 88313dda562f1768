package markup

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/moinwiki/nowiki"
)

var rstBulletRe = regexp.MustCompile(`^([-*+])\s+(.*)$`)

const rstAdornmentChars = "=-`:'\"~^_*+#<>"

// RST parses a block-level subset of reStructuredText: underlined section
// titles, literal blocks introduced by "::", bullet lists and paragraphs.
// Section levels are assigned to adornment characters in order of first
// use, the way docutils does.
type RST struct{}

func NewRST() *RST {
	return &RST{}
}

func (p *RST) Parse(text string, arg string) (*nowiki.Node, error) {
	body := nowiki.NewNode(nowiki.TagBlock)
	levels := make(map[byte]int)

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
		trimmed := strings.TrimRight(line, " \t")

		switch {
		case strings.TrimSpace(trimmed) == "":
			flush()

		case p.isSectionTitle(trimmed, lines):
			flush()
			underline, _ := lines.Next()
			char := strings.TrimSpace(underline)[0]
			if _, seen := levels[char]; !seen {
				levels[char] = len(levels) + 1
			}
			body.Append(nowiki.NewNode(nowiki.TagHeading).
				SetAttr(nowiki.AttrOutlineLevel, strconv.Itoa(levels[char])).
				Append(nowiki.NewText(strings.TrimSpace(trimmed))))

		case strings.HasSuffix(trimmed, "::"):
			intro := strings.TrimSuffix(trimmed, "::")
			if strings.TrimSpace(intro) != "" {
				para = append(para, strings.TrimSpace(intro)+":")
			}
			flush()
			body.Append(p.parseLiteralBlock(lines))

		case rstBulletRe.MatchString(trimmed):
			flush()
			body.Append(p.parseList(trimmed, lines))

		default:
			para = append(para, strings.TrimSpace(line))
		}
	}
	flush()

	return nowiki.NewNode(nowiki.TagPage).Append(body), nil
}

// isSectionTitle reports whether line is followed by an adornment underline
// at least as long as the title.
func (p *RST) isSectionTitle(line string, lines *nowiki.LineCursor) bool {
	title := strings.TrimSpace(line)
	if title == "" || isAdornment(line) {
		return false
	}
	next, ok := lines.Peek()
	if !ok {
		return false
	}
	underline := strings.TrimRight(next, " \t")
	return isAdornment(underline) && len(underline) >= len(title)
}

// isAdornment reports whether line is two or more repetitions of a single
// adornment character.
func isAdornment(line string) bool {
	line = strings.TrimRight(line, " \t")
	if len(line) < 2 || !strings.ContainsRune(rstAdornmentChars, rune(line[0])) {
		return false
	}
	for i := 1; i < len(line); i++ {
		if line[i] != line[0] {
			return false
		}
	}
	return true
}

// parseLiteralBlock collects the indented lines following a "::" paragraph
// into a blockcode node, dedented by their common indentation.
func (p *RST) parseLiteralBlock(lines *nowiki.LineCursor) *nowiki.Node {
	for {
		next, ok := lines.Peek()
		if !ok || strings.TrimSpace(next) != "" {
			break
		}
		lines.Next()
	}

	var block []string
	for {
		next, ok := lines.Peek()
		if !ok {
			break
		}
		if strings.TrimSpace(next) == "" {
			// Blank lines stay in the block only if more indented text follows.
			lines.Next()
			cont, ok := lines.Peek()
			if ok && isIndented(cont) {
				block = append(block, "")
				continue
			}
			break
		}
		if !isIndented(next) {
			break
		}
		lines.Next()
		block = append(block, strings.TrimRight(next, " \t"))
	}

	code := nowiki.NewNode(nowiki.TagBlockcode)
	code.Append(nowiki.NewText(strings.Join(dedent(block), "\n")))
	return code
}

func (p *RST) parseList(first string, lines *nowiki.LineCursor) *nowiki.Node {
	m := rstBulletRe.FindStringSubmatch(first)
	list := nowiki.NewNode(nowiki.TagList).Append(listItem(m[2]))

	for {
		next, ok := lines.Peek()
		if !ok {
			break
		}
		nm := rstBulletRe.FindStringSubmatch(strings.TrimRight(next, " \t"))
		if nm == nil {
			break
		}
		lines.Next()
		list.Append(listItem(nm[2]))
	}
	return list
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

func dedent(lines []string) []string {
	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		}
	}
	return out
}
