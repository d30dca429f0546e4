package internal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NodeKind identifies a block-level render node
type NodeKind int

const (
	NodeParagraph NodeKind = iota
	NodeHeading
	NodeList
)

// SpanKind identifies an inline style
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

// Span is one inline run of text with a single style
type Span struct {
	Kind SpanKind
	Text string
}

// Node is one block in a formatted message. Headings and paragraphs
// carry Spans; lists carry one span slice per item.
type Node struct {
	Kind  NodeKind
	Level int // heading level, count of leading '#'
	Spans []Span
	Items [][]Span
}

// FormatMessage parses the markdown-lite syntax bot answers use
// (headings, bullet/numbered lists, **bold**, *italic*, `code`) into a
// render tree. It is total: any input yields a tree, every input
// character survives as literal or captured text, and unmatched
// delimiters stay literal.
func FormatMessage(text string) []Node {
	var nodes []Node
	lines := strings.Split(text, "\n")

	for i := 0; i < len(lines); {
		line := lines[i]

		if level, rest, ok := headingLine(line); ok {
			nodes = append(nodes, Node{
				Kind:  NodeHeading,
				Level: level,
				Spans: formatInline(rest),
			})
			i++
			continue
		}

		if _, ok := listItemText(line); ok {
			var items [][]Span
			for i < len(lines) {
				item, ok := listItemText(lines[i])
				if !ok {
					break
				}
				items = append(items, formatInline(item))
				i++
			}
			nodes = append(nodes, Node{Kind: NodeList, Items: items})
			continue
		}

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			nodes = append(nodes, Node{Kind: NodeParagraph, Spans: formatInline(trimmed)})
		}
		i++
	}

	return nodes
}

// headingLine matches a run of '#' followed by whitespace
func headingLine(line string) (level int, rest string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) {
		return 0, "", false
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, "", false
	}
	return n, strings.TrimSpace(line[n:]), true
}

// listItemText matches bullet ('-', '•', '*') or numbered ("1.") items
// and returns the item text with the marker stripped
func listItemText(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", false
	}

	for _, bullet := range []string{"- ", "• ", "* "} {
		if strings.HasPrefix(trimmed, bullet) {
			return strings.TrimSpace(trimmed[len(bullet):]), true
		}
	}

	n := 0
	for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
		n++
	}
	if n > 0 && n+1 < len(trimmed) && trimmed[n] == '.' && (trimmed[n+1] == ' ' || trimmed[n+1] == '\t') {
		return strings.TrimSpace(trimmed[n+1:]), true
	}

	return "", false
}

// formatInline scans left to right trying **bold**, then *italic*, then
// `code` at every position. Delimiters without a non-empty match are
// emitted as literal text.
func formatInline(text string) []Span {
	var spans []Span
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if kind, content, width := matchInlineAt(text, i); width > 0 {
			flush()
			spans = append(spans, Span{Kind: kind, Text: content})
			i += width
			continue
		}
		literal.WriteByte(text[i])
		i++
	}
	flush()

	return spans
}

// matchInlineAt tries each delimiter in priority order at position i,
// returning the consumed width (0 when nothing matches)
func matchInlineAt(text string, i int) (SpanKind, string, int) {
	rest := text[i:]

	if strings.HasPrefix(rest, "**") {
		if end := strings.Index(rest[2:], "**"); end > 0 {
			return SpanBold, rest[2 : 2+end], end + 4
		}
	}
	if rest[0] == '*' {
		if end := strings.Index(rest[1:], "*"); end > 0 {
			return SpanItalic, rest[1 : 1+end], end + 2
		}
	}
	if rest[0] == '`' {
		if end := strings.Index(rest[1:], "`"); end > 0 {
			return SpanCode, rest[1 : 1+end], end + 2
		}
	}

	return SpanText, "", 0
}

var (
	msgHeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	msgBoldStyle = lipgloss.NewStyle().Bold(true)

	msgItalicStyle = lipgloss.NewStyle().Italic(true)

	msgCodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	msgBulletStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
)

// RenderNodes renders a formatted message tree for the terminal
func RenderNodes(nodes []Node) string {
	var b strings.Builder
	for i, node := range nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		switch node.Kind {
		case NodeHeading:
			b.WriteString(msgHeadingStyle.Render(renderSpans(node.Spans)))
		case NodeList:
			for j, item := range node.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				b.WriteString(msgBulletStyle.Render("  • "))
				b.WriteString(renderSpans(item))
			}
		default:
			b.WriteString(renderSpans(node.Spans))
		}
	}
	return b.String()
}

func renderSpans(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case SpanBold:
			b.WriteString(msgBoldStyle.Render(span.Text))
		case SpanItalic:
			b.WriteString(msgItalicStyle.Render(span.Text))
		case SpanCode:
			b.WriteString(msgCodeStyle.Render(span.Text))
		default:
			b.WriteString(span.Text)
		}
	}
	return b.String()
}

// PlainText flattens a render tree back to unstyled text, one block per
// line and list items bulleted with "- "
func PlainText(nodes []Node) string {
	var b strings.Builder
	for i, node := range nodes {
		if i > 0 {
			b.WriteString("\n")
		}
		switch node.Kind {
		case NodeList:
			for j, item := range node.Items {
				if j > 0 {
					b.WriteString("\n")
				}
				b.WriteString("- ")
				b.WriteString(spansText(item))
			}
		default:
			b.WriteString(spansText(node.Spans))
		}
	}
	return b.String()
}

func spansText(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		b.WriteString(span.Text)
	}
	return b.String()
}
