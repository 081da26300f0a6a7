// Package markdown renders markdown source to ANSI terminal output: a
// small, from-scratch equivalent of glamour built on goldmark's parser
// and the style package's palette, rather than a generic HTML renderer.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	emoji "github.com/yuin/goldmark-emoji"
	emojiast "github.com/yuin/goldmark-emoji/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/breezetui/breeze/style"
)

// htmlSanitizer strips every tag from embedded raw HTML, leaving only
// the text a terminal can safely display.
var htmlSanitizer = bluemonday.StrictPolicy()

// Theme controls the palette and chrome a Renderer draws with.
type Theme struct {
	Palette       style.Palette
	ChromaTheme   string // passed to chroma/quick.Highlight, e.g. "dracula"
	BulletChar    string
	QuoteBar      string
	HeadingPrefix string
}

// DarkTheme is the built-in default, tuned for a dark terminal background.
func DarkTheme() Theme {
	return Theme{
		Palette:       style.DefaultPalette(),
		ChromaTheme:   "dracula",
		BulletChar:    "•",
		QuoteBar:      "│",
		HeadingPrefix: "# ",
	}
}

// Renderer converts markdown source into an ANSI string wrapped to a
// fixed width.
type Renderer struct {
	md    goldmark.Markdown
	theme Theme
	width int
}

// NewRenderer builds a Renderer with the given theme and a body word-wrap
// width. width<=0 disables wrapping.
func NewRenderer(theme Theme, width int) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, emoji.Emoji),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{md: md, theme: theme, width: width}
}

// Render parses src as markdown and returns styled ANSI output.
func (r *Renderer) Render(src string) (string, error) {
	doc := r.md.Parser().Parse(text.NewReader([]byte(src)))
	rnd := &walker{src: []byte(src), theme: r.theme, width: r.width}
	rnd.block(doc)
	out := rnd.buf.String()
	if r.width > 0 {
		out = style.Wrap(out, r.width)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// Frontmatter splits a leading "---\n...\n---\n" YAML block off src,
// unmarshalling it into v (if non-nil) and returning the remaining body.
func Frontmatter(src string, v any) (body string, err error) {
	if !strings.HasPrefix(src, "---\n") {
		return src, nil
	}
	rest := src[4:]
	end := strings.Index(rest, "\n---\n")
	if end == -1 {
		return src, nil
	}
	raw, body := rest[:end], rest[end+5:]
	if v != nil {
		if err := yaml.Unmarshal([]byte(raw), v); err != nil {
			return body, fmt.Errorf("markdown: parsing frontmatter: %w", err)
		}
	}
	return body, nil
}

// walker does a single depth-first pass over the goldmark AST, writing
// styled text to buf as it goes. It does not implement the full
// CommonMark node set, only the subset a terminal can usefully render.
type walker struct {
	src    []byte
	theme  Theme
	width  int
	buf    strings.Builder
	indent int
	listN  []int // non-zero entries mark an ordered list level's next number
}

func (w *walker) block(n ast.Node) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		w.node(c)
	}
}

func (w *walker) node(n ast.Node) {
	switch tn := n.(type) {
	case *ast.Heading:
		w.heading(tn)
	case *ast.Paragraph:
		w.prefix()
		w.inline(n)
		w.buf.WriteString("\n\n")
	case *ast.CodeBlock, *ast.FencedCodeBlock:
		w.codeBlock(n)
	case *ast.Blockquote:
		w.blockquote(tn)
	case *ast.List:
		w.list(tn)
	case *ast.ListItem:
		w.listItem(tn)
	case *ast.ThematicBreak:
		w.prefix()
		w.buf.WriteString(strings.Repeat("─", max(1, w.width-w.indent)))
		w.buf.WriteString("\n\n")
	case *extast.Table:
		w.table(tn)
	case *ast.HTMLBlock:
		w.htmlBlock(tn)
	default:
		w.block(n)
	}
}

// htmlBlock strips tags from a raw HTML passthrough node with bluemonday
// before printing whatever text content survives: markdown documents are
// frequently copied from web sources with embedded HTML, and none of it
// is safe to forward to a terminal verbatim.
func (w *walker) htmlBlock(n *ast.HTMLBlock) {
	var raw strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		raw.Write(lines.At(i).Value(w.src))
	}
	text := strings.TrimSpace(htmlSanitizer.Sanitize(raw.String()))
	if text == "" {
		return
	}
	w.prefix()
	w.buf.WriteString(text)
	w.buf.WriteString("\n\n")
}

func (w *walker) prefix() {
	if w.indent > 0 {
		w.buf.WriteString(strings.Repeat(" ", w.indent))
	}
}

func (w *walker) heading(h *ast.Heading) {
	st := w.theme.Palette.Title
	text := w.inlineText(h)
	prefix := strings.Repeat("#", h.Level) + " "
	w.buf.WriteString(st.Render(prefix + text))
	w.buf.WriteString("\n\n")
}

func (w *walker) codeBlock(n ast.Node) {
	var src strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		src.Write(seg.Value(w.src))
	}

	lang := ""
	if fc, ok := n.(*ast.FencedCodeBlock); ok {
		lang = string(fc.Language(w.src))
	}

	var out bytes.Buffer
	if err := quick.Highlight(&out, src.String(), lang, "terminal16m", w.theme.ChromaTheme); err != nil {
		out.WriteString(src.String())
	}

	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		w.buf.WriteString("  ")
		w.buf.WriteString(line)
		w.buf.WriteString("\n")
	}
	w.buf.WriteString("\n")
}

func (w *walker) blockquote(n *ast.Blockquote) {
	var inner walker
	inner.src, inner.theme, inner.width = w.src, w.theme, w.width
	inner.block(n)
	bar := w.theme.Palette.Subtle.Render(w.theme.QuoteBar)
	for _, line := range strings.Split(strings.TrimRight(inner.buf.String(), "\n"), "\n") {
		w.buf.WriteString(bar + " " + line + "\n")
	}
	w.buf.WriteString("\n")
}

func (w *walker) list(n *ast.List) {
	w.listN = append(w.listN, 0)
	if n.IsOrdered() {
		w.listN[len(w.listN)-1] = n.Start
	}
	w.block(n)
	w.listN = w.listN[:len(w.listN)-1]
	if len(w.listN) == 0 {
		w.buf.WriteString("\n")
	}
}

func (w *walker) listItem(n *ast.ListItem) {
	level := len(w.listN)
	marker := w.theme.BulletChar
	if level > 0 && w.listN[level-1] != 0 {
		marker = fmt.Sprintf("%d.", w.listN[level-1])
		w.listN[level-1]++
	}
	w.indent += 2 * (level - 1)
	w.prefix()
	w.buf.WriteString(marker + " ")
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if p, ok := c.(*ast.Paragraph); ok {
			w.inline(p)
			w.buf.WriteString("\n")
			continue
		}
		w.node(c)
	}
	w.indent -= 2 * (level - 1)
}

func (w *walker) table(t *extast.Table) {
	var rows [][]string
	for c := t.FirstChild(); c != nil; c = c.NextSibling() {
		row, ok := c.(*extast.TableRow)
		if !ok {
			if hdr, ok := c.(*extast.TableHeader); ok {
				rows = append(rows, w.tableRow(hdr))
			}
			continue
		}
		rows = append(rows, w.tableRow(row))
	}
	for i, row := range rows {
		w.buf.WriteString(strings.Join(row, "  │  "))
		w.buf.WriteString("\n")
		if i == 0 {
			dashes := make([]string, len(row))
			for j, cell := range row {
				dashes[j] = strings.Repeat("─", lipgloss.Width(cell))
			}
			w.buf.WriteString(strings.Join(dashes, "──┼──"))
			w.buf.WriteString("\n")
		}
	}
	w.buf.WriteString("\n")
}

func (w *walker) tableRow(n ast.Node) []string {
	var cells []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cells = append(cells, w.inlineText(c))
	}
	return cells
}

func (w *walker) inline(n ast.Node) {
	w.buf.WriteString(w.inlineText(n))
}

// inlineText renders the inline children of n (emphasis, links, code
// spans, plain text) to a styled string.
func (w *walker) inlineText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch tn := c.(type) {
		case *ast.Text:
			b.Write(tn.Segment.Value(w.src))
			if tn.SoftLineBreak() {
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(tn.Value)
		case *ast.Emphasis:
			inner := w.inlineText(tn)
			if tn.Level >= 2 {
				b.WriteString(w.theme.Palette.Bold.Render(inner))
			} else {
				b.WriteString(w.theme.Palette.Italic.Render(inner))
			}
		case *ast.CodeSpan:
			b.WriteString(w.theme.Palette.Warning.Render(w.rawText(tn)))
		case *ast.Link:
			inner := w.inlineText(tn)
			b.WriteString(w.theme.Palette.Underline.Render(inner))
			b.WriteString(" (" + string(tn.Destination) + ")")
		case *ast.AutoLink:
			b.WriteString(w.theme.Palette.Underline.Render(string(tn.URL(w.src))))
		case *emojiast.Emoji:
			b.WriteString(tn.Value.Unicode)
		default:
			b.WriteString(w.inlineText(c))
		}
	}
	return b.String()
}

// rawText concatenates the literal text of n's children, ignoring any
// inline styling they'd otherwise carry — used for code spans, where
// markup characters inside the span are literal, not markdown.
func (w *walker) rawText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			b.Write(t.Segment.Value(w.src))
		}
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
