package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadingAndParagraph(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("# Title\n\nSome *italic* and **bold** text.")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "Title") {
		t.Fatalf("expected heading text in output, got %q", out)
	}
	if !strings.Contains(out, "italic") || !strings.Contains(out, "bold") {
		t.Fatalf("expected emphasis text preserved, got %q", out)
	}
}

func TestRenderList(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("- one\n- two\n- three\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for _, want := range []string{"one", "two", "three"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in list output, got %q", want, out)
		}
	}
}

func TestRenderOrderedList(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("1. first\n2. second\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "1.") {
		t.Fatalf("expected ordered marker in output, got %q", out)
	}
}

func TestRenderCodeBlock(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("```go\nfunc main() {}\n```\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "func main") {
		t.Fatalf("expected code text preserved, got %q", out)
	}
}

func TestRenderBlockquote(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("> quoted text\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !strings.Contains(out, "quoted text") {
		t.Fatalf("expected quoted text preserved, got %q", out)
	}
}

func TestRenderTable(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	for _, want := range []string{"a", "b", "1", "2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table output, got %q", want, out)
		}
	}
}

func TestFrontmatterSplit(t *testing.T) {
	src := "---\ntitle: Hello\n---\nBody text.\n"
	var meta struct {
		Title string `yaml:"title"`
	}
	body, err := Frontmatter(src, &meta)
	if err != nil {
		t.Fatalf("Frontmatter returned error: %v", err)
	}
	if meta.Title != "Hello" {
		t.Fatalf("meta.Title = %q, want %q", meta.Title, "Hello")
	}
	if strings.Contains(body, "title:") {
		t.Fatalf("body should not contain frontmatter, got %q", body)
	}
	if !strings.Contains(body, "Body text.") {
		t.Fatalf("body should contain the rest of the document, got %q", body)
	}
}

func TestRenderRawHTMLIsSanitized(t *testing.T) {
	r := NewRenderer(DarkTheme(), 0)
	out, err := r.Render("<script>alert(1)</script>\n<div>safe text</div>\n")
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(out, "<script>") || strings.Contains(out, "<div>") {
		t.Fatalf("expected raw tags stripped, got %q", out)
	}
}

func TestFrontmatterAbsent(t *testing.T) {
	src := "# No frontmatter here\n"
	body, err := Frontmatter(src, nil)
	if err != nil {
		t.Fatalf("Frontmatter returned error: %v", err)
	}
	if body != src {
		t.Fatalf("body with no frontmatter should be unchanged, got %q", body)
	}
}
