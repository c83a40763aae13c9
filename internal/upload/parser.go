// Package upload implements the authoring-side tooling: parsing markdown
// files with YAML front matter and pushing them to the content API.
package upload

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/emrekoca/penmark/internal/core/domain"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// FrontMatter is the metadata block at the top of an article file.
type FrontMatter struct {
	Title    string `yaml:"title"`
	Slug     string `yaml:"slug"`
	Excerpt  string `yaml:"excerpt"`
	Date     string `yaml:"date"`
	Language string `yaml:"language"`
	Status   string `yaml:"status"`
}

// Document is a parsed and validated article file.
type Document struct {
	Meta    FrontMatter
	Content string
}

// ParseFile reads and parses one markdown article file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse splits the front matter from the body, validates the metadata and
// checks that the body renders as markdown. A missing excerpt is derived
// from the first paragraph of the body.
func Parse(data []byte) (*Document, error) {
	meta, body, err := splitFrontMatter(string(data))
	if err != nil {
		return nil, err
	}

	var fm FrontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("article body is empty")
	}

	// Render to catch malformed markdown before anything is uploaded.
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("markdown syntax error: %w", err)
	}

	if fm.Excerpt == "" {
		fm.Excerpt = deriveExcerpt(body)
	}
	if fm.Status == "" {
		fm.Status = string(domain.StatusDraft)
	}

	doc := &Document{Meta: fm, Content: body}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *Document) validate() error {
	if d.Meta.Title == "" {
		return fmt.Errorf("front matter: title is required")
	}
	if err := domain.ValidateSlug(d.Meta.Slug); err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	if err := domain.ValidateDate(d.Meta.Date); err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	if err := domain.ValidateLanguage(domain.Language(d.Meta.Language)); err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	if err := domain.ValidateStatus(domain.ArticleStatus(d.Meta.Status)); err != nil {
		return fmt.Errorf("front matter: %w", err)
	}
	return nil
}

func splitFrontMatter(content string) (meta, body string, err error) {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.SplitAfter(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return "", "", fmt.Errorf("missing front matter: file must start with %q", frontMatterDelimiter)
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelimiter {
			return strings.Join(lines[1:i], ""), strings.Join(lines[i+1:], ""), nil
		}
	}
	return "", "", fmt.Errorf("unterminated front matter: missing closing %q", frontMatterDelimiter)
}

// deriveExcerpt takes the first non-heading paragraph, capped at 200 runes.
func deriveExcerpt(body string) string {
	for _, para := range strings.Split(body, "\n\n") {
		line := strings.TrimSpace(para)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ReplaceAll(line, "\n", " ")
		runes := []rune(line)
		if len(runes) > 200 {
			return string(runes[:200])
		}
		return line
	}
	return ""
}
