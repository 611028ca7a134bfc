package extract

import (
	"strings"
)

// Comment is the structured form of one raw JSDoc block comment.
type Comment struct {
	Description string
	Guide       string
	Examples    []string
	Deprecated  bool
	Category    string
	Tags        map[string]string
	Internal    bool
}

// ParseComment parses a raw `/** ... */` block comment into its
// structured fields. Text before the first tag is the description;
// recognized tags are @guide, @example, @deprecated, @category and
// @internal, anything else lands in Tags. Returns nil for empty input.
func ParseComment(raw string) *Comment {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	lines := normalizeCommentLines(raw)

	c := &Comment{Tags: map[string]string{}}
	var (
		tag  string
		body []string
	)

	flush := func() {
		text := strings.TrimSpace(strings.Join(body, "\n"))
		switch tag {
		case "":
			c.Description = text
		case "guide":
			c.Guide = text
		case "example":
			c.Examples = append(c.Examples, text)
		case "deprecated":
			c.Deprecated = true
		case "category", "group":
			c.Category = text
		case "internal":
			c.Internal = true
		default:
			c.Tags[tag] = text
		}
		body = body[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") && !strings.HasPrefix(trimmed, "@{") {
			flush()
			name, rest, _ := strings.Cut(trimmed[1:], " ")
			tag = strings.ToLower(strings.TrimSpace(name))
			body = body[:0]
			if rest = strings.TrimSpace(rest); rest != "" {
				body = append(body, rest)
			}
			continue
		}
		body = append(body, line)
	}
	flush()

	if len(c.Tags) == 0 {
		c.Tags = nil
	}
	return c
}

// normalizeCommentLines strips the comment delimiters and the leading
// `*` gutter from every line.
func normalizeCommentLines(raw string) []string {
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimPrefix(raw, "/*")
	raw = strings.TrimSuffix(raw, "*/")

	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		if strings.HasPrefix(line, " ") {
			line = line[1:]
		}
		out = append(out, line)
	}
	return out
}
