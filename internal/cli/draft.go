package cli

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Draft is one task parsed from a Markdown draft file: YAML frontmatter
// followed by a free-text description, repeated per task.
type Draft struct {
	Title    string `yaml:"title"`
	Due      string `yaml:"due"`
	Priority string `yaml:"priority"`
	Category string `yaml:"category"`

	Description string `yaml:"-"`
}

const draftDelimiter = "---"

// ParseDrafts splits a Markdown document into frontmatter blocks and
// their trailing descriptions. Every draft must carry a title.
func ParseDrafts(content string) ([]Draft, error) {
	lines := strings.Split(content, "\n")

	var drafts []Draft
	i := 0
	for i < len(lines) {
		// Skip leading blank lines between drafts
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}
		if strings.TrimSpace(lines[i]) != draftDelimiter {
			return nil, fmt.Errorf("draft %d: expected %q opening frontmatter, got %q",
				len(drafts)+1, draftDelimiter, lines[i])
		}

		// Collect frontmatter until the closing delimiter
		i++
		var meta []string
		closed := false
		for ; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == draftDelimiter {
				closed = true
				i++
				break
			}
			meta = append(meta, lines[i])
		}
		if !closed {
			return nil, fmt.Errorf("draft %d: missing closing %q", len(drafts)+1, draftDelimiter)
		}

		var draft Draft
		if err := yaml.Unmarshal([]byte(strings.Join(meta, "\n")), &draft); err != nil {
			return nil, fmt.Errorf("draft %d: parse frontmatter: %w", len(drafts)+1, err)
		}
		if strings.TrimSpace(draft.Title) == "" {
			return nil, fmt.Errorf("draft %d: missing title", len(drafts)+1)
		}

		// Description runs until the next frontmatter block
		var desc []string
		for ; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == draftDelimiter {
				break
			}
			desc = append(desc, lines[i])
		}
		draft.Description = strings.TrimSpace(strings.Join(desc, "\n"))
		drafts = append(drafts, draft)
	}
	return drafts, nil
}
