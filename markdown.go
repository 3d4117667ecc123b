package sngmcp

import (
	"regexp"
	"strings"
)

// MarkdownDoc is the structure extracted from one documentation page.
type MarkdownDoc struct {
	Title    string
	Summary  string
	Sections []Section
}

var (
	titleRe   = regexp.MustCompile(`^#[ \t]+(.+)$`)
	sectionRe = regexp.MustCompile(`^##[ \t]+(.+)$`)
	headingRe = regexp.MustCompile(`^(#{1,6})[ \t]+`)
)

// ExtractMarkdown parses a documentation page into its title, summary and
// second-level sections. Missing structure yields empty fields.
func ExtractMarkdown(markdown string) MarkdownDoc {
	lines := splitLines(markdown)
	fenced := fencedLines(lines)
	title, at := extractTitle(lines, fenced)

	return MarkdownDoc{
		Title:    title,
		Summary:  extractSummary(lines, at+1),
		Sections: extractSections(lines, fenced),
	}
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}

// fencedLines marks lines that are inside (or delimit) a fenced code block.
// Hash characters on such lines are comments, not headings.
func fencedLines(lines []string) []bool {
	fenced := make([]bool, len(lines))
	var marker string
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker == "" {
			if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
				marker = trimmed[:3]
				fenced[i] = true
			}
			continue
		}
		fenced[i] = true
		if strings.HasPrefix(trimmed, marker) {
			marker = ""
		}
	}
	return fenced
}

// extractTitle returns the first level-one heading outside code fences and
// its line index, or -1 when there is none.
func extractTitle(lines []string, fenced []bool) (string, int) {
	for i, line := range lines {
		if fenced[i] {
			continue
		}
		if m := titleRe.FindStringSubmatch(strings.TrimRight(line, " \t")); m != nil {
			return strings.TrimSpace(m[1]), i
		}
	}
	return "", -1
}

// extractSummary returns the first paragraph from line start on, skipping
// any blank or heading lines that precede it.
func extractSummary(lines []string, start int) string {
	var collected []string
	for _, raw := range lines[start:] {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			if len(collected) > 0 {
				break
			}
			continue
		}
		collected = append(collected, line)
	}
	return strings.TrimSpace(strings.Join(collected, " "))
}

func extractSections(lines []string, fenced []bool) []Section {
	sections := []Section{}

	var heading string
	var body []string
	open := false

	flush := func() {
		if !open {
			return
		}
		s := Section{
			Heading: heading,
			Body:    strings.TrimSpace(strings.Join(body, "\n")),
		}
		if s.Body != "" {
			sections = append(sections, s)
		}
		open = false
	}

	for i, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		if !fenced[i] {
			if m := sectionRe.FindStringSubmatch(line); m != nil {
				flush()
				heading = strings.TrimSpace(m[1])
				body = nil
				open = true
				continue
			}
			// A level-one heading closes the current section.
			if m := headingRe.FindStringSubmatch(line); m != nil && len(m[1]) == 1 {
				flush()
				continue
			}
		}
		if open {
			body = append(body, raw)
		}
	}
	flush()

	return sections
}
