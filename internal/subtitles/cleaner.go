package subtitles

import (
	"regexp"
	"strings"

	"bisub/internal/textutil"
)

// asidePatterns match non-nested parenthetical asides, ASCII first and then
// full-width.
var asidePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\([^)]*\)`),
	regexp.MustCompile(`（[^）]*）`),
}

// StripAsides removes parenthetical asides such as stage directions from
// every line of text. Whitespace left behind is collapsed, and lines that end
// up empty are dropped.
func StripAsides(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		for _, pattern := range asidePatterns {
			line = pattern.ReplaceAllString(line, "")
		}
		if line = textutil.CollapseSpaces(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
