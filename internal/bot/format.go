package bot

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	codePattern = regexp.MustCompile("`([^`]+)`")
)

// toHTML converts the small markdown subset used by lesson content (bold,
// inline code, "- " bullets) to Telegram HTML
func toHTML(md string) string {
	s := html.EscapeString(strings.TrimSpace(md))
	s = boldPattern.ReplaceAllString(s, "<b>$1</b>")
	s = codePattern.ReplaceAllString(s, "<code>$1</code>")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "- ") {
			lines[i] = "• " + strings.TrimPrefix(l, "- ")
		}
	}
	return strings.Join(lines, "\n")
}

func bold(s string) string {
	return "<b>" + html.EscapeString(s) + "</b>"
}

func link(name, url string) string {
	return `<a href="` + html.EscapeString(url) + `">` + html.EscapeString(name) + "</a>"
}
