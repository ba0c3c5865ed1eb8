package telegram

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

var headingRe = regexp.MustCompile(`<h[1-6]>(.*?)</h[1-6]>`)

// ToTelegramHTML renders Markdown into the HTML subset Telegram accepts.
// Inline tags blackfriday emits (strong, em, code, pre, a) pass through;
// block structure is flattened to newlines and bullets since Telegram has
// no block elements.
func ToTelegramHTML(text string) string {
	html := string(blackfriday.MarkdownCommon([]byte(text)))

	html = headingRe.ReplaceAllString(html, "<b>$1</b>")

	replacer := strings.NewReplacer(
		"<p>", "", "</p>", "\n",
		"<ul>", "", "</ul>", "",
		"<ol>", "", "</ol>", "",
		"<li>", "• ", "</li>", "\n",
		"<br>", "\n", "<br/>", "\n", "<br />", "\n",
		"<hr>", "", "<hr/>", "", "<hr />", "",
		"<blockquote>", "", "</blockquote>", "",
	)
	html = replacer.Replace(html)

	return strings.TrimSpace(html)
}
