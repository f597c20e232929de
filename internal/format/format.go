package format

import (
	"html"
	"regexp"
)

// AI replies arrive as a markdown subset; Telegram wants a small HTML
// dialect. Escape first, then rewrite markers outside-in: fenced code,
// inline code, bold, italics. Footnote-style references are dropped.
var (
	reRef    = regexp.MustCompile(`\[\^(\d+)\^\]`)
	reFenced = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\n?(.*?)```")
	reCode   = regexp.MustCompile("`([^`\n]+)`")
	reBold   = regexp.MustCompile(`\*\*([^*]+?)\*\*|__([^_]+?)__`)
	reItalic = regexp.MustCompile(`\*([^*]+?)\*|_([^_]+?)_`)
)

// TelegramHTML renders an AI reply as Telegram-safe HTML.
func TelegramHTML(text string) string {
	out := html.EscapeString(text)
	out = reRef.ReplaceAllString(out, "")
	out = reFenced.ReplaceAllString(out, "<pre>$1</pre>")
	out = reCode.ReplaceAllString(out, "<code>$1</code>")
	out = reBold.ReplaceAllString(out, "<b>$1$2</b>")
	out = reItalic.ReplaceAllString(out, "<i>$1$2</i>")
	return out
}

// PlainText strips the same markers without adding markup; used for
// speech synthesis input.
func PlainText(text string) string {
	out := reRef.ReplaceAllString(text, "")
	out = reFenced.ReplaceAllString(out, "$1")
	out = reCode.ReplaceAllString(out, "$1")
	out = reBold.ReplaceAllString(out, "$1$2")
	out = reItalic.ReplaceAllString(out, "$1$2")
	return out
}
