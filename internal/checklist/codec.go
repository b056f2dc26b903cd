package checklist

import "strings"

// Canonical prefixes emitted on every write.
const (
	GlyphUnchecked = "☐ "
	GlyphChecked   = "☑ "
)

// Legacy markdown prefixes, accepted on read only.
const (
	MarkdownUnchecked    = "- [ ] "
	MarkdownChecked      = "- [x] "
	MarkdownCheckedUpper = "- [X] "
)

type prefix struct {
	text    string
	checked bool
}

// recognized lists prefixes in match priority order; first match wins.
var recognized = []prefix{
	{text: MarkdownUnchecked, checked: false},
	{text: MarkdownChecked, checked: true},
	{text: MarkdownCheckedUpper, checked: true},
	{text: GlyphUnchecked, checked: false},
	{text: GlyphChecked, checked: true},
}

// Classify decodes raw text into (kind, checked, body). A line that does
// not start with a recognized prefix is plain and its body is the raw text.
func Classify(raw string) (Kind, bool, string) {
	for _, p := range recognized {
		if strings.HasPrefix(raw, p.text) {
			return KindTask, p.checked, raw[len(p.text):]
		}
	}
	return KindPlain, false, raw
}

// Encode renders a task line with the canonical glyph prefix.
func Encode(checked bool, body string) string {
	if checked {
		return GlyphChecked + body
	}
	return GlyphUnchecked + body
}

// IsCanonical reports whether raw already uses the glyph prefix style.
func IsCanonical(raw string) bool {
	return strings.HasPrefix(raw, GlyphUnchecked) || strings.HasPrefix(raw, GlyphChecked)
}
