package utils

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true,
}

// HTMLToText converts note content (HTML produced by the rich-text editor)
// into plain text. Block elements become line breaks; script and style
// bodies are dropped. Input that is not HTML is returned with whitespace
// normalised.
func HTMLToText(content string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return normalizeLines(b.String())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				skip++
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
			}
			if blockElements[tag] {
				b.WriteByte('\n')
			}
		}
	}
}

// Preview returns the first non-empty line of the text form of content,
// cut to max runes.
func Preview(content string, max int) string {
	text := HTMLToText(content)
	line, _, _ := strings.Cut(text, "\n")

	runes := []rune(line)
	if max > 0 && len(runes) > max {
		if max <= 3 {
			return string(runes[:max])
		}
		return string(runes[:max-3]) + "..."
	}
	return line
}

// TextToHTML renders plain text typed in the terminal editor as note
// content: every line becomes a paragraph, empty lines become empty
// paragraphs.
func TextToHTML(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("<p>")
		b.WriteString(stdhtml.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}

func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
