package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello   world", want: "hello world"},
		{name: "paragraphs", in: "<p>first</p><p>second</p>", want: "first\nsecond"},
		{name: "inline markup", in: "<p>a <b>bold</b> move</p>", want: "a bold move"},
		{name: "line break", in: "one<br>two", want: "one\ntwo"},
		{name: "script dropped", in: "<p>x</p><script>alert(1)</script><p>y</p>", want: "x\ny"},
		{name: "entities", in: "<p>fish &amp; chips</p>", want: "fish & chips"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTMLToText(tt.in))
		})
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "first", Preview("<p>first</p><p>second</p>", 20))
	assert.Equal(t, "abcdefg...", Preview("<p>abcdefghijklmnop</p>", 10))
	assert.Equal(t, "ab", Preview("abcdef", 2))
	assert.Equal(t, "", Preview("", 10))
}

func TestTextToHTML(t *testing.T) {
	assert.Equal(t, "", TextToHTML(""))
	assert.Equal(t, "<p>one</p><p>two</p>", TextToHTML("one\ntwo"))
	assert.Equal(t, "<p>fish &amp; &lt;chips&gt;</p>", TextToHTML("fish & <chips>"))

	// обратное преобразование возвращает исходный текст
	assert.Equal(t, "first line\nsecond line", HTMLToText(TextToHTML("first line\nsecond line")))
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.Generate()
		assert.Len(t, id, 36)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
