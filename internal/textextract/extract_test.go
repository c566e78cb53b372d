package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_PlainText(t *testing.T) {
	text, err := Extract([]byte("Name: John Smith\nPhone: 555-123-4567"))

	require.NoError(t, err)
	assert.Equal(t, "Name: John Smith\nPhone: 555-123-4567", text)
}

func TestExtract_HTML(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head><title>Export</title><style>body { color: red; }</style></head>
<body>
<nav>Menu items</nav>
<p>Name: John Smith</p>
<p>Phone: 555-123-4567</p>
<footer>Generated by export tool</footer>
<script>console.log("noise")</script>
</body>
</html>`

	text, err := Extract([]byte(html))

	require.NoError(t, err)
	assert.Contains(t, text, "Name: John Smith")
	assert.Contains(t, text, "Phone: 555-123-4567")
	assert.NotContains(t, text, "Menu items")
	assert.NotContains(t, text, "Generated by export tool")
	assert.NotContains(t, text, "console.log")
	assert.NotContains(t, text, "color: red")
}

func TestExtract_HTMLSniffIgnoresLeadingWhitespace(t *testing.T) {
	text, err := Extract([]byte("\n\n  <html><body>Name: Jane Doe</body></html>"))

	require.NoError(t, err)
	assert.Contains(t, text, "Name: Jane Doe")
}

func TestDecodeContentText(t *testing.T) {
	tests := []struct {
		name     string
		stream   string
		expected string
	}{
		{
			name:     "simple Tj operators",
			stream:   "BT /F1 12 Tf (Name: John Smith) Tj ET\nBT (Phone: 555-1234) Tj ET",
			expected: "Name: John Smith\nPhone: 555-1234",
		},
		{
			name:     "TJ array with kerning",
			stream:   "[(Na) -20 (me: ) 10 (John)] TJ",
			expected: "Name: John",
		},
		{
			name:     "escaped parentheses",
			stream:   `(Phone \(mobile\): 555-1234) Tj`,
			expected: "Phone (mobile): 555-1234",
		},
		{
			name:     "octal escapes",
			stream:   `(caf\351) Tj`,
			expected: "caf\351",
		},
		{
			name:     "whitespace-only strings dropped",
			stream:   "(   ) Tj\n(real content) Tj",
			expected: "real content",
		},
		{
			name:     "no text operators",
			stream:   "0 0 612 792 re f",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DecodeContentText(tt.stream))
		})
	}
}

func TestUnescapePDFString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"newline escape", `line1\nline2`, "line1\nline2"},
		{"tab escape", `a\tb`, "a\tb"},
		{"escaped backslash", `a\\b`, `a\b`},
		{"two-digit octal", `\51`, ")"},
		{"three-digit octal", `\051`, ")"},
		{"unknown escape passes through", `a\qb`, "aqb"},
		{"trailing backslash kept", `end\`, `end\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, unescapePDFString(tt.input))
		})
	}
}

func TestCleanWhitespace(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims line edges", "  a  \n  b  ", "a\nb"},
		{"keeps single blank line", "a\n\nb", "a\n\nb"},
		{"collapses blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"drops leading blanks", "\n\n\na", "a"},
		{"drops trailing blanks", "a\n\n\n", "a"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanWhitespace(tt.input))
		})
	}
}

func TestPageNumber(t *testing.T) {
	assert.Equal(t, 1, pageNumber("packet_Content_page_1.txt"))
	assert.Equal(t, 12, pageNumber("packet_Content_page_12.txt"))
	assert.Equal(t, 0, pageNumber("no-digits"))
	assert.Less(t, pageNumber("packet_2.txt"), pageNumber("packet_10.txt"),
		"numeric ordering, not lexicographic")
}
