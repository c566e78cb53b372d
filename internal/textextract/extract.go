// Package textextract recovers a plain-text layer from raw document bytes.
//
// Packets arrive from the document service as PDF exports, HTML exports, or
// already-plain text. The caller never needs to know which: Extract sniffs the
// format and returns cleaned text either way.
package textextract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Extract converts raw document bytes into plain text.
func Extract(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)

	switch {
	case bytes.HasPrefix(trimmed, []byte("%PDF")):
		return extractPDF(data)
	case looksLikeHTML(trimmed):
		return extractHTML(string(data))
	default:
		return cleanWhitespace(string(data)), nil
	}
}

// looksLikeHTML sniffs for an HTML document prefix.
func looksLikeHTML(data []byte) bool {
	head := strings.ToLower(string(data[:min(len(data), 256)]))
	return strings.Contains(head, "<!doctype html") ||
		strings.Contains(head, "<html") ||
		strings.Contains(head, "<body")
}

// extractHTML parses an HTML export and returns the body text with noise
// elements removed.
func extractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript").Remove()

	return cleanWhitespace(doc.Find("body").Text()), nil
}

// extractPDF extracts the text layer from PDF bytes by pulling the decoded
// page content streams via pdfcpu and decoding their text-showing operators.
func extractPDF(data []byte) (string, error) {
	tmpDir, err := os.MkdirTemp("", "packet-extract-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	if err := api.ExtractContent(bytes.NewReader(data), tmpDir, "packet", nil, nil); err != nil {
		return "", fmt.Errorf("failed to extract PDF content: %w", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		return "", fmt.Errorf("failed to read extracted content: %w", err)
	}

	// Content files are emitted per page; order them by page number so the
	// text reads in document order.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool { return pageNumber(names[i]) < pageNumber(names[j]) })

	var sb strings.Builder
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(tmpDir, name))
		if err != nil {
			return "", fmt.Errorf("failed to read page content %s: %w", name, err)
		}
		sb.WriteString(DecodeContentText(string(content)))
		sb.WriteString("\n")
	}

	return cleanWhitespace(sb.String()), nil
}

var pageNumberRe = regexp.MustCompile(`(\d+)\D*$`)

// pageNumber pulls the trailing page number out of an extracted content file name.
func pageNumber(name string) int {
	m := pageNumberRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

var (
	tjRe      = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)\s*Tj`)
	tjArrayRe = regexp.MustCompile(`\[((?:\\.|[^\]])*)\]\s*TJ`)
	pdfStrRe  = regexp.MustCompile(`\(((?:\\.|[^\\()])*)\)`)
)

// DecodeContentText decodes the text-showing operators (Tj, TJ) of a PDF
// content stream into plain text, one line per operator. Positioning
// operators are ignored; simple form-generated PDFs emit one operator per
// visual line, which is all the downstream rule engine needs.
func DecodeContentText(stream string) string {
	var lines []string

	for _, m := range tjRe.FindAllStringSubmatch(stream, -1) {
		if s := unescapePDFString(m[1]); strings.TrimSpace(s) != "" {
			lines = append(lines, s)
		}
	}

	for _, m := range tjArrayRe.FindAllStringSubmatch(stream, -1) {
		var sb strings.Builder
		for _, sm := range pdfStrRe.FindAllStringSubmatch(m[1], -1) {
			sb.WriteString(unescapePDFString(sm[1]))
		}
		if s := sb.String(); strings.TrimSpace(s) != "" {
			lines = append(lines, s)
		}
	}

	return strings.Join(lines, "\n")
}

// unescapePDFString resolves the escape sequences of a PDF literal string.
func unescapePDFString(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch n := s[i]; n {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '(', ')', '\\':
			sb.WriteByte(n)
		default:
			if n >= '0' && n <= '7' {
				// Octal escape, up to three digits.
				end := i + 1
				for end < len(s) && end < i+3 && s[end] >= '0' && s[end] <= '7' {
					end++
				}
				if v, err := strconv.ParseUint(s[i:end], 8, 16); err == nil {
					sb.WriteByte(byte(v))
				}
				i = end - 1
			} else {
				sb.WriteByte(n)
			}
		}
	}
	return sb.String()
}

// cleanWhitespace trims each line and collapses runs of blank lines into one.
// Single blank lines are kept: they delimit sections and the rule engine's
// block passes depend on them.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank = len(cleaned) > 0
			continue
		}
		if blank {
			cleaned = append(cleaned, "")
			blank = false
		}
		cleaned = append(cleaned, line)
	}
	return strings.Join(cleaned, "\n")
}
