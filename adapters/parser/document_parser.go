package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/importer"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var (
	pdfMagic  = []byte("%PDF")
	docxMagic = []byte("PK\x03\x04")

	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

type DocumentParser struct {
	logger logger.Logger
}

func NewDocumentParser(log logger.Logger) service.ResumeParser {
	return &DocumentParser{logger: log}
}

// Parse sniffs the upload and extracts text from a PDF, a DOCX or a plain text
// file before handing it to ParseText.
func (p *DocumentParser) Parse(ctx context.Context, r io.ReaderAt, size int64) (*importer.ParsedResume, error) {
	if size <= 0 {
		return nil, apperror.NewInvalidInput("uploaded file is empty", nil)
	}

	head := make([]byte, 4)
	if _, err := r.ReadAt(head, 0); err != nil && err != io.EOF {
		return nil, apperror.NewInvalidInput("cannot read uploaded file", err)
	}

	var (
		text string
		err  error
	)
	switch {
	case bytes.HasPrefix(head, pdfMagic):
		text, err = extractPDF(r, size)
	case bytes.HasPrefix(head, docxMagic):
		text, err = extractDocx(r, size)
	default:
		text, err = extractPlain(r, size)
	}
	if err != nil {
		return nil, apperror.NewInvalidInput("cannot extract text from uploaded file", err)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	parsed := ParseText(text)
	p.logger.Debug("Parsed resume upload",
		zap.Int64("size", size),
		zap.Int("experience", len(parsed.Experience)),
		zap.Int("education", len(parsed.Education)),
		zap.Int("skills", len(parsed.Skills)),
	)
	return &parsed, nil
}

func extractPDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if rows, err := page.GetTextByRow(); err == nil && len(rows) > 0 {
			writeRows(&b, rows)
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// writeRows keeps the visual line structure; headings and date ranges depend on it.
func writeRows(b *strings.Builder, rows pdf.Rows) {
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })
	for _, row := range rows {
		words := row.Content
		sort.SliceStable(words, func(i, j int) bool { return words[i].X < words[j].X })
		var end float64
		for i, w := range words {
			// A visible gap between glyph runs is a word break.
			if i > 0 && w.X-end > w.FontSize*0.2 && !strings.HasSuffix(w.S, " ") {
				b.WriteString(" ")
			}
			b.WriteString(w.S)
			end = w.X + w.W
		}
		b.WriteString("\n")
	}
}

func extractDocx(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := paragraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = xmlTag.ReplaceAllString(content, "")
	return htmlUnescaper.Replace(content), nil
}

var htmlUnescaper = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func extractPlain(r io.ReaderAt, size int64) (string, error) {
	buf := make([]byte, size)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return "", err
	}
	if !utf8.Valid(buf[:n]) {
		return "", fmt.Errorf("unsupported file type")
	}
	return string(buf[:n]), nil
}
