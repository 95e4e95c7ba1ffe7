package service

import (
	"context"

	"github.com/khoahotran/resume-builder/internal/document"
)

type HTMLRenderer interface {
	Render(doc document.Document) (string, error)
}

type PDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}
