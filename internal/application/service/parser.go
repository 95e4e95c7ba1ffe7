package service

import (
	"context"
	"io"

	"github.com/khoahotran/resume-builder/internal/importer"
)

type ResumeParser interface {
	Parse(ctx context.Context, r io.ReaderAt, size int64) (*importer.ParsedResume, error)
}
