package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var tracer = otel.Tracer("export_usecase")

// ArtifactKey is where the archive keeps an exported PDF.
func ArtifactKey(ownerID, resumeID uuid.UUID, template string) string {
	return fmt.Sprintf("users/%s/exports/%s-%s.pdf", ownerID, resumeID, template)
}

// Request picks the resume and, optionally, overrides the template and theme.
type Request struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
	Template string
	Theme    *resume.Theme
}

type composed struct {
	resume   *resume.Resume
	template compose.Template
	doc      document.Document
}

// composer resolves what to render. Template precedence: the request, then the
// user's session selection, then the template stored on the resume. A requested
// theme is layered over whichever theme came with the chosen template.
type composer struct {
	resumeRepo resume.Repository
	selections selection.Repository
	logger     logger.Logger
}

func (c composer) compose(ctx context.Context, req Request) (*composed, error) {
	r, err := c.resumeRepo.FindByID(ctx, req.ResumeID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	name, theme := r.Template, r.Theme
	switch {
	case req.Template != "":
		name = req.Template
	case c.selections != nil:
		sel, err := c.selections.Get(ctx, req.OwnerID)
		if err != nil {
			c.logger.Warn("Failed to read template selection, using stored template",
				zap.String("owner_id", req.OwnerID.String()), zap.Error(err))
		} else if sel != nil {
			name, theme = sel.Template, sel.Theme
		}
	}

	tpl, err := compose.ParseTemplate(name)
	if err != nil {
		if req.Template != "" {
			return nil, apperror.NewValidation(map[string]string{"template": "must be one of classic, modern, minimalist, executive, creative"})
		}
		tpl = compose.Classic{}
	}
	if req.Theme != nil {
		theme = req.Theme.Merge(theme)
	}

	return &composed{
		resume:   r,
		template: tpl,
		doc:      compose.Compose(r.Data, tpl, &theme),
	}, nil
}
