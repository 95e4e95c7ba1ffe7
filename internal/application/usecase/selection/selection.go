package selection

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var tracer = otel.Tracer("selection_usecase")

// SelectionUseCase reads and switches the session's template. Switching never
// touches resume data.
type SelectionUseCase struct {
	repo   selection.Repository
	logger logger.Logger
}

func NewSelectionUseCase(repo selection.Repository, log logger.Logger) *SelectionUseCase {
	return &SelectionUseCase{repo: repo, logger: log}
}

// Default is classic with its own theme.
func Default() selection.Selection {
	tpl := compose.Classic{}
	return selection.Selection{Template: tpl.Name(), Theme: tpl.DefaultTheme()}
}

func (uc *SelectionUseCase) Get(ctx context.Context, userID uuid.UUID) (*selection.Selection, error) {
	ctx, span := tracer.Start(ctx, "GetSelection")
	defer span.End()

	sel, err := uc.repo.Get(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to read template selection", err)
	}
	if sel == nil {
		d := Default()
		return &d, nil
	}
	return sel, nil
}

// Set validates the template name before storing; the theme is merged over the
// template defaults so the stored value is complete.
func (uc *SelectionUseCase) Set(ctx context.Context, userID uuid.UUID, sel selection.Selection) (*selection.Selection, error) {
	ctx, span := tracer.Start(ctx, "SetSelection")
	defer span.End()

	tpl, err := compose.ParseTemplate(sel.Template)
	if err != nil {
		return nil, apperror.NewValidation(map[string]string{"template": "must be one of classic, modern, minimalist, executive, creative"})
	}
	stored := selection.Selection{
		Template: tpl.Name(),
		Theme:    sel.Theme.Merge(tpl.DefaultTheme()),
	}

	if err := uc.repo.Set(ctx, userID, stored); err != nil {
		span.RecordError(err)
		return nil, apperror.NewInternal("failed to store template selection", err)
	}
	uc.logger.Debug("Switched template", zap.String("user_id", userID.String()), zap.String("template", stored.Template))
	return &stored, nil
}
