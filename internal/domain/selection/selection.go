package selection

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Selection is the user's current template and theme. It lives for the session only
// and is never stored inside resume data.
type Selection struct {
	Template string       `json:"template"`
	Theme    resume.Theme `json:"theme"`
}

type Repository interface {
	// Get returns (nil, nil) when the user has no stored selection.
	Get(ctx context.Context, userID uuid.UUID) (*Selection, error)
	Set(ctx context.Context, userID uuid.UUID, sel Selection) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
