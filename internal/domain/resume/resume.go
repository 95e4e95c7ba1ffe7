package resume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Theme holds presentation parameters layered on a template. Blank fields fall back
// to the template defaults.
type Theme struct {
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
	FontFamily     string `json:"fontFamily,omitempty"`
}

// Merge returns t with blank fields taken from fallback.
func (t Theme) Merge(fallback Theme) Theme {
	if t.PrimaryColor == "" {
		t.PrimaryColor = fallback.PrimaryColor
	}
	if t.SecondaryColor == "" {
		t.SecondaryColor = fallback.SecondaryColor
	}
	if t.FontFamily == "" {
		t.FontFamily = fallback.FontFamily
	}
	return t
}

// Resume is the persisted record. Data is always written as a whole.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Title     string    `json:"title"`
	Data      Data      `json:"data"`
	Template  string    `json:"template"`
	Theme     Theme     `json:"theme"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrTitleTooLong   = errors.New("title must be at most 200 characters")
)

const maxTitleLength = 200

func (r *Resume) Validate() error {
	if len(r.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// DefaultTitle derives a title from the owner's name when none was given.
func (r *Resume) DefaultTitle() string {
	if t := strings.TrimSpace(r.Title); t != "" {
		return t
	}
	if name := strings.TrimSpace(r.Data.PersonalInfo.FullName()); name != "" {
		return name + " Resume"
	}
	return "Untitled Resume"
}

type Repository interface {
	Save(ctx context.Context, resume *Resume) error
	Update(ctx context.Context, resume *Resume) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*Resume, error)
}
