package http

import (
	"time"

	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
)

// Auth DTOs

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SessionDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// Resume DTOs

// ResumeRequest is a full ResumeData body with optional record settings.
type ResumeRequest struct {
	resume.Data
	Title    string        `json:"title"`
	Template string        `json:"template"`
	Theme    *resume.Theme `json:"theme"`
}

// ResumeRecordDTO is the flat shape clients store and list: personal fields sit at
// the top level next to the record metadata.
type ResumeRecordDTO struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Template string       `json:"template"`
	Theme    resume.Theme `json:"theme"`

	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	Summary   *string `json:"summary"`
	LinkedIn  *string `json:"linkedin"`
	GitHub    *string `json:"github"`
	Portfolio *string `json:"portfolio"`
	Twitter   *string `json:"twitter"`

	Experience     []resume.Experience    `json:"experience"`
	Education      []resume.Education     `json:"education"`
	Skills         []string               `json:"skills"`
	Projects       []resume.Project       `json:"projects"`
	Certifications []resume.Certification `json:"certifications"`
	Languages      []resume.Language      `json:"languages"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToResumeRecordDTO(r *resume.Resume) ResumeRecordDTO {
	d := r.Data.Clone()
	p := d.PersonalInfo
	return ResumeRecordDTO{
		ID:             r.ID.String(),
		Title:          r.Title,
		Template:       r.Template,
		Theme:          r.Theme,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		Address:        p.Address,
		Summary:        p.Summary,
		LinkedIn:       p.SocialLinks.LinkedIn,
		GitHub:         p.SocialLinks.GitHub,
		Portfolio:      p.SocialLinks.Portfolio,
		Twitter:        p.SocialLinks.Twitter,
		Experience:     nonNil(d.Experience),
		Education:      nonNil(d.Education),
		Skills:         nonNil(d.Skills),
		Projects:       nonNil(d.Projects),
		Certifications: nonNil(d.Certifications),
		Languages:      nonNil(d.Languages),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// ToData maps the flat record back to nested resume data.
func (dto ResumeRecordDTO) ToData() resume.Data {
	return resume.Data{
		PersonalInfo: resume.PersonalInfo{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
			Phone:     dto.Phone,
			Address:   dto.Address,
			Summary:   dto.Summary,
			SocialLinks: resume.SocialLinks{
				LinkedIn:  dto.LinkedIn,
				GitHub:    dto.GitHub,
				Portfolio: dto.Portfolio,
				Twitter:   dto.Twitter,
			},
		},
		Experience:     dto.Experience,
		Education:      dto.Education,
		Skills:         dto.Skills,
		Projects:       dto.Projects,
		Certifications: dto.Certifications,
		Languages:      dto.Languages,
	}.Clone()
}

// nonNil keeps empty sections as [] rather than null on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Export and template DTOs

type exportRequest struct {
	Template string        `json:"template"`
	Theme    *resume.Theme `json:"theme"`
}

type TemplateDTO struct {
	ID           string       `json:"id"`
	DefaultTheme resume.Theme `json:"defaultTheme"`
}

func ToTemplateDTOs(tpls []compose.Template) []TemplateDTO {
	out := make([]TemplateDTO, len(tpls))
	for i, t := range tpls {
		out[i] = TemplateDTO{ID: t.Name(), DefaultTheme: t.DefaultTheme()}
	}
	return out
}

type SelectionDTO struct {
	Template string       `json:"template" binding:"required"`
	Theme    resume.Theme `json:"theme"`
}

func ToSelectionDTO(s *selection.Selection) SelectionDTO {
	return SelectionDTO{Template: s.Template, Theme: s.Theme}
}
