package importer

import (
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// ParsedResume is what a resume parser extracts: every field is free text and dates
// have not been normalized.
type ParsedResume struct {
	PersonalInfo   ParsedPersonalInfo    `json:"personalInfo"`
	Experience     []ParsedExperience    `json:"experience"`
	Education      []ParsedEducation     `json:"education"`
	Skills         []string              `json:"skills"`
	Projects       []ParsedProject       `json:"projects"`
	Certifications []ParsedCertification `json:"certifications"`
	Languages      []ParsedLanguage      `json:"languages"`
}

type ParsedPersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Summary   string `json:"summary"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Twitter   string `json:"twitter"`
}

type ParsedExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type ParsedEducation struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type ParsedProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
}

type ParsedCertification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	Link   string `json:"link"`
}

type ParsedLanguage struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Import converts a parsed resume into resume data. Every entry gets a fresh id.
// A Present end date becomes Current; dates that do not normalize are dropped.
func Import(p ParsedResume) resume.Data {
	d := resume.Data{
		PersonalInfo: resume.PersonalInfo{
			FirstName: strings.TrimSpace(p.PersonalInfo.FirstName),
			LastName:  strings.TrimSpace(p.PersonalInfo.LastName),
			Email:     strings.TrimSpace(p.PersonalInfo.Email),
			Phone:     optional(p.PersonalInfo.Phone),
			Address:   optional(p.PersonalInfo.Address),
			Summary:   optional(p.PersonalInfo.Summary),
			SocialLinks: resume.SocialLinks{
				LinkedIn:  optional(p.PersonalInfo.LinkedIn),
				GitHub:    optional(p.PersonalInfo.GitHub),
				Portfolio: optional(p.PersonalInfo.Portfolio),
				Twitter:   optional(p.PersonalInfo.Twitter),
			},
		},
		Skills: dedupe(p.Skills),
	}

	for _, e := range p.Experience {
		start, end, current := dateRange(e.StartDate, e.EndDate)
		d.Experience = append(d.Experience, resume.Experience{
			ID:          uuid.NewString(),
			Title:       strings.TrimSpace(e.Title),
			Company:     strings.TrimSpace(e.Company),
			StartDate:   start,
			EndDate:     end,
			Current:     current,
			Description: strings.TrimSpace(e.Description),
		})
	}
	for _, e := range p.Education {
		start, end, current := dateRange(e.StartDate, e.EndDate)
		d.Education = append(d.Education, resume.Education{
			ID:          uuid.NewString(),
			School:      strings.TrimSpace(e.School),
			Degree:      strings.TrimSpace(e.Degree),
			StartDate:   start,
			EndDate:     end,
			Current:     current,
			Description: strings.TrimSpace(e.Description),
		})
	}
	for _, pr := range p.Projects {
		d.Projects = append(d.Projects, resume.Project{
			ID:           uuid.NewString(),
			Title:        strings.TrimSpace(pr.Title),
			Description:  strings.TrimSpace(pr.Description),
			Technologies: dedupe(pr.Technologies),
			Link:         optional(pr.Link),
		})
	}
	for _, c := range p.Certifications {
		date, ok := NormalizeDate(c.Date)
		if !ok || date == Present {
			date = ""
		}
		d.Certifications = append(d.Certifications, resume.Certification{
			ID:     uuid.NewString(),
			Name:   strings.TrimSpace(c.Name),
			Issuer: strings.TrimSpace(c.Issuer),
			Date:   date,
			Link:   optional(c.Link),
		})
	}
	for _, l := range p.Languages {
		d.Languages = append(d.Languages, resume.Language{
			ID:          uuid.NewString(),
			Language:    strings.TrimSpace(l.Language),
			Proficiency: strings.TrimSpace(l.Proficiency),
		})
	}
	return d
}

func dateRange(rawStart, rawEnd string) (start string, end *string, current bool) {
	if s, ok := NormalizeDate(rawStart); ok && s != Present {
		start = s
	}
	e, ok := NormalizeDate(rawEnd)
	switch {
	case !ok:
		return start, nil, false
	case e == Present:
		return start, nil, true
	default:
		return start, &e, false
	}
}

func optional(s string) *string {
	if v := strings.TrimSpace(s); v != "" {
		return &v
	}
	return nil
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		v := strings.TrimSpace(s)
		key := strings.ToLower(v)
		if v == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
