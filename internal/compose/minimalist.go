package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Minimalist uses no accent color beyond text and keeps headings small and spaced.
func (Minimalist) layout(d resume.Data, th resume.Theme) []document.Node {
	l := look{
		heading:      document.Style{FontSize: 9, Weight: document.WeightMedium, Uppercase: true, LetterSpacing: 1.5, Color: th.SecondaryColor, MarginTop: 14, MarginBottom: 4},
		title:        document.Style{FontSize: 10, Weight: document.WeightMedium, Color: th.PrimaryColor},
		subtitle:     document.Style{FontSize: 10, Color: th.SecondaryColor},
		meta:         document.Style{FontSize: 9, Color: th.SecondaryColor},
		body:         document.Style{FontSize: 10, Color: th.PrimaryColor},
		link:         document.Style{FontSize: 9, Color: th.PrimaryColor},
		entry:        document.Style{MarginBottom: 6},
		inlineSkills: true,
		skillSep:     ", ",
		skill:        document.Style{FontSize: 10, Color: th.PrimaryColor},
	}

	contact := l.contact(d.PersonalInfo, document.Style{FontSize: 9, Color: th.SecondaryColor})
	header := personal(append([]document.Node{
		document.Text{
			Value: d.PersonalInfo.FullName(),
			Style: document.Style{FontSize: 18, Weight: document.WeightNormal, Color: th.PrimaryColor, MarginBottom: 4},
		},
	}, contact...), document.Style{MarginBottom: 8})

	body := []document.Node{header}
	return append(body, l.sections(d,
		document.SectionSummary,
		document.SectionExperience,
		document.SectionEducation,
		document.SectionProjects,
		document.SectionSkills,
		document.SectionCertifications,
		document.SectionLanguages,
	)...)
}
