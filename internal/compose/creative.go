package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Creative keeps contact, skills and languages in a colored left sidebar.
func (Creative) layout(d resume.Data, th resume.Theme) []document.Node {
	main := look{
		heading:  document.Style{FontSize: 14, Weight: document.WeightBold, Color: th.PrimaryColor, MarginTop: 12, MarginBottom: 4},
		title:    document.Style{FontSize: 11, Weight: document.WeightBold},
		subtitle: document.Style{FontSize: 10, Weight: document.WeightMedium, Color: th.SecondaryColor},
		meta:     document.Style{FontSize: 9, Color: th.SecondaryColor},
		body:     document.Style{FontSize: 10},
		link:     document.Style{FontSize: 9, Color: th.SecondaryColor},
		entry:    document.Style{MarginBottom: 8},
		skill:    document.Style{FontSize: 10},
	}
	white := "#ffffff"
	side := look{
		heading: document.Style{FontSize: 12, Weight: document.WeightBold, Uppercase: true, Color: white, MarginTop: 12, MarginBottom: 4},
		title:   document.Style{FontSize: 10, Weight: document.WeightBold, Color: white},
		meta:    document.Style{FontSize: 9, Color: white},
		body:    document.Style{FontSize: 10, Color: white},
		link:    document.Style{FontSize: 9, Color: white},
		entry:   document.Style{MarginBottom: 4},
		skill:   document.Style{FontSize: 10, Color: white, MarginBottom: 2},
	}

	header := personal(append([]document.Node{
		document.Text{
			Value: d.PersonalInfo.FullName(),
			Style: document.Style{FontSize: 20, Weight: document.WeightBold, Color: white, MarginBottom: 8},
		},
	}, side.contact(d.PersonalInfo, document.Style{FontSize: 9, Color: white})...), document.Style{})

	sidebar := append([]document.Node{header}, side.sections(d,
		document.SectionSkills,
		document.SectionLanguages,
	)...)
	content := main.sections(d,
		document.SectionSummary,
		document.SectionExperience,
		document.SectionEducation,
		document.SectionProjects,
		document.SectionCertifications,
	)

	return []document.Node{document.Row{
		Gap: 16,
		Columns: []document.Column{
			{Width: 0.32, Children: sidebar, Style: document.Style{Background: th.PrimaryColor, Padding: 14}},
			{Width: 0.68, Children: content, Style: document.Style{Padding: 6}},
		},
	}}
}
