package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Modern puts the name in a colored banner and splits the page into a main column and
// a narrower sidebar.
func (Modern) layout(d resume.Data, th resume.Theme) []document.Node {
	l := look{
		heading:  document.Style{FontSize: 12, Weight: document.WeightBold, Color: th.PrimaryColor, MarginTop: 10, MarginBottom: 4},
		title:    document.Style{FontSize: 11, Weight: document.WeightMedium},
		subtitle: document.Style{FontSize: 10, Color: th.PrimaryColor},
		meta:     document.Style{FontSize: 9, Color: th.SecondaryColor},
		body:     document.Style{FontSize: 10},
		link:     document.Style{FontSize: 9, Color: th.PrimaryColor},
		entry:    document.Style{MarginBottom: 8},
		skill:    document.Style{FontSize: 9, Background: "#f1f5f9", Padding: 2, MarginBottom: 2},
	}

	header := personal([]document.Node{
		document.Text{
			Value: d.PersonalInfo.FullName(),
			Style: document.Style{FontSize: 24, Weight: document.WeightBold, Color: "#ffffff"},
		},
		l.contactRow(d.PersonalInfo, document.Style{FontSize: 9, Color: "#ffffff"}),
	}, document.Style{Background: th.PrimaryColor, Padding: 16, MarginBottom: 12})

	body := []document.Node{header}
	body = append(body, l.sections(d, document.SectionSummary)...)

	main := l.sections(d,
		document.SectionExperience,
		document.SectionProjects,
		document.SectionEducation,
	)
	side := l.sections(d,
		document.SectionSkills,
		document.SectionCertifications,
		document.SectionLanguages,
	)
	if len(main) == 0 && len(side) == 0 {
		return body
	}
	return append(body, document.Row{
		Gap: 16,
		Columns: []document.Column{
			{Width: 0.65, Children: main},
			{Width: 0.35, Children: side, Style: document.Style{Padding: 8, Background: "#f8fafc"}},
		},
	})
}
