package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Classic is a single centered column with ruled section headings.
func (Classic) layout(d resume.Data, th resume.Theme) []document.Node {
	rule := document.Rule{Color: th.PrimaryColor, Thickness: 1, Style: document.Style{MarginBottom: 6}}
	l := look{
		heading:      document.Style{FontSize: 13, Weight: document.WeightBold, Color: th.PrimaryColor, Uppercase: true, MarginTop: 12},
		headingRule:  &rule,
		title:        document.Style{FontSize: 11, Weight: document.WeightBold},
		subtitle:     document.Style{FontSize: 10, Italic: true, Color: th.SecondaryColor},
		meta:         document.Style{FontSize: 9, Color: th.SecondaryColor},
		body:         document.Style{FontSize: 10},
		link:         document.Style{FontSize: 9, Color: th.PrimaryColor},
		entry:        document.Style{MarginBottom: 8},
		inlineSkills: true,
		skill:        document.Style{FontSize: 10},
	}

	contactStyle := document.Style{FontSize: 9, Color: th.SecondaryColor, Align: document.AlignCenter}
	header := personal([]document.Node{
		document.Text{
			Value: d.PersonalInfo.FullName(),
			Style: document.Style{FontSize: 22, Weight: document.WeightBold, Color: th.PrimaryColor, Align: document.AlignCenter},
		},
		l.contactRow(d.PersonalInfo, contactStyle),
		document.Rule{Color: th.PrimaryColor, Thickness: 2, Style: document.Style{MarginTop: 6}},
	}, document.Style{MarginBottom: 4})

	body := []document.Node{header}
	return append(body, l.sections(d,
		document.SectionSummary,
		document.SectionExperience,
		document.SectionEducation,
		document.SectionSkills,
		document.SectionProjects,
		document.SectionCertifications,
		document.SectionLanguages,
	)...)
}
