package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Executive has a dark letter-spaced banner with a contact row beneath and secondary
// color accents under each heading.
func (Executive) layout(d resume.Data, th resume.Theme) []document.Node {
	accent := document.Rule{Color: th.SecondaryColor, Thickness: 2, Style: document.Style{MarginBottom: 6}}
	l := look{
		heading:      document.Style{FontSize: 12, Weight: document.WeightBold, Uppercase: true, LetterSpacing: 1, Color: th.PrimaryColor, MarginTop: 12},
		headingRule:  &accent,
		title:        document.Style{FontSize: 11, Weight: document.WeightBold, Color: th.PrimaryColor},
		subtitle:     document.Style{FontSize: 10, Weight: document.WeightMedium, Color: th.SecondaryColor},
		meta:         document.Style{FontSize: 9, Italic: true},
		body:         document.Style{FontSize: 10},
		link:         document.Style{FontSize: 9, Color: th.SecondaryColor},
		entry:        document.Style{MarginBottom: 10},
		inlineSkills: true,
		skillSep:     "  |  ",
		skill:        document.Style{FontSize: 10},
	}

	header := personal([]document.Node{
		document.Text{
			Value: d.PersonalInfo.FullName(),
			Style: document.Style{FontSize: 24, Weight: document.WeightBold, Uppercase: true, LetterSpacing: 3, Color: "#ffffff", Align: document.AlignCenter},
		},
		document.Rule{Color: th.SecondaryColor, Thickness: 1, Style: document.Style{MarginTop: 4, MarginBottom: 4}},
		l.contactRow(d.PersonalInfo, document.Style{FontSize: 9, Color: "#e5e7eb", Align: document.AlignCenter}),
	}, document.Style{Background: th.PrimaryColor, Padding: 18, MarginBottom: 10})

	body := []document.Node{header}
	return append(body, l.sections(d,
		document.SectionSummary,
		document.SectionExperience,
		document.SectionEducation,
		document.SectionCertifications,
		document.SectionProjects,
		document.SectionSkills,
		document.SectionLanguages,
	)...)
}
