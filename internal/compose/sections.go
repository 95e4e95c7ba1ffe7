package compose

import (
	"strings"

	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// look is the per-template styling applied by the shared section builders.
type look struct {
	heading      document.Style
	headingRule  *document.Rule
	title        document.Style
	subtitle     document.Style
	meta         document.Style
	body         document.Style
	link         document.Style
	sectionStyle document.Style
	entry        document.Style
	// inlineSkills joins skills into one line instead of one node per skill.
	inlineSkills bool
	skillSep     string
	skill        document.Style
}

var sectionTitles = map[document.SectionKey]string{
	document.SectionSummary:        "Summary",
	document.SectionExperience:     "Experience",
	document.SectionEducation:      "Education",
	document.SectionSkills:         "Skills",
	document.SectionProjects:       "Projects",
	document.SectionCertifications: "Certifications",
	document.SectionLanguages:      "Languages",
}

func (l look) header(key document.SectionKey) []document.Node {
	nodes := []document.Node{document.Text{Value: sectionTitles[key], Style: l.heading}}
	if l.headingRule != nil {
		nodes = append(nodes, *l.headingRule)
	}
	return nodes
}

func (l look) section(key document.SectionKey, children []document.Node) document.Section {
	return document.Section{
		Key:      key,
		Children: append(l.header(key), children...),
		Style:    l.sectionStyle,
	}
}

// paragraphs splits free text into lines. List markers become bullets. An empty
// description still yields one empty text node.
func (l look) paragraphs(text string) []document.Node {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	nodes := make([]document.Node, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" && len(lines) > 1 {
			continue
		}
		for _, marker := range []string{"- ", "* ", "• "} {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = "• " + strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
				break
			}
		}
		nodes = append(nodes, document.Text{Value: trimmed, Style: l.body})
	}
	if len(nodes) == 0 {
		nodes = append(nodes, document.Text{Value: "", Style: l.body})
	}
	return nodes
}

// titleRow puts a title on the left and dates on the right.
func (l look) titleRow(title, dates string) document.Row {
	dateStyle := l.meta
	dateStyle.Align = document.AlignRight
	return document.Row{
		Columns: []document.Column{
			{Width: 0.7, Children: []document.Node{document.Text{Value: title, Style: l.title}}},
			{Width: 0.3, Children: []document.Node{document.Text{Value: dates, Style: dateStyle}}},
		},
	}
}

func (l look) linkNode(raw *string) (document.Node, bool) {
	if raw == nil {
		return nil, false
	}
	href := LinkHref(*raw)
	if href == "" {
		return document.Text{Value: "", Style: l.link}, true
	}
	return document.Text{Value: LinkLabel(*raw), Link: &href, Style: l.link}, true
}

func (l look) summarySection(p resume.PersonalInfo) (document.Section, bool) {
	if p.Summary == nil || strings.TrimSpace(*p.Summary) == "" {
		return document.Section{}, false
	}
	return l.section(document.SectionSummary, l.paragraphs(*p.Summary)), true
}

func (l look) experienceSection(items []resume.Experience) (document.Section, bool) {
	if len(items) == 0 {
		return document.Section{}, false
	}
	entries := make([]document.Node, 0, len(items))
	for _, e := range items {
		children := []document.Node{
			l.titleRow(e.Title, FormatDateRange(e.StartDate, resume.Value(e.EndDate), e.Current)),
			document.Text{Value: e.Company, Style: l.subtitle},
		}
		children = append(children, l.paragraphs(e.Description)...)
		entries = append(entries, document.Entry{Section: document.SectionExperience, ID: e.ID, Children: children, Style: l.entry})
	}
	return l.section(document.SectionExperience, entries), true
}

func (l look) educationSection(items []resume.Education) (document.Section, bool) {
	if len(items) == 0 {
		return document.Section{}, false
	}
	entries := make([]document.Node, 0, len(items))
	for _, e := range items {
		children := []document.Node{
			l.titleRow(e.Degree, FormatDateRange(e.StartDate, resume.Value(e.EndDate), e.Current)),
			document.Text{Value: e.School, Style: l.subtitle},
		}
		if strings.TrimSpace(e.Description) != "" {
			children = append(children, l.paragraphs(e.Description)...)
		}
		entries = append(entries, document.Entry{Section: document.SectionEducation, ID: e.ID, Children: children, Style: l.entry})
	}
	return l.section(document.SectionEducation, entries), true
}

func (l look) skillsSection(skills []string) (document.Section, bool) {
	if len(skills) == 0 {
		return document.Section{}, false
	}
	if l.inlineSkills {
		sep := l.skillSep
		if sep == "" {
			sep = " • "
		}
		return l.section(document.SectionSkills, []document.Node{
			document.Text{Value: strings.Join(skills, sep), Style: l.skill},
		}), true
	}
	nodes := make([]document.Node, 0, len(skills))
	for _, s := range skills {
		nodes = append(nodes, document.Text{Value: s, Style: l.skill})
	}
	return l.section(document.SectionSkills, nodes), true
}

func (l look) projectsSection(items []resume.Project) (document.Section, bool) {
	if len(items) == 0 {
		return document.Section{}, false
	}
	entries := make([]document.Node, 0, len(items))
	for _, p := range items {
		children := []document.Node{document.Text{Value: p.Title, Style: l.title}}
		if link, ok := l.linkNode(p.Link); ok {
			children = append(children, link)
		}
		children = append(children, l.paragraphs(p.Description)...)
		if len(p.Technologies) > 0 {
			children = append(children, document.Text{Value: strings.Join(p.Technologies, ", "), Style: l.meta})
		}
		entries = append(entries, document.Entry{Section: document.SectionProjects, ID: p.ID, Children: children, Style: l.entry})
	}
	return l.section(document.SectionProjects, entries), true
}

func (l look) certificationsSection(items []resume.Certification) (document.Section, bool) {
	if len(items) == 0 {
		return document.Section{}, false
	}
	entries := make([]document.Node, 0, len(items))
	for _, c := range items {
		children := []document.Node{
			l.titleRow(c.Name, FormatDate(c.Date)),
			document.Text{Value: c.Issuer, Style: l.subtitle},
		}
		if link, ok := l.linkNode(c.Link); ok {
			children = append(children, link)
		}
		entries = append(entries, document.Entry{Section: document.SectionCertifications, ID: c.ID, Children: children, Style: l.entry})
	}
	return l.section(document.SectionCertifications, entries), true
}

func (l look) languagesSection(items []resume.Language) (document.Section, bool) {
	if len(items) == 0 {
		return document.Section{}, false
	}
	entries := make([]document.Node, 0, len(items))
	for _, lang := range items {
		value := lang.Language
		if lang.Proficiency != "" {
			value += " - " + lang.Proficiency
		}
		entries = append(entries, document.Entry{
			Section:  document.SectionLanguages,
			ID:       lang.ID,
			Children: []document.Node{document.Text{Value: value, Style: l.body}},
			Style:    l.entry,
		})
	}
	return l.section(document.SectionLanguages, entries), true
}

type sectionBuilder func(l look, d resume.Data) (document.Section, bool)

var builders = map[document.SectionKey]sectionBuilder{
	document.SectionSummary: func(l look, d resume.Data) (document.Section, bool) {
		return l.summarySection(d.PersonalInfo)
	},
	document.SectionExperience: func(l look, d resume.Data) (document.Section, bool) {
		return l.experienceSection(d.Experience)
	},
	document.SectionEducation: func(l look, d resume.Data) (document.Section, bool) {
		return l.educationSection(d.Education)
	},
	document.SectionSkills: func(l look, d resume.Data) (document.Section, bool) {
		return l.skillsSection(d.Skills)
	},
	document.SectionProjects: func(l look, d resume.Data) (document.Section, bool) {
		return l.projectsSection(d.Projects)
	},
	document.SectionCertifications: func(l look, d resume.Data) (document.Section, bool) {
		return l.certificationsSection(d.Certifications)
	},
	document.SectionLanguages: func(l look, d resume.Data) (document.Section, bool) {
		return l.languagesSection(d.Languages)
	},
}

// sections builds keys in order, dropping the empty ones.
func (l look) sections(d resume.Data, keys ...document.SectionKey) []document.Node {
	out := make([]document.Node, 0, len(keys))
	for _, k := range keys {
		if s, ok := builders[k](l, d); ok {
			out = append(out, s)
		}
	}
	return out
}
