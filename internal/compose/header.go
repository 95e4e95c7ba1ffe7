package compose

import (
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// contact lists the personal contact lines. Name and email are always present, even
// when blank; optional fields appear only when provided.
func (l look) contact(p resume.PersonalInfo, style document.Style) []document.Node {
	email := document.Text{Value: p.Email, Style: style}
	if p.Email != "" {
		href := "mailto:" + p.Email
		email.Link = &href
	}
	nodes := []document.Node{email}

	if p.Phone != nil {
		t := document.Text{Value: *p.Phone, Style: style}
		if *p.Phone != "" {
			href := "tel:" + *p.Phone
			t.Link = &href
		}
		nodes = append(nodes, t)
	}
	if p.Address != nil {
		nodes = append(nodes, document.Text{Value: *p.Address, Style: style})
	}

	links := l
	links.link = style
	for _, raw := range []*string{p.SocialLinks.LinkedIn, p.SocialLinks.GitHub, p.SocialLinks.Portfolio, p.SocialLinks.Twitter} {
		if n, ok := links.linkNode(raw); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// contactRow spreads contact lines across equal columns.
func (l look) contactRow(p resume.PersonalInfo, style document.Style) document.Row {
	items := l.contact(p, style)
	cols := make([]document.Column, 0, len(items))
	for _, n := range items {
		cols = append(cols, document.Column{Children: []document.Node{n}})
	}
	return document.Row{Columns: cols, Gap: 8}
}

func personal(children []document.Node, style document.Style) document.Section {
	return document.Section{Key: document.SectionPersonal, Children: children, Style: style}
}
