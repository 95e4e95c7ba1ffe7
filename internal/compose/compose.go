// Package compose maps resume data onto an inert document tree for one of the five
// templates. Compose has no side effects and never fails: missing fields render empty
// and empty sections are left out.
package compose

import (
	"strings"

	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

const (
	pageSize   = "A4"
	pageMargin = 36
)

// Compose builds the document for d. A nil template means Classic; a nil theme or
// blank theme fields take the template defaults.
func Compose(d resume.Data, tpl Template, theme *resume.Theme) document.Document {
	if tpl == nil {
		tpl = Classic{}
	}
	th := tpl.DefaultTheme()
	if theme != nil {
		th = theme.Merge(th)
	}

	body := tpl.layout(d, th)

	margin := float64(pageMargin)
	if _, ok := tpl.(Creative); ok {
		margin = 0
	}
	return document.Document{
		Title:      documentTitle(d.PersonalInfo, tpl),
		Template:   tpl.Name(),
		FontFamily: th.FontFamily,
		Page:       document.PageSpec{Size: pageSize, Margin: margin},
		Body:       body,
	}
}

func documentTitle(p resume.PersonalInfo, tpl Template) string {
	name := strings.TrimSpace(p.FullName())
	if name == "" {
		return "Resume (" + tpl.Name() + ")"
	}
	return name + " - Resume"
}

// FileName is the export file name: <FirstName>_<LastName?>_<template>.<ext>.
func FileName(p resume.PersonalInfo, tpl Template, ext string) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.LastName} {
		if s = sanitizeFilePart(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "Resume")
	}
	parts = append(parts, tpl.Name())
	return strings.Join(parts, "_") + "." + strings.TrimPrefix(ext, ".")
}

func sanitizeFilePart(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r == '/' || r == '\\' || r == '"' || r == '_' || r < 0x20:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
