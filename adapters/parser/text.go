package parser

import (
	"regexp"
	"strings"

	"github.com/khoahotran/resume-builder/internal/importer"
)

type sectionKind int

const (
	secHeader sectionKind = iota
	secSummary
	secExperience
	secEducation
	secSkills
	secProjects
	secCertifications
	secLanguages
)

var headings = map[string]sectionKind{
	"summary":                   secSummary,
	"profile":                   secSummary,
	"about":                     secSummary,
	"about me":                  secSummary,
	"objective":                 secSummary,
	"professional summary":      secSummary,
	"experience":                secExperience,
	"work experience":           secExperience,
	"professional experience":   secExperience,
	"employment":                secExperience,
	"employment history":        secExperience,
	"work history":              secExperience,
	"education":                 secEducation,
	"skills":                    secSkills,
	"technical skills":          secSkills,
	"core skills":               secSkills,
	"projects":                  secProjects,
	"personal projects":         secProjects,
	"certifications":            secCertifications,
	"certificates":              secCertifications,
	"licenses & certifications": secCertifications,
	"languages":                 secLanguages,
}

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\d[\d\s().\-]{6,}\d`)
	urlRe   = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9\-]+(?:\.[a-z0-9\-]+)*\.[a-z]{2,}(?:/[^\s,;|]*)?`)

	datePart   = `(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4}-\d{2}|\d{4})`
	dateRange  = regexp.MustCompile(`(?i)(` + datePart + `)\s*(?:-|–|—|to)\s*(` + datePart + `|present|current|now)`)
	singleDate = regexp.MustCompile(`(?i)\(?(` + datePart + `)\)?`)

	bulletPrefix = regexp.MustCompile(`^[-*•●▪◦]\s*`)
	techPrefix   = regexp.MustCompile(`(?i)^(?:tech(?:nologies)?|stack|built with)\s*:\s*`)
)

// headerSeparators split "Title at Company" style lines, most specific first.
var headerSeparators = []string{" at ", " @ ", " | ", " — ", " – ", " - ", ", "}

func headingOf(line string) (sectionKind, bool) {
	key := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ":")))
	k, ok := headings[key]
	return k, ok
}

// ParseText extracts a best-effort resume from plain text lines. Dates stay as
// free text; the importer normalizes them.
func ParseText(text string) importer.ParsedResume {
	sections := map[sectionKind][]string{}
	current := secHeader
	for _, raw := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if k, ok := headingOf(line); ok {
			current = k
			continue
		}
		sections[current] = append(sections[current], line)
	}

	var out importer.ParsedResume
	out.PersonalInfo = parseHeader(sections[secHeader])
	out.PersonalInfo.Summary = strings.Join(sections[secSummary], " ")

	for _, b := range parseDated(sections[secExperience]) {
		title, company := splitHeader(b.header)
		out.Experience = append(out.Experience, importer.ParsedExperience{
			Title: title, Company: company, StartDate: b.start, EndDate: b.end, Description: b.description(),
		})
	}
	for _, b := range parseDated(sections[secEducation]) {
		degree, school := splitHeader(b.header)
		out.Education = append(out.Education, importer.ParsedEducation{
			School: school, Degree: degree, StartDate: b.start, EndDate: b.end, Description: b.description(),
		})
	}
	out.Skills = parseList(sections[secSkills], true)
	out.Projects = parseProjects(sections[secProjects])
	out.Certifications = parseCertifications(sections[secCertifications])
	out.Languages = parseLanguages(sections[secLanguages])
	return out
}

func parseHeader(lines []string) importer.ParsedPersonalInfo {
	var p importer.ParsedPersonalInfo
	for _, line := range lines {
		rest := line
		if e := emailRe.FindString(rest); e != "" && p.Email == "" {
			p.Email = e
		}
		rest = emailRe.ReplaceAllString(rest, " ")

		for _, u := range urlRe.FindAllString(rest, -1) {
			lower := strings.ToLower(u)
			switch {
			case strings.Contains(lower, "linkedin.com"):
				p.LinkedIn = u
			case strings.Contains(lower, "github.com"):
				p.GitHub = u
			case strings.Contains(lower, "twitter.com"), strings.Contains(lower, "x.com/"):
				p.Twitter = u
			case p.Portfolio == "":
				p.Portfolio = u
			}
		}
		rest = urlRe.ReplaceAllString(rest, " ")

		if ph := phoneRe.FindString(rest); ph != "" && p.Phone == "" {
			p.Phone = strings.TrimSpace(ph)
			rest = strings.Replace(rest, ph, " ", 1)
		}

		rest = strings.Trim(rest, " |,•·")
		switch {
		case rest == "":
		case p.FirstName == "":
			fields := strings.Fields(rest)
			p.FirstName = fields[0]
			p.LastName = strings.Join(fields[1:], " ")
		case p.Address == "" && line != rest:
			// Leftovers on a contact line are usually a location.
			p.Address = rest
		}
	}
	return p
}

type datedBlock struct {
	header     string
	start, end string
	lines      []string
}

func (b datedBlock) description() string {
	out := make([]string, 0, len(b.lines))
	for _, l := range b.lines {
		if bulletPrefix.MatchString(l) {
			l = "- " + bulletPrefix.ReplaceAllString(l, "")
		}
		out = append(out, l)
	}
	return strings.Join(out, "\n")
}

// parseDated groups lines into entries that each start at a date range. A date
// line without other text takes the line above it as its header.
func parseDated(lines []string) []datedBlock {
	var blocks []datedBlock
	var pending []string
	for _, line := range lines {
		m := dateRange.FindStringSubmatchIndex(line)
		if m == nil {
			if len(blocks) == 0 {
				pending = append(pending, line)
			} else {
				last := &blocks[len(blocks)-1]
				last.lines = append(last.lines, line)
			}
			continue
		}

		b := datedBlock{start: line[m[2]:m[3]], end: line[m[4]:m[5]]}
		b.header = cleanHeader(line[:m[0]] + " " + line[m[1]:])
		if b.header == "" {
			switch {
			case len(blocks) == 0 && len(pending) > 0:
				b.header = pending[len(pending)-1]
				pending = pending[:len(pending)-1]
			case len(blocks) > 0 && len(blocks[len(blocks)-1].lines) > 0:
				prev := &blocks[len(blocks)-1]
				b.header = prev.lines[len(prev.lines)-1]
				prev.lines = prev.lines[:len(prev.lines)-1]
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func cleanHeader(s string) string {
	s = strings.TrimSpace(strings.Join(strings.Fields(s), " "))
	s = strings.Trim(s, "|,()–—- ")
	return strings.TrimSpace(s)
}

func splitHeader(h string) (string, string) {
	for _, sep := range headerSeparators {
		if i := strings.Index(h, sep); i > 0 {
			return strings.TrimSpace(h[:i]), strings.TrimSpace(h[i+len(sep):])
		}
	}
	return h, ""
}

func parseList(lines []string, stripLabels bool) []string {
	var out []string
	for _, line := range lines {
		line = bulletPrefix.ReplaceAllString(line, "")
		if i := strings.Index(line, ":"); stripLabels && i >= 0 && i < 30 {
			// "Languages: Go, Python" style groupings.
			line = line[i+1:]
		}
		for _, item := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == '•' || r == '|' || r == ';' || r == '·'
		}) {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func parseProjects(lines []string) []importer.ParsedProject {
	var out []importer.ParsedProject
	for _, line := range lines {
		switch {
		case techPrefix.MatchString(line) && len(out) > 0:
			last := &out[len(out)-1]
			last.Technologies = append(last.Technologies, parseList([]string{techPrefix.ReplaceAllString(line, "")}, false)...)
		case bulletPrefix.MatchString(line) && len(out) > 0:
			last := &out[len(out)-1]
			item := "- " + bulletPrefix.ReplaceAllString(line, "")
			if last.Description == "" {
				last.Description = item
			} else {
				last.Description += "\n" + item
			}
		default:
			p := importer.ParsedProject{}
			if u := urlRe.FindString(line); u != "" && !emailRe.MatchString(line) {
				p.Link = u
				line = strings.Replace(line, u, "", 1)
			}
			p.Title = cleanHeader(line)
			out = append(out, p)
		}
	}
	return out
}

func parseCertifications(lines []string) []importer.ParsedCertification {
	var out []importer.ParsedCertification
	for _, line := range lines {
		line = bulletPrefix.ReplaceAllString(line, "")
		c := importer.ParsedCertification{}
		if u := urlRe.FindString(line); u != "" {
			c.Link = u
			line = strings.Replace(line, u, "", 1)
		}
		if m := singleDate.FindStringSubmatchIndex(line); m != nil {
			c.Date = line[m[2]:m[3]]
			line = line[:m[0]] + line[m[1]:]
		}
		c.Name, c.Issuer = splitHeader(cleanHeader(line))
		if c.Name != "" {
			out = append(out, c)
		}
	}
	return out
}

// languageSeparators split "French (Fluent)", "French - Fluent" or "French: Fluent".
var languageSeparators = []string{" (", " - ", " – ", ":", "("}

func parseLanguages(lines []string) []importer.ParsedLanguage {
	var out []importer.ParsedLanguage
	for _, item := range parseList(lines, false) {
		l := importer.ParsedLanguage{Language: item}
		for _, sep := range languageSeparators {
			if name, level, ok := strings.Cut(item, sep); ok && strings.TrimSpace(name) != "" {
				l.Language = strings.TrimSpace(name)
				l.Proficiency = strings.Trim(strings.TrimSpace(level), "() ")
				break
			}
		}
		out = append(out, l)
	}
	return out
}
