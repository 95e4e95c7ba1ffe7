package render

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/document"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: {{.Size}}; margin: {{.Margin}}pt; }
* { box-sizing: border-box; }
body { margin: 0; font-family: {{.FontFamily}}, sans-serif; color: #111827; line-height: 1.35; }
p { margin: 0; }
a { color: inherit; text-decoration: none; }
hr { border: 0; }
</style>
</head>
<body data-template="{{.Template}}">
{{.Body}}
</body>
</html>
`))

// cssSafe limits theme-provided values to characters that cannot break out of a
// declaration.
var cssSafe = regexp.MustCompile(`^[#a-zA-Z0-9 ,.\-()%]*$`)

type HTMLRenderer struct{}

func NewHTMLRenderer() service.HTMLRenderer {
	return &HTMLRenderer{}
}

// Render writes the tree as a standalone HTML page with inline styles.
func (r *HTMLRenderer) Render(doc document.Document) (string, error) {
	var body strings.Builder
	for _, n := range doc.Body {
		if err := writeNode(&body, n); err != nil {
			return "", err
		}
	}

	size := doc.Page.Size
	if size == "" {
		size = "A4"
	}
	data := struct {
		Title      string
		Template   string
		Size       string
		Margin     float64
		FontFamily string
		Body       template.HTML
	}{
		Title:      doc.Title,
		Template:   doc.Template,
		Size:       size,
		Margin:     doc.Page.Margin,
		FontFamily: safeValue(doc.FontFamily, "Helvetica"),
		Body:       template.HTML(body.String()),
	}

	var out bytes.Buffer
	if err := pageTmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return out.String(), nil
}

func writeNode(b *strings.Builder, n document.Node) error {
	switch v := n.(type) {
	case document.Text:
		b.WriteString(`<p style="` + attr(styleCSS(v.Style)) + `">`)
		text := template.HTMLEscapeString(v.Value)
		if v.Link != nil && safeHref(*v.Link) {
			b.WriteString(`<a href="` + attr(*v.Link) + `">` + text + `</a>`)
		} else {
			b.WriteString(text)
		}
		b.WriteString(`</p>`)
	case document.Rule:
		thickness := v.Thickness
		if thickness <= 0 {
			thickness = 1
		}
		css := fmt.Sprintf("border-top:%spx solid %s;", num(thickness), safeValue(v.Color, "#e5e7eb")) + styleCSS(v.Style)
		b.WriteString(`<hr style="` + attr(css) + `">`)
	case document.Row:
		css := "display:flex;"
		if v.Gap > 0 {
			css += "gap:" + num(v.Gap) + "pt;"
		}
		b.WriteString(`<div class="row" style="` + attr(css+styleCSS(v.Style)) + `">`)
		for _, c := range v.Columns {
			if err := writeNode(b, c); err != nil {
				return err
			}
		}
		b.WriteString(`</div>`)
	case document.Column:
		css := "flex:1 1 0;min-width:0;"
		if v.Width > 0 {
			css = "flex:0 0 " + num(v.Width*100) + "%;min-width:0;"
		}
		b.WriteString(`<div class="column" style="` + attr(css+styleCSS(v.Style)) + `">`)
		if err := writeChildren(b, v.Children); err != nil {
			return err
		}
		b.WriteString(`</div>`)
	case document.Section:
		b.WriteString(`<section data-section="` + attr(string(v.Key)) + `" style="` + attr(styleCSS(v.Style)) + `">`)
		if err := writeChildren(b, v.Children); err != nil {
			return err
		}
		b.WriteString(`</section>`)
	case document.Entry:
		b.WriteString(`<div class="entry" data-entry-id="` + attr(v.ID) + `" style="` + attr(styleCSS(v.Style)) + `">`)
		if err := writeChildren(b, v.Children); err != nil {
			return err
		}
		b.WriteString(`</div>`)
	case document.Spacer:
		b.WriteString(`<div style="height:` + num(v.Height) + `pt"></div>`)
	default:
		return fmt.Errorf("unsupported node kind %q", n.Kind())
	}
	return nil
}

func writeChildren(b *strings.Builder, nodes []document.Node) error {
	for _, n := range nodes {
		if err := writeNode(b, n); err != nil {
			return err
		}
	}
	return nil
}

func styleCSS(s document.Style) string {
	var b strings.Builder
	if s.FontSize > 0 {
		b.WriteString("font-size:" + num(s.FontSize) + "pt;")
	}
	if s.FontFamily != "" {
		b.WriteString("font-family:" + safeValue(s.FontFamily, "inherit") + ";")
	}
	switch s.Weight {
	case document.WeightBold:
		b.WriteString("font-weight:700;")
	case document.WeightMedium:
		b.WriteString("font-weight:500;")
	case document.WeightNormal:
		b.WriteString("font-weight:400;")
	}
	if s.Italic {
		b.WriteString("font-style:italic;")
	}
	if s.Uppercase {
		b.WriteString("text-transform:uppercase;")
	}
	if s.LetterSpacing != 0 {
		b.WriteString("letter-spacing:" + num(s.LetterSpacing) + "pt;")
	}
	if s.Color != "" {
		b.WriteString("color:" + safeValue(s.Color, "inherit") + ";")
	}
	if s.Background != "" {
		b.WriteString("background:" + safeValue(s.Background, "transparent") + ";")
	}
	if s.Align != "" {
		b.WriteString("text-align:" + string(s.Align) + ";")
	}
	if s.MarginTop != 0 {
		b.WriteString("margin-top:" + num(s.MarginTop) + "pt;")
	}
	if s.MarginBottom != 0 {
		b.WriteString("margin-bottom:" + num(s.MarginBottom) + "pt;")
	}
	if s.Padding != 0 {
		b.WriteString("padding:" + num(s.Padding) + "pt;")
	}
	return b.String()
}

// num prints at most two decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}

func safeValue(v, fallback string) string {
	if v == "" || !cssSafe.MatchString(v) {
		return fallback
	}
	return v
}

func safeHref(href string) bool {
	lower := strings.ToLower(strings.TrimSpace(href))
	for _, scheme := range []string{"https://", "http://", "mailto:", "tel:"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return false
}

func attr(s string) string {
	return template.HTMLEscapeString(s)
}
