package compose

import (
	"errors"
	"strings"

	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

var ErrUnknownTemplate = errors.New("unknown template")

// Template is one of the five layout variants. The unexported methods seal the set:
// adding a variant means adding a type here that implements layout.
type Template interface {
	Name() string
	DefaultTheme() resume.Theme
	layout(d resume.Data, th resume.Theme) []document.Node
}

type (
	Classic    struct{}
	Modern     struct{}
	Minimalist struct{}
	Executive  struct{}
	Creative   struct{}
)

func (Classic) Name() string    { return "classic" }
func (Modern) Name() string     { return "modern" }
func (Minimalist) Name() string { return "minimalist" }
func (Executive) Name() string  { return "executive" }
func (Creative) Name() string   { return "creative" }

func (Classic) DefaultTheme() resume.Theme {
	return resume.Theme{PrimaryColor: "#1f2937", SecondaryColor: "#4b5563", FontFamily: "Georgia"}
}

func (Modern) DefaultTheme() resume.Theme {
	return resume.Theme{PrimaryColor: "#2563eb", SecondaryColor: "#64748b", FontFamily: "Helvetica"}
}

func (Minimalist) DefaultTheme() resume.Theme {
	return resume.Theme{PrimaryColor: "#111827", SecondaryColor: "#6b7280", FontFamily: "Helvetica"}
}

func (Executive) DefaultTheme() resume.Theme {
	return resume.Theme{PrimaryColor: "#0f172a", SecondaryColor: "#b45309", FontFamily: "Times-Roman"}
}

func (Creative) DefaultTheme() resume.Theme {
	return resume.Theme{PrimaryColor: "#7c3aed", SecondaryColor: "#ec4899", FontFamily: "Helvetica"}
}

// Templates lists every variant in canonical order.
func Templates() []Template {
	return []Template{Classic{}, Modern{}, Minimalist{}, Executive{}, Creative{}}
}

// ParseTemplate resolves a template identifier, ignoring case and surrounding space.
func ParseTemplate(name string) (Template, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classic":
		return Classic{}, nil
	case "modern":
		return Modern{}, nil
	case "minimalist":
		return Minimalist{}, nil
	case "executive":
		return Executive{}, nil
	case "creative":
		return Creative{}, nil
	}
	return nil, ErrUnknownTemplate
}

// ParseTemplateOrDefault falls back to Classic for blank or unknown names.
func ParseTemplateOrDefault(name string) Template {
	t, err := ParseTemplate(name)
	if err != nil {
		return Classic{}
	}
	return t
}
