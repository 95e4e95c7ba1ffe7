// Package document describes an inert, renderer-ready page layout. A Document is built
// once by the composer and consumed once by a renderer; it carries no behavior.
package document

import "encoding/json"

type Kind string

const (
	KindText    Kind = "text"
	KindRule    Kind = "rule"
	KindRow     Kind = "row"
	KindColumn  Kind = "column"
	KindSection Kind = "section"
	KindEntry   Kind = "entry"
	KindSpacer  Kind = "spacer"
)

// SectionKey names a logical resume section.
type SectionKey string

const (
	SectionPersonal       SectionKey = "personal"
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
	SectionLanguages      SectionKey = "languages"
)

type Weight string

const (
	WeightNormal Weight = "normal"
	WeightMedium Weight = "medium"
	WeightBold   Weight = "bold"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Style is the per-node presentation. Zero values mean "inherit".
type Style struct {
	FontSize      float64 `json:"fontSize,omitempty"`
	FontFamily    string  `json:"fontFamily,omitempty"`
	Weight        Weight  `json:"weight,omitempty"`
	Italic        bool    `json:"italic,omitempty"`
	Uppercase     bool    `json:"uppercase,omitempty"`
	LetterSpacing float64 `json:"letterSpacing,omitempty"`
	Color         string  `json:"color,omitempty"`
	Background    string  `json:"background,omitempty"`
	Align         Align   `json:"align,omitempty"`
	MarginTop     float64 `json:"marginTop,omitempty"`
	MarginBottom  float64 `json:"marginBottom,omitempty"`
	Padding       float64 `json:"padding,omitempty"`
}

// Node is a closed set: only the types in this package implement it.
type Node interface {
	Kind() Kind
	node()
}

// Text is a run of styled text, optionally a hyperlink.
type Text struct {
	Value string  `json:"value"`
	Link  *string `json:"link,omitempty"`
	Style Style   `json:"style"`
}

// Rule is a horizontal line.
type Rule struct {
	Color     string  `json:"color,omitempty"`
	Thickness float64 `json:"thickness"`
	Style     Style   `json:"style"`
}

// Row lays its columns out side by side.
type Row struct {
	Columns []Column `json:"columns"`
	Gap     float64  `json:"gap,omitempty"`
	Style   Style    `json:"style"`
}

// Column is one vertical region of a Row. Width is a fraction of the row (0 means share equally).
type Column struct {
	Width    float64 `json:"width,omitempty"`
	Children []Node  `json:"children"`
	Style    Style   `json:"style"`
}

// Section groups the nodes of one resume section.
type Section struct {
	Key      SectionKey `json:"key"`
	Children []Node     `json:"children"`
	Style    Style      `json:"style"`
}

// Entry groups the nodes rendered for one item of a section sequence.
type Entry struct {
	Section  SectionKey `json:"section"`
	ID       string     `json:"id"`
	Children []Node     `json:"children"`
	Style    Style      `json:"style"`
}

type Spacer struct {
	Height float64 `json:"height"`
}

type PageSpec struct {
	Size   string  `json:"size"`
	Margin float64 `json:"margin"`
}

type Document struct {
	Title      string   `json:"title"`
	Template   string   `json:"template"`
	FontFamily string   `json:"fontFamily"`
	Page       PageSpec `json:"page"`
	Body       []Node   `json:"body"`
}

func (Text) Kind() Kind    { return KindText }
func (Rule) Kind() Kind    { return KindRule }
func (Row) Kind() Kind     { return KindRow }
func (Column) Kind() Kind  { return KindColumn }
func (Section) Kind() Kind { return KindSection }
func (Entry) Kind() Kind   { return KindEntry }
func (Spacer) Kind() Kind  { return KindSpacer }

func (Text) node()    {}
func (Rule) node()    {}
func (Row) node()     {}
func (Column) node()  {}
func (Section) node() {}
func (Entry) node()   {}
func (Spacer) node()  {}

func withKind(k Kind, v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	kind, _ := json.Marshal(k)
	m["kind"] = kind
	return json.Marshal(m)
}

func (n Text) MarshalJSON() ([]byte, error) {
	type plain Text
	return withKind(KindText, plain(n))
}

func (n Rule) MarshalJSON() ([]byte, error) {
	type plain Rule
	return withKind(KindRule, plain(n))
}

func (n Row) MarshalJSON() ([]byte, error) {
	type plain Row
	return withKind(KindRow, plain(n))
}

func (n Column) MarshalJSON() ([]byte, error) {
	type plain Column
	return withKind(KindColumn, plain(n))
}

func (n Section) MarshalJSON() ([]byte, error) {
	type plain Section
	return withKind(KindSection, plain(n))
}

func (n Entry) MarshalJSON() ([]byte, error) {
	type plain Entry
	return withKind(KindEntry, plain(n))
}

func (n Spacer) MarshalJSON() ([]byte, error) {
	type plain Spacer
	return withKind(KindSpacer, plain(n))
}
