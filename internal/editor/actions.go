package editor

import (
	"errors"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

var (
	ErrDuplicateID     = errors.New("entry id already exists")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Action is one typed update message. Only this package's types implement it.
type Action interface {
	ActionType() string
	apply(d *resume.Data) error
}

type SetPersonalInfo struct {
	Info resume.PersonalInfo `json:"personalInfo"`
}

type AddExperience struct {
	Entry resume.Experience `json:"entry"`
}
type UpdateExperience struct {
	Entry resume.Experience `json:"entry"`
}
type RemoveExperience struct {
	ID string `json:"id"`
}
type ReorderExperience struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type AddEducation struct {
	Entry resume.Education `json:"entry"`
}
type UpdateEducation struct {
	Entry resume.Education `json:"entry"`
}
type RemoveEducation struct {
	ID string `json:"id"`
}
type ReorderEducation struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type AddProject struct {
	Entry resume.Project `json:"entry"`
}
type UpdateProject struct {
	Entry resume.Project `json:"entry"`
}
type RemoveProject struct {
	ID string `json:"id"`
}
type ReorderProjects struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type AddCertification struct {
	Entry resume.Certification `json:"entry"`
}
type UpdateCertification struct {
	Entry resume.Certification `json:"entry"`
}
type RemoveCertification struct {
	ID string `json:"id"`
}
type ReorderCertifications struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type AddLanguage struct {
	Entry resume.Language `json:"entry"`
}
type UpdateLanguage struct {
	Entry resume.Language `json:"entry"`
}
type RemoveLanguage struct {
	ID string `json:"id"`
}
type ReorderLanguages struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type SetSkills struct {
	Skills []string `json:"skills"`
}
type AddSkill struct {
	Skill string `json:"skill"`
}
type RemoveSkill struct {
	Index int `json:"index"`
}
type ReorderSkills struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func (a SetPersonalInfo) apply(d *resume.Data) error {
	if err := check("personalInfo", a.Info); err != nil {
		return err
	}
	d.PersonalInfo = a.Info
	return nil
}

func experienceID(e *resume.Experience) *string       { return &e.ID }
func educationID(e *resume.Education) *string         { return &e.ID }
func projectID(p *resume.Project) *string             { return &p.ID }
func certificationID(c *resume.Certification) *string { return &c.ID }
func languageID(l *resume.Language) *string           { return &l.ID }

func experienceCanon(e *resume.Experience) {
	e.StartDate, e.EndDate, e.Current = canonicalDates(e.StartDate, e.EndDate, e.Current)
}
func educationCanon(e *resume.Education) {
	e.StartDate, e.EndDate, e.Current = canonicalDates(e.StartDate, e.EndDate, e.Current)
}

func (a AddExperience) apply(d *resume.Data) (err error) {
	d.Experience, err = add(d.Experience, a.Entry, experienceID, "experience", experienceCanon)
	return err
}
func (a UpdateExperience) apply(d *resume.Data) error {
	return update(d.Experience, a.Entry, experienceID, "experience", experienceCanon)
}
func (a RemoveExperience) apply(d *resume.Data) (err error) {
	d.Experience, err = remove(d.Experience, a.ID, experienceID)
	return err
}
func (a ReorderExperience) apply(d *resume.Data) error {
	return reorder(d.Experience, a.From, a.To)
}

func (a AddEducation) apply(d *resume.Data) (err error) {
	d.Education, err = add(d.Education, a.Entry, educationID, "education", educationCanon)
	return err
}
func (a UpdateEducation) apply(d *resume.Data) error {
	return update(d.Education, a.Entry, educationID, "education", educationCanon)
}
func (a RemoveEducation) apply(d *resume.Data) (err error) {
	d.Education, err = remove(d.Education, a.ID, educationID)
	return err
}
func (a ReorderEducation) apply(d *resume.Data) error {
	return reorder(d.Education, a.From, a.To)
}

func (a AddProject) apply(d *resume.Data) (err error) {
	d.Projects, err = add(d.Projects, a.Entry, projectID, "projects", nil)
	return err
}
func (a UpdateProject) apply(d *resume.Data) error {
	return update(d.Projects, a.Entry, projectID, "projects", nil)
}
func (a RemoveProject) apply(d *resume.Data) (err error) {
	d.Projects, err = remove(d.Projects, a.ID, projectID)
	return err
}
func (a ReorderProjects) apply(d *resume.Data) error {
	return reorder(d.Projects, a.From, a.To)
}

func (a AddCertification) apply(d *resume.Data) (err error) {
	d.Certifications, err = add(d.Certifications, a.Entry, certificationID, "certifications", nil)
	return err
}
func (a UpdateCertification) apply(d *resume.Data) error {
	return update(d.Certifications, a.Entry, certificationID, "certifications", nil)
}
func (a RemoveCertification) apply(d *resume.Data) (err error) {
	d.Certifications, err = remove(d.Certifications, a.ID, certificationID)
	return err
}
func (a ReorderCertifications) apply(d *resume.Data) error {
	return reorder(d.Certifications, a.From, a.To)
}

func (a AddLanguage) apply(d *resume.Data) (err error) {
	d.Languages, err = add(d.Languages, a.Entry, languageID, "languages", nil)
	return err
}
func (a UpdateLanguage) apply(d *resume.Data) error {
	return update(d.Languages, a.Entry, languageID, "languages", nil)
}
func (a RemoveLanguage) apply(d *resume.Data) (err error) {
	d.Languages, err = remove(d.Languages, a.ID, languageID)
	return err
}
func (a ReorderLanguages) apply(d *resume.Data) error {
	return reorder(d.Languages, a.From, a.To)
}

func (a SetSkills) apply(d *resume.Data) error {
	skills := make([]string, 0, len(a.Skills))
	for _, s := range a.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	d.Skills = skills
	return nil
}

func (a AddSkill) apply(d *resume.Data) error {
	skill := strings.TrimSpace(a.Skill)
	if skill == "" {
		return FieldErrors{"skills": "is required"}
	}
	for _, s := range d.Skills {
		if strings.EqualFold(s, skill) {
			return FieldErrors{"skills": "already listed"}
		}
	}
	d.Skills = append(d.Skills, skill)
	return nil
}

func (a RemoveSkill) apply(d *resume.Data) error {
	if a.Index < 0 || a.Index >= len(d.Skills) {
		return ErrIndexOutOfRange
	}
	d.Skills = slices.Delete(d.Skills, a.Index, a.Index+1)
	return nil
}

func (a ReorderSkills) apply(d *resume.Data) error {
	return reorder(d.Skills, a.From, a.To)
}

func indexOf[T any](seq []T, id string, idOf func(*T) *string) int {
	for i := range seq {
		if *idOf(&seq[i]) == id {
			return i
		}
	}
	return -1
}

// add validates the entry, assigns an id when it has none and appends it in
// canonical form.
func add[T any](seq []T, item T, idOf func(*T) *string, section string, canon func(*T)) ([]T, error) {
	id := idOf(&item)
	*id = strings.TrimSpace(*id)
	if *id == "" {
		*id = uuid.NewString()
	}
	if indexOf(seq, *id, idOf) >= 0 {
		return seq, ErrDuplicateID
	}
	if err := check(section, item); err != nil {
		return seq, err
	}
	if canon != nil {
		canon(&item)
	}
	return append(seq, item), nil
}

// update replaces the entry with the same id in place.
func update[T any](seq []T, item T, idOf func(*T) *string, section string, canon func(*T)) error {
	i := indexOf(seq, *idOf(&item), idOf)
	if i < 0 {
		return ErrEntryNotFound
	}
	if err := check(section, item); err != nil {
		return err
	}
	if canon != nil {
		canon(&item)
	}
	seq[i] = item
	return nil
}

func remove[T any](seq []T, id string, idOf func(*T) *string) ([]T, error) {
	i := indexOf(seq, id, idOf)
	if i < 0 {
		return seq, ErrEntryNotFound
	}
	return slices.Delete(seq, i, i+1), nil
}

// reorder moves the element at from to position to, shifting the ones between.
// The sequence keeps every element exactly once.
func reorder[T any](seq []T, from, to int) error {
	if from < 0 || from >= len(seq) || to < 0 || to >= len(seq) {
		return ErrIndexOutOfRange
	}
	if from == to {
		return nil
	}
	item := seq[from]
	if from < to {
		copy(seq[from:to], seq[from+1:to+1])
	} else {
		copy(seq[to+1:from+1], seq[to:from])
	}
	seq[to] = item
	return nil
}
