// Package editor holds resume data behind a reducer. Section edits arrive as typed
// actions; each one is validated and applied to a copy, so a rejected action never
// leaves partial changes behind.
package editor

import (
	"fmt"
	"sync"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
)

// Reduce applies actions in order to a copy of d. On the first failure it returns d
// unchanged together with the error.
func Reduce(d resume.Data, actions ...Action) (resume.Data, error) {
	next := d.Clone()
	for i, a := range actions {
		if err := a.apply(&next); err != nil {
			if len(actions) == 1 {
				return d, err
			}
			return d, fmt.Errorf("action %d (%s): %w", i, a.ActionType(), err)
		}
	}
	return next, nil
}

// Store is the single writer for one resume's data.
type Store struct {
	mu   sync.RWMutex
	data resume.Data
}

func NewStore(initial resume.Data) *Store {
	return &Store{data: initial.Clone()}
}

// Dispatch applies the actions atomically: either all take effect or none do.
func (s *Store) Dispatch(actions ...Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := Reduce(s.data, actions...)
	if err != nil {
		return err
	}
	s.data = next
	return nil
}

// Snapshot returns a deep copy of the current data.
func (s *Store) Snapshot() resume.Data {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (SetPersonalInfo) ActionType() string       { return "setPersonalInfo" }
func (AddExperience) ActionType() string         { return "addExperience" }
func (UpdateExperience) ActionType() string      { return "updateExperience" }
func (RemoveExperience) ActionType() string      { return "removeExperience" }
func (ReorderExperience) ActionType() string     { return "reorderExperience" }
func (AddEducation) ActionType() string          { return "addEducation" }
func (UpdateEducation) ActionType() string       { return "updateEducation" }
func (RemoveEducation) ActionType() string       { return "removeEducation" }
func (ReorderEducation) ActionType() string      { return "reorderEducation" }
func (AddProject) ActionType() string            { return "addProject" }
func (UpdateProject) ActionType() string         { return "updateProject" }
func (RemoveProject) ActionType() string         { return "removeProject" }
func (ReorderProjects) ActionType() string       { return "reorderProjects" }
func (AddCertification) ActionType() string      { return "addCertification" }
func (UpdateCertification) ActionType() string   { return "updateCertification" }
func (RemoveCertification) ActionType() string   { return "removeCertification" }
func (ReorderCertifications) ActionType() string { return "reorderCertifications" }
func (AddLanguage) ActionType() string           { return "addLanguage" }
func (UpdateLanguage) ActionType() string        { return "updateLanguage" }
func (RemoveLanguage) ActionType() string        { return "removeLanguage" }
func (ReorderLanguages) ActionType() string      { return "reorderLanguages" }
func (SetSkills) ActionType() string             { return "setSkills" }
func (AddSkill) ActionType() string              { return "addSkill" }
func (RemoveSkill) ActionType() string           { return "removeSkill" }
func (ReorderSkills) ActionType() string         { return "reorderSkills" }
