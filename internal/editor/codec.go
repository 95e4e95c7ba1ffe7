package editor

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownAction = errors.New("unknown action type")

// Envelope is the wire form of an action: {"type": "addExperience", "payload": {...}}.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func decodeAs[A Action](raw json.RawMessage) (Action, error) {
	var a A
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

var decoders = map[string]func(json.RawMessage) (Action, error){
	"setPersonalInfo":       decodeAs[SetPersonalInfo],
	"addExperience":         decodeAs[AddExperience],
	"updateExperience":      decodeAs[UpdateExperience],
	"removeExperience":      decodeAs[RemoveExperience],
	"reorderExperience":     decodeAs[ReorderExperience],
	"addEducation":          decodeAs[AddEducation],
	"updateEducation":       decodeAs[UpdateEducation],
	"removeEducation":       decodeAs[RemoveEducation],
	"reorderEducation":      decodeAs[ReorderEducation],
	"addProject":            decodeAs[AddProject],
	"updateProject":         decodeAs[UpdateProject],
	"removeProject":         decodeAs[RemoveProject],
	"reorderProjects":       decodeAs[ReorderProjects],
	"addCertification":      decodeAs[AddCertification],
	"updateCertification":   decodeAs[UpdateCertification],
	"removeCertification":   decodeAs[RemoveCertification],
	"reorderCertifications": decodeAs[ReorderCertifications],
	"addLanguage":           decodeAs[AddLanguage],
	"updateLanguage":        decodeAs[UpdateLanguage],
	"removeLanguage":        decodeAs[RemoveLanguage],
	"reorderLanguages":      decodeAs[ReorderLanguages],
	"setSkills":             decodeAs[SetSkills],
	"addSkill":              decodeAs[AddSkill],
	"removeSkill":           decodeAs[RemoveSkill],
	"reorderSkills":         decodeAs[ReorderSkills],
}

// Decode turns an envelope into its typed action.
func Decode(env Envelope) (Action, error) {
	dec, ok := decoders[env.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
	a, err := dec(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", env.Type, err)
	}
	return a, nil
}

// DecodeAll decodes a batch, stopping at the first bad envelope.
func DecodeAll(envs []Envelope) ([]Action, error) {
	out := make([]Action, 0, len(envs))
	for i, env := range envs {
		a, err := Decode(env)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}
