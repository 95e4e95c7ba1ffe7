package http

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/khoahotran/resume-builder/pkg/apperror"
)

//go:embed schema/resume.schema.json
var resumeSchemaJSON []byte

var resumeSchema = mustSchema(resumeSchemaJSON)

func mustSchema(raw []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("compile resume schema: %v", err))
	}
	return s
}

// validateResumePayload checks a raw request body against the resume schema and
// reports every violation keyed by its JSON path.
func validateResumePayload(body []byte) error {
	res, err := resumeSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return apperror.NewInvalidInput("request body is not valid JSON", err)
	}
	if res.Valid() {
		return nil
	}
	fields := make(map[string]string, len(res.Errors()))
	for _, e := range res.Errors() {
		if _, seen := fields[e.Field()]; !seen {
			fields[e.Field()] = e.Description()
		}
	}
	return apperror.NewValidation(fields)
}
