package editor

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/importer"
)

// FieldErrors maps a field path (JSON names) to a message. A dispatch that returns
// FieldErrors leaves the store untouched.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("link", validLink)
	v.RegisterStructValidation(experienceDates, resume.Experience{})
	v.RegisterStructValidation(educationDates, resume.Education{})
	return v
}

// validLink accepts web addresses with or without a scheme.
func validLink(fl validator.FieldLevel) bool {
	s := strings.TrimSpace(fl.Field().String())
	if s == "" {
		return false
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && strings.Contains(u.Hostname(), ".")
}

func experienceDates(sl validator.StructLevel) {
	e := sl.Current().Interface().(resume.Experience)
	checkDates(sl, e.StartDate, e.EndDate, e.Current)
}

func educationDates(sl validator.StructLevel) {
	e := sl.Current().Interface().(resume.Education)
	checkDates(sl, e.StartDate, e.EndDate, e.Current)
}

// checkDates requires dates that normalize and an end that does not precede the start.
// The end date is ignored for current entries.
func checkDates(sl validator.StructLevel, start string, end *string, current bool) {
	s, ok := importer.NormalizeDate(start)
	if strings.TrimSpace(start) != "" && (!ok || s == importer.Present) {
		sl.ReportError(start, "startDate", "StartDate", "date", "")
		return
	}
	if current || end == nil || strings.TrimSpace(*end) == "" {
		return
	}
	e, ok := importer.NormalizeDate(*end)
	if !ok {
		sl.ReportError(*end, "endDate", "EndDate", "date", "")
		return
	}
	if e != importer.Present && s != "" && e < s {
		sl.ReportError(*end, "endDate", "EndDate", "chronological", "")
	}
}

// canonicalDates rewrites validated dates to YYYY-MM. An end date of "present"
// marks the entry current, and current entries carry no end date.
func canonicalDates(start string, end *string, current bool) (string, *string, bool) {
	if s, ok := importer.NormalizeDate(start); ok && s != importer.Present {
		start = s
	}
	if current || end == nil || strings.TrimSpace(*end) == "" {
		return start, nil, current
	}
	e, ok := importer.NormalizeDate(*end)
	switch {
	case !ok:
		return start, end, false
	case e == importer.Present:
		return start, nil, true
	default:
		return start, &e, false
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "link":
		return "must be a valid URL"
	case "date":
		return "must be a date such as 2023-06 or Jun 2023"
	case "chronological":
		return "must not be before the start date"
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}

// check validates v and returns FieldErrors keyed under prefix, or nil.
func check(prefix string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		// Drop the Go type name at the root of the namespace.
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		if prefix != "" {
			path = prefix + "." + path
		}
		out[path] = messageFor(fe)
	}
	return out
}
