package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewNotFound("resume", "1"), http.StatusNotFound},
		{NewInvalidInput("bad", nil), http.StatusBadRequest},
		{NewValidation(map[string]string{"email": "invalid"}), http.StatusBadRequest},
		{NewUnauthorized("nope", nil), http.StatusUnauthorized},
		{NewPermissionDenied("nope"), http.StatusForbidden},
		{NewConflict("user", "email", "a@b.c"), http.StatusConflict},
		{NewInternal("boom", errors.New("db down")), http.StatusInternalServerError},
		{NewExport(errors.New("chrome crashed")), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", NewNotFound("resume", "2")), http.StatusNotFound},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ToHTTPStatus(c.err), c.err.Error())
	}
}

func TestToJSON_HidesInternalDetails(t *testing.T) {
	body := NewInternal("connection string leaked", errors.New("x")).ToJSON()
	_, ok := body["details"]
	assert.False(t, ok)

	body = NewExport(errors.New("chrome crashed")).ToJSON()
	assert.Equal(t, "chrome crashed", body["details"])
}

func TestNewValidation_SortsDetails(t *testing.T) {
	e := NewValidation(map[string]string{"b": "second", "a": "first"})
	assert.Equal(t, "a: first; b: second", e.Details)
	assert.Equal(t, "second", e.ToJSON()["fields"].(map[string]string)["b"])
}
