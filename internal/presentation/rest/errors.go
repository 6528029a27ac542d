package rest

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

var registerTagNameOnce sync.Once

// useJSONFieldNames makes validator report fields by their json tag.
func useJSONFieldNames() {
	registerTagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// bindingError converts a ShouldBindJSON failure into an ErrorResponse.
func bindingError(err error) ErrorResponse {
	resp := ErrorResponse{Error: "invalid request body", Code: CodeInvalidRequest}

	var verrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			resp.Details = append(resp.Details, FieldError{Field: fe.Field(), Reason: fe.Tag()})
		}
	case errors.As(err, &typeErr):
		resp.Details = []FieldError{{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String()}}
	case errors.As(err, &syntaxErr):
		resp.Error = "malformed JSON"
	case errors.Is(err, io.EOF):
		resp.Error = "request body is empty"
	}

	return resp
}
