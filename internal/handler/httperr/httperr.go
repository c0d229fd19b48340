package httperr

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldViolation names a request field and the binding rule it failed.
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

const InternalMessage = "Internal server error"

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithBindingError reports a request that failed to bind, listing the
// offending fields when the validator produced them.
func AbortWithBindingError(c *gin.Context, status int, err error) {
	var detail any
	if violations := Violations(err); len(violations) > 0 {
		detail = violations
	}
	AbortWithError(c, status, err, "Invalid request", detail)
}

// Violations flattens validator errors into field paths relative to the
// request body, e.g. "dateRange.from". Other errors yield nil.
func Violations(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldViolation{Field: fieldPath(fe.Namespace()), Rule: fe.Tag()})
	}
	return out
}

// drops the root struct name and lowers the first letter of each segment
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}
