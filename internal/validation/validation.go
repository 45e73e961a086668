package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/ParthPatil-04/API-demo/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected input, located by its path (for
// example ["body", "title"] or ["path", "book_id"]).
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// BindAndValidateJSON decodes the body into dst and runs the binding rules.
// The body must be exactly one JSON object. On failure it writes a 422
// response and returns false.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		Abort(c, FromBindError(dst, err)...)
		return false
	}

	if errs := checkDocument(raw); len(errs) > 0 {
		Abort(c, errs...)
		return false
	}

	if err := binding.JSON.BindBody(raw, dst); err != nil {
		Abort(c, FromBindError(dst, err)...)
		return false
	}

	return true
}

// checkDocument rejects bodies that gin's binding would let through: a
// top-level null, and anything after the first JSON value.
func checkDocument(raw []byte) []FieldError {
	dec := json.NewDecoder(bytes.NewReader(raw))

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return FromBindError(nil, err)
	}

	if doc == nil {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  "Input should be a valid dictionary",
			Type: "dictionary_type",
		}}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error: unexpected data after the top-level value",
			Type: "json_invalid",
		}}
	}

	return nil
}

// ParseIDParam reads an integer path parameter. On failure it writes a 422
// response and returns false.
func ParseIDParam(c *gin.Context, param, field string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		Abort(c, FieldError{
			Loc:  []string{"path", field},
			Msg:  "Input should be a valid integer, unable to parse string as an integer",
			Type: "int_parsing",
		})
		return 0, false
	}

	return id, true
}

func Abort(c *gin.Context, errs ...FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{Detail: errs})
}

// NotNull reports a field that was sent as null but must hold a value.
func NotNull(field, kind string) FieldError {
	return FieldError{
		Loc:  []string{"body", field},
		Msg:  "Input should be a valid " + kind,
		Type: kind + "_type",
	}
}

// FromBindError translates the error returned by gin's JSON binding.
func FromBindError(dst any, err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return formatValidationErrors(dst, verrs)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		kind := kindName(typeErr.Type)
		return []FieldError{{
			Loc:  loc,
			Msg:  "Input should be a valid " + kind,
			Type: kind + "_type",
		}}
	}

	if errors.Is(err, io.EOF) {
		return []FieldError{{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}
	}

	return []FieldError{{
		Loc:  []string{"body"},
		Msg:  "JSON decode error: " + err.Error(),
		Type: "json_invalid",
	}}
}

// Required reports a required field that was omitted or sent as null.
func Required[T any](field, kind string, v model.Optional[T]) (FieldError, bool) {
	switch {
	case !v.Set:
		return FieldError{
			Loc:  []string{"body", field},
			Msg:  "Field required",
			Type: "missing",
		}, true
	case v.IsNull():
		return NotNull(field, kind), true
	default:
		return FieldError{}, false
	}
}

func formatValidationErrors(dst any, verrs validator.ValidationErrors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Loc:  []string{"body", jsonFieldName(dst, fe.StructField())},
			Msg:  buildMessage(fe),
			Type: ruleType(fe.Tag()),
		})
	}

	return fields
}

// jsonFieldName maps a struct field to the name it has on the wire.
func jsonFieldName(dst any, field string) string {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t != nil && t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(field); ok {
			if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
				return name
			}
		}
	}

	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func buildMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "min":
		return "Value should have at least " + fe.Param() + " items"
	case "max":
		return "Value should have at most " + fe.Param() + " items"
	default:
		return "Value is invalid (" + fe.Tag() + ")"
	}
}

func ruleType(tag string) string {
	switch tag {
	case "required":
		return "missing"
	case "min":
		return "too_short"
	case "max":
		return "too_long"
	default:
		return tag
	}
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}

	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Struct, reflect.Map:
		return "dictionary"
	default:
		return t.Kind().String()
	}
}
