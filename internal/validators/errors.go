package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Error types reported in FieldError.Type.
const (
	TypeValue     = "value_error"
	TypeMissing   = "value_error.missing"
	TypeDuplicate = "value_error.duplicate"
	TypeEmail     = "value_error.email"
	TypeDate      = "value_error.date"
	TypeRange     = "value_error.number.not_in_range"
	TypeEnum      = "type_error.enum"
	TypeJSON      = "json_invalid"
	TypeInteger   = "type_error.integer"
)

// FieldError locates one validation failure. Loc is a path such as
// ["body", "email"] or ["path", "id"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors is an accumulated list of field errors. A nil or empty Errors is
// not an error; use [Errors.Err] to convert.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, strings.Join(fe.Loc, ".")+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a body field error.
func (e *Errors) Add(field, msg, typ string) {
	*e = append(*e, FieldError{Loc: []string{"body", field}, Msg: msg, Type: typ})
}

// AddLoc appends an error at an explicit location.
func (e *Errors) AddLoc(loc []string, msg, typ string) {
	*e = append(*e, FieldError{Loc: loc, Msg: msg, Type: typ})
}

// Err returns e as an error, or nil when e is empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// NewFieldError is a shortcut for a single-entry body error.
func NewFieldError(field, msg, typ string) error {
	return Errors{{Loc: []string{"body", field}, Msg: msg, Type: typ}}
}

// NewLocError is a shortcut for a single-entry error at loc.
func NewLocError(loc []string, msg, typ string) error {
	return Errors{{Loc: loc, Msg: msg, Type: typ}}
}

// AsErrors extracts field errors from err.
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
