package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/app"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds every JSON request body. Bulk allergen imports are the
// largest legitimate payloads.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Malformed input is reported as
// a validation error located at ["body"].
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := app.MsgInvalidJSON
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return validators.NewLocError([]string{"body"}, app.MsgBodyRequired, validators.TypeMissing)
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return validators.NewLocError([]string{"body", typeErr.Field},
				fmt.Sprintf("expected %s", typeErr.Type), validators.TypeValue)
		case errors.As(err, &maxErr):
			msg = app.MsgBodyTooLarge
		}
		return validators.NewLocError([]string{"body"}, msg, validators.TypeJSON)
	}
	return nil
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validators.NewLocError([]string{"path", name}, app.MsgInvalidPathID, validators.TypeInteger)
	}
	return id, nil
}

// queryParams collects typed query parameters and accumulates a validation
// error per malformed value.
type queryParams struct {
	values url.Values
	errs   validators.Errors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{values: r.URL.Query()}
}

func (q *queryParams) fail(name, msg, typ string) {
	q.errs.AddLoc([]string{"query", name}, msg, typ)
}

func (q *queryParams) str(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

func (q *queryParams) integer(name string) int {
	raw := q.str(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		q.fail(name, "value is not a valid non-negative integer", validators.TypeInteger)
		return 0
	}
	return n
}

func (q *queryParams) optInt64(name string) *int64 {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.fail(name, "value is not a valid integer", validators.TypeInteger)
		return nil
	}
	return &n
}

func (q *queryParams) optBool(name string) *bool {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(name, "value could not be parsed to a boolean", validators.TypeValue)
		return nil
	}
	return &b
}

func (q *queryParams) optDate(name string) *models.Date {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		q.fail(name, "invalid date format, expected YYYY-MM-DD", validators.TypeDate)
		return nil
	}
	return &d
}

// optTime accepts either an RFC 3339 timestamp or a bare date, which is
// read as midnight UTC.
func (q *queryParams) optTime(name string) *time.Time {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if d, err := models.ParseDate(raw); err == nil {
		t := d.Time
		return &t
	}
	q.fail(name, "invalid datetime format", validators.TypeDate)
	return nil
}

func (q *queryParams) err() error {
	return q.errs.Err()
}

// optEnum reads a parameter that must be one of allowed.
func optEnum[T ~string](q *queryParams, name string, allowed []T) *T {
	raw := q.str(name)
	if raw == "" {
		return nil
	}
	for _, v := range allowed {
		if string(v) == raw {
			return &v
		}
	}
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	q.fail(name, name+" must be one of: "+strings.Join(names, ", "), validators.TypeEnum)
	return nil
}
