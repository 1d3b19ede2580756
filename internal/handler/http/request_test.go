package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantLoc  []string
		wantType string
	}{
		{name: "empty body", body: "", wantLoc: []string{"body"}, wantType: validators.TypeMissing},
		{name: "truncated", body: `{"mood_score":`, wantLoc: []string{"body"}, wantType: validators.TypeJSON},
		{name: "wrong type", body: `{"mood_score":"high"}`, wantLoc: []string{"body", "mood_score"}, wantType: validators.TypeValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var in models.MoodLogInput

			err := decodeJSON(httptest.NewRecorder(), req, &in)

			errs, ok := validators.AsErrors(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantLoc, errs[0].Loc)
			assert.Equal(t, tt.wantType, errs[0].Type)
		})
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"mood_score":8,"notes":"ok"}`))
		var in models.MoodLogInput

		require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &in))
		assert.Equal(t, 8, *in.MoodScore)
	})
}

func TestPathID(t *testing.T) {
	for raw, wantOK := range map[string]bool{"12": true, "0": false, "-3": false, "abc": false, "": false} {
		req := withURLParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": raw})

		id, err := pathID(req, "id")
		if wantOK {
			require.NoError(t, err, raw)
			assert.Equal(t, int64(12), id)
			continue
		}
		errs, ok := validators.AsErrors(err)
		require.True(t, ok, raw)
		assert.Equal(t, []string{"path", "id"}, errs[0].Loc)
		assert.Equal(t, validators.TypeInteger, errs[0].Type)
	}
}

func TestQueryParams(t *testing.T) {
	t.Run("typed values", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/?limit=20&offset=40&is_major=true&target_id=9&start=2026-03-01&end=2026-03-14T18:30:00Z&meal_type=lunch", nil)
		q := newQueryParams(req)

		assert.Equal(t, 20, q.integer("limit"))
		assert.Equal(t, 40, q.integer("offset"))
		assert.Equal(t, 0, q.integer("missing"))
		assert.True(t, *q.optBool("is_major"))
		assert.Equal(t, int64(9), *q.optInt64("target_id"))
		assert.Equal(t, "2026-03-01", q.optDate("start").String())
		assert.Equal(t, time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC), q.optTime("end").UTC())
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *q.optTime("start"))
		assert.Equal(t, models.MealLunch, *optEnum(q, "meal_type", models.MealTypes))
		assert.NoError(t, q.err())
	})

	t.Run("every malformed value is reported", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?limit=-1&is_major=maybe&start=14.03.2026&kind=joy", nil)
		q := newQueryParams(req)

		q.integer("limit")
		q.optBool("is_major")
		q.optDate("start")
		assert.Nil(t, optEnum(q, "kind", models.WellnessKinds))

		errs, ok := validators.AsErrors(q.err())
		require.True(t, ok)
		require.Len(t, errs, 4)
		assert.Equal(t, []string{"query", "limit"}, errs[0].Loc)
		assert.Equal(t, []string{"query", "kind"}, errs[3].Loc)
		assert.Equal(t, validators.TypeEnum, errs[3].Type)
		assert.Contains(t, errs[3].Msg, "mood, stress, sleep")
	})
}
