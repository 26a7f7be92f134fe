package rest

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/habitplan-backend/internal/domain"
)

// readJSON decodes the request body. A missing or malformed body decodes
// as an empty object; only a failed read (e.g. an oversized body) is an error.
func readJSON(r *http.Request) (any, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return map[string]any{}, nil
	}
	return v, nil
}

// payload is a leniently-typed JSON object. Accessors report whether a key
// holds a usable value of the requested kind; wrong types read as absent.
type payload map[string]any

// readPayload decodes the body as an object. Non-object bodies read as empty.
func readPayload(r *http.Request) (payload, error) {
	v, err := readJSON(r)
	if err != nil {
		return nil, err
	}
	if m, ok := v.(map[string]any); ok {
		return payload(m), nil
	}
	return payload{}, nil
}

// present reports whether key is set to something other than null.
func (p payload) present(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

func (p payload) str(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// strOr returns the string at key, or def when missing or not a string.
func (p payload) strOr(key, def string) string {
	if s, ok := p.str(key); ok {
		return s
	}
	return def
}

func (p payload) strPtr(key string) *string {
	if s, ok := p.str(key); ok {
		return &s
	}
	return nil
}

// truthyPtr is strPtr for enum fields: any truthy scalar is passed on as
// text so the service can normalize it, falsy or missing values give nil.
func (p payload) truthyPtr(key string) *string {
	if s := truthyString(p[key]); s != "" {
		return &s
	}
	return nil
}

// nullable reads a nullable text field: a string sets it, an explicit
// null clears it, anything else leaves it untouched.
func (p payload) nullable(key string) domain.NullablePatch {
	v, ok := p[key]
	if !ok {
		return domain.NullablePatch{}
	}
	switch t := v.(type) {
	case nil:
		return domain.NullablePatch{Set: true}
	case string:
		return domain.NullablePatch{Set: true, Value: &t}
	}
	return domain.NullablePatch{}
}

func (p payload) number(key string) (float64, bool) {
	return toNumber(p[key])
}

func (p payload) integer(key string) (int, bool) {
	return toInteger(p[key])
}

// object returns the nested object at key, or an empty payload.
func (p payload) object(key string) payload {
	if m, ok := p[key].(map[string]any); ok {
		return payload(m)
	}
	return payload{}
}

// toNumber accepts JSON numbers and numeric strings. A blank string is zero.
func toNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// toInteger truncates a number that fits an INTEGER column.
func toInteger(v any) (int, bool) {
	f, ok := toNumber(v)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func intPtr(v any) *int {
	if n, ok := toInteger(v); ok {
		return &n
	}
	return nil
}

func floatPtr(v any) *float64 {
	if f, ok := toNumber(v); ok {
		return &f
	}
	return nil
}

// scheduleType resolves schedule_type, falling back to schedule.type.
// Non-string values are stored in their string form.
func (p payload) scheduleType() *string {
	v, ok := p["schedule_type"]
	if !ok || v == nil {
		v = p.object("schedule")["type"]
	}
	if v == nil {
		return nil
	}
	s := domain.StringifyValue(v)
	return &s
}

// scheduleValue resolves schedule_value, falling back to schedule.value.
func (p payload) scheduleValue() any {
	if p.present("schedule_value") {
		return p["schedule_value"]
	}
	return p.object("schedule")["value"]
}

// stringList reads an array of strings. Non-string elements become blank
// and a missing or non-array value reads as empty.
func (p payload) stringList(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i], _ = v.(string)
	}
	return out
}
