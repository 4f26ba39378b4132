package rest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/wassup1201/Simple-Agent/internal/domain/apperr"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

func statusFor(err error) int {
	if apperr.KindOf(err) == apperr.KindClientInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// jsonObject is a request body read field by field, so one mistyped field
// only blanks that field.
type jsonObject map[string]json.RawMessage

// decodeObject reads a JSON object body. Missing, malformed or non-object
// bodies yield an empty object.
func decodeObject(r *http.Request) jsonObject {
	if r.Body == nil {
		return jsonObject{}
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return jsonObject{}
	}
	return parseObject(raw)
}

func parseObject(raw []byte) jsonObject {
	var obj jsonObject
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return jsonObject{}
	}
	return obj
}

// String coerces a field to text. Strings pass through, non-zero numbers
// and true keep their literal form, and everything else (missing, null,
// false, 0, objects, arrays) is "".
func (o jsonObject) String(key string) string {
	raw, ok := o[key]
	if !ok {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		f, err := t.Float64()
		if err != nil || f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	case bool:
		if t {
			return "true"
		}
	}
	return ""
}

// Object returns a nested object field, or an empty object.
func (o jsonObject) Object(key string) jsonObject {
	raw, ok := o[key]
	if !ok {
		return jsonObject{}
	}
	return parseObject(raw)
}
