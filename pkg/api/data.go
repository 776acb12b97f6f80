package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

func percentEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

type Parameter map[string]string

func (p Parameter) ToReader() (io.Reader, string, error) {
	return bytes.NewBufferString(p.Encode()), "application/x-www-form-urlencoded", nil
}

func (p Parameter) Encode() string {
	var parameters []string
	for key, value := range p {
		parameters = append(parameters, key+"="+percentEncode(value))
	}
	sort.Strings(parameters)
	return strings.Join(parameters, "&")
}

type JSON map[string]any

type Array []JSON

func (j JSON) ToReader() (io.Reader, string, error) {
	b, err := json.Marshal(j)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewBuffer(b), "application/json", nil
}

// Field reads the dotted path from m as a T. JSON numbers decode as float64,
// so an int64 target only accepts whole numbers. A null field is the zero T.
func Field[T any](m JSON, path string) (T, error) {
	var zero T
	value, err := m.Get(path)
	if err != nil || value == nil {
		return zero, err
	}

	switch any(zero).(type) {
	case int64:
		if f, ok := value.(float64); ok && f == math.Trunc(f) {
			return any(int64(f)).(T), nil
		}
	case JSON:
		if obj, ok := value.(map[string]any); ok {
			return any(JSON(obj)).(T), nil
		}
	default:
		if v, ok := value.(T); ok {
			return v, nil
		}
	}

	return zero, fmt.Errorf("invalid type of field %s (%T)", path, value)
}

// Get returns the raw value at a dotted path such as "order.external_id".
func (m JSON) Get(path string) (any, error) {
	key, rest, nested := strings.Cut(path, ".")

	value, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("not found field %s", key)
	}

	if !nested {
		return value, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid type of field %s (%T)", key, value)
	}

	return JSON(obj).Get(rest)
}

func bytesToJSON(body []byte) (JSON, error) {
	result := JSON{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func bytesToArray(body []byte) (Array, error) {
	result := Array{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, err
	}

	return result, nil
}

type Response struct {
	Code    int
	Header  http.Header
	Body    any
	RawBody []byte
}

func (r *Response) IsSuccess() bool {
	return r.Code >= 200 && r.Code < 300
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.RawBody, v)
}
