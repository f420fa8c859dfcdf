package templateapi

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
)

type Kind int

const (
	KindEmpty Kind = iota
	KindObject
	KindArray
	KindScalar
)

const byteOrderMark = "\uFEFF"

// listKeys is the lookup order for list payloads wrapped in an object.
var listKeys = []string{"list", "templates", "records", "items", "rows"}

// Payload is a response body with any envelope already resolved. Callers never
// need to look for {code, message, data} again.
type Payload struct {
	value     any
	enveloped bool
}

// Decode turns a raw response into a Payload, or a classified error.
func Decode(statusCode int, body []byte) (Payload, error) {
	text := string(body)
	if statusCode < 200 || statusCode > 299 {
		return Payload{}, &TransportError{StatusCode: statusCode, Body: text}
	}

	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(text), byteOrderMark))
	if cleaned == "" {
		return Payload{}, nil
	}

	value, err := parseJSON(cleaned)
	if err != nil {
		return Payload{}, &MalformedResponseError{Preview: preview(cleaned), Cause: err}
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return Payload{value: value}, nil
	}

	code, ok := obj["code"].(json.Number)
	if !ok {
		return Payload{value: obj}, nil
	}

	if isZero(code) {
		data, present := obj["data"]
		if !present || data == nil {
			data = map[string]any{}
		}

		return Payload{value: data, enveloped: true}, nil
	}

	message, _ := obj["message"].(string)
	if message == "" {
		message = "API error " + code.String()
	}

	return Payload{}, &BusinessError{Code: code.String(), Message: message}
}

func parseJSON(text string) (any, error) {
	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}

	return value, nil
}

func isZero(code json.Number) bool {
	if n, err := code.Int64(); err == nil {
		return n == 0
	}

	f, err := code.Float64()
	return err == nil && f == 0
}

func (p Payload) Kind() Kind {
	switch p.value.(type) {
	case nil:
		return KindEmpty
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return KindScalar
	}
}

func (p Payload) Enveloped() bool {
	return p.enveloped
}

func (p Payload) Value() any {
	return p.value
}

// Object returns the payload as an object, or nil when it is not one.
func (p Payload) Object() map[string]any {
	obj, _ := p.value.(map[string]any)
	return obj
}

// String returns a scalar payload rendered as text.
func (p Payload) String() string {
	if p.Kind() != KindScalar {
		return ""
	}

	return toString(p.value)
}

// List returns the array a list endpoint carries. An unrecognized shape yields
// an empty list, never an error.
func (p Payload) List() []any {
	switch value := p.value.(type) {
	case []any:
		return value
	case map[string]any:
		for _, key := range listKeys {
			if items, ok := value[key].([]any); ok {
				return items
			}
		}
	}

	return []any{}
}

func (p Payload) pageMeta(count, requestedPage, requestedSize int) (total, page, size int) {
	obj := p.Object()
	if obj == nil {
		return count, requestedPage, requestedSize
	}

	total = intField(obj, count, "total", "totalCount", "total_count")
	if total < count {
		total = count
	}

	page = intField(obj, requestedPage, "page", "pageNum", "page_num")
	size = intField(obj, requestedSize, "page_size", "pageSize")
	return total, page, size
}

func objects(items []any) []map[string]any {
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			result = append(result, obj)
		}
	}

	return result
}
