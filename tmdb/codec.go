package tmdb

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-json"
)

// Codec converts between JSON bytes and Go values. Unknown fields must be ignored.
type Codec interface {
	Unmarshal(data []byte, v any) error
	Marshal(v any) ([]byte, error)
}

type jsonCodec struct{}

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// DefaultCodec is backed by github.com/goccy/go-json
var DefaultCodec Codec = jsonCodec{}

// validator is implemented by types with required fields
type validator interface {
	validate() error
}

// decode maps body onto v. Any failure, including a missing required field,
// becomes a MappingFailed error carrying body verbatim.
func decode(codec Codec, body []byte, v any) error {
	if err := codec.Unmarshal(body, v); err != nil {
		return mappingError(body, err)
	}
	if val, ok := v.(validator); ok {
		if err := val.validate(); err != nil {
			return mappingError(body, err)
		}
	}
	return nil
}

// envelope is the transient decoded shape of a list response
type envelope[T any] interface {
	items() []T
	pagination() pageInfo
}

// decodeList decodes body into env and projects it into a ResultsList.
// On any error the partial list is discarded.
func decodeList[T any, E envelope[T]](codec Codec, body []byte, env E) (*ResultsList[T], error) {
	if err := decode(codec, body, env); err != nil {
		return nil, err
	}
	for i, item := range env.items() {
		if val, ok := any(&item).(validator); ok {
			if err := val.validate(); err != nil {
				return nil, mappingError(body, fmt.Errorf("result %d: %w", i, err))
			}
		}
	}
	return newResultsList(env.items(), env.pagination()), nil
}

// encodeBody serialises a flat map of scalar values for POST requests.
func encodeBody(codec Codec, fields map[string]any) ([]byte, error) {
	for k, v := range fields {
		if v == nil {
			continue
		}
		switch reflect.TypeOf(v).Kind() {
		case reflect.String, reflect.Bool,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
		default:
			return nil, &Error{
				Kind:    MappingFailed,
				Message: fmt.Sprintf("field %q has unsupported type %T", k, v),
			}
		}
	}

	data, err := codec.Marshal(fields)
	if err != nil {
		return nil, &Error{Kind: MappingFailed, Message: "failed to encode request body", Err: err}
	}
	return data, nil
}
