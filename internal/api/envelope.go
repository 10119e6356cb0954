package api

import (
	"encoding/json"
	"fmt"
)

// Envelope is the `{data, message, errors}` wrapper every API response uses.
type Envelope struct {
	Data    json.RawMessage     `json:"data"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// ListShape declares how a list endpoint nests its items. The backend is not
// uniform: some list endpoints return the items directly under the envelope's
// data, others nest a `{data: [...], meta}` page there. The shape is declared
// per endpoint instead of guessed at runtime.
type ListShape int

const (
	// ShapeFlat: envelope data is the item array.
	ShapeFlat ListShape = iota
	// ShapePaginated: envelope data is a `{data, meta}` page.
	ShapePaginated
)

// decodeData unmarshals the envelope's data into a single value.
func decodeData[T any](env *Envelope) (T, error) {
	var value T
	if len(env.Data) == 0 {
		return value, fmt.Errorf("decode response: envelope has no data")
	}
	if err := json.Unmarshal(env.Data, &value); err != nil {
		return value, fmt.Errorf("decode response: %w", err)
	}
	return value, nil
}

// decodeList unmarshals a list endpoint's items according to its declared
// shape. A paginated endpoint that serves a bare array anyway (older backend
// versions do) still decodes; the page meta is simply absent.
func decodeList[T any](env *Envelope, shape ListShape) ([]T, *PageMeta, error) {
	if len(env.Data) == 0 {
		return nil, nil, fmt.Errorf("decode response: envelope has no data")
	}

	if shape == ShapePaginated {
		var page struct {
			Data []T       `json:"data"`
			Meta *PageMeta `json:"meta"`
		}
		if err := json.Unmarshal(env.Data, &page); err == nil && page.Data != nil {
			return page.Data, page.Meta, nil
		}
	}

	var items []T
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil, nil
}
