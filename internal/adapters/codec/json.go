package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/DanielPopoola/bambora-gateway-go/internal/core/ports"
)

type JSONCodec struct{}

func NewJSONCodec() ports.Codec {
	return JSONCodec{}
}

func (JSONCodec) Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}
	return data, nil
}

func (JSONCodec) Decode(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("error decoding json response: empty body")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding json response: %w", err)
	}
	return nil
}
