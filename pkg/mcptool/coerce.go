package mcptool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Tool callers are not consistent about JSON types: threshold and limit
// arrive both as numbers and as numeric strings. These types accept
// either and leave range clamping to the pipeline.

// FlexFloat is a float64 that also unmarshals from a numeric string.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = unquote(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("cannot interpret %s as a number", data)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is an int that also unmarshals from a numeric string.
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler.
func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = unquote(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*i = 0
		return nil
	}
	// Accept "10.0" style strings too; truncation is fine for a count.
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("cannot interpret %s as a number", data)
	}
	*i = FlexInt(int(v))
	return nil
}

func unquote(data []byte) []byte {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return bytes.TrimSpace([]byte(s))
	}
	return bytes.TrimSpace(data)
}
