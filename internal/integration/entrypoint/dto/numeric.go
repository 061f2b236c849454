package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NumericInt is an integer that also accepts a quoted numeric string on input,
// so forms posting "3" and clients posting 3 bind the same way.
// Fractional values are truncated toward zero: 3.0 and "3.5" both bind as 3.
type NumericInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		data = []byte(raw)
	}

	value, err := ParseNumericInt(string(data))
	if err != nil {
		return err
	}
	*n = NumericInt(value)
	return nil
}

// ParseNumericInt parses a decimal number and truncates it toward zero.
func ParseNumericInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	whole := value.Truncate(0)
	if !whole.Equal(decimal.NewFromInt(whole.IntPart())) {
		return 0, fmt.Errorf("%q is out of range", raw)
	}
	return int(whole.IntPart()), nil
}

// IntPtr returns the value as *int, nil when n is nil.
func (n *NumericInt) IntPtr() *int {
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}
