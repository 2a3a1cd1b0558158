package dto

import (
	"bytes"
	"strconv"
)

// FlexInt accepts the sloppy numeric inputs profile editors send: a JSON
// number, a numeric string, or a blank string. Blank and non-numeric text
// coerce to zero instead of failing the whole payload.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			*f = 0
			return nil
		}
		*f = coerceInt(s)
		return nil
	}

	*f = coerceInt(string(data))
	return nil
}

func (f FlexInt) Int() int {
	return int(f)
}

func coerceInt(s string) FlexInt {
	if n, err := strconv.Atoi(s); err == nil {
		return FlexInt(n)
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return FlexInt(int(x))
	}
	return 0
}
