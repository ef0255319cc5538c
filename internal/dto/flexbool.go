package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FlexBool принимает как JSON bool, так и строку. Строка считается истиной
// только если равна "true" без учёта регистра, любая другая строка даёт false.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*b = false
		return nil
	}

	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = FlexBool(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("ожидается bool или строка, получено %s", data)
	}
	*b = FlexBool(strings.EqualFold(strings.TrimSpace(s), "true"))
	return nil
}
