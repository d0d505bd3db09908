package model

import (
	"bytes"
	"fmt"
)

// BoolInt tolerates both JSON booleans and 0/1 integers. The backend stores
// account flags as SQLite integers and serves them unconverted.
type BoolInt bool

func (b *BoolInt) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1":
		*b = true
	case "false", "0", "null":
		*b = false
	default:
		return fmt.Errorf("invalid bool value: %s", data)
	}
	return nil
}

func (b BoolInt) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (b BoolInt) Bool() bool { return bool(b) }
