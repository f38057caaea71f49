package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// Denominations maps a note value to the number of notes counted.
// Stored as a jsonb object keyed by the note value.
type Denominations map[int]int

// Value implements driver.Valuer.
func (d Denominations) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	out := make(map[string]int, len(d))
	for k, v := range d {
		out[strconv.Itoa(k)] = v
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (d *Denominations) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = Denominations{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("denominations: unsupported scan type %T", src)
	}

	var in map[string]int
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("denominations: %w", err)
	}
	out := make(Denominations, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		out[n] = v
	}
	*d = out
	return nil
}
