package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PriceTable maps a fuel product code (PMS, AGO, DPK, ...) to its price per
// liter. Codes are stored upper-case.
type PriceTable map[string]float64

// LoadPriceTable reads a YAML mapping such as
//
//	PMS: 650
//	AGO: 1100
//
// A missing file yields an empty table so that prices must then come with
// each entry.
func LoadPriceTable(path string) (PriceTable, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return PriceTable{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read price table %s: %w", path, err)
	}
	return ParsePriceTable(raw)
}

func ParsePriceTable(raw []byte) (PriceTable, error) {
	var m map[string]float64
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse price table: %w", err)
	}
	t := make(PriceTable, len(m))
	for code, price := range m {
		if price <= 0 {
			return nil, fmt.Errorf("price table: %s must have a positive price, got %v", code, price)
		}
		t[strings.ToUpper(strings.TrimSpace(code))] = price
	}
	return t, nil
}

// PriceFor resolves the product prefix of a pump label, e.g. "pms - Pump 2"
// resolves through "PMS".
func (t PriceTable) PriceFor(pumpProduct string) (float64, bool) {
	code := ProductCode(pumpProduct)
	if code == "" {
		return 0, false
	}
	p, ok := t[code]
	return p, ok
}

// ProductCode returns the upper-cased leading token of a pump label.
func ProductCode(pumpProduct string) string {
	s := strings.TrimSpace(pumpProduct)
	if i := strings.IndexAny(s, " -_/"); i >= 0 {
		s = s[:i]
	}
	return strings.ToUpper(s)
}
