package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceTable(t *testing.T) {
	table, err := ParsePriceTable([]byte("PMS: 650\nago: 1100.5\n"))
	require.NoError(t, err)

	tests := []struct {
		label string
		want  float64
		found bool
	}{
		{"PMS - Pump 2", 650, true},
		{"pms", 650, true},
		{"AGO-1", 1100.5, true},
		{"DPK - Pump 1", 0, false},
		{"   ", 0, false},
	}
	for _, tt := range tests {
		got, ok := table.PriceFor(tt.label)
		assert.Equal(t, tt.found, ok, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestParsePriceTable_RejectsNonPositive(t *testing.T) {
	_, err := ParsePriceTable([]byte("PMS: 0\n"))
	assert.Error(t, err)

	_, err = ParsePriceTable([]byte("PMS: [1, 2]\n"))
	assert.Error(t, err)
}

func TestLoadPriceTable_MissingFile(t *testing.T) {
	table, err := LoadPriceTable(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestLoadPriceTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DPK: 900\n"), 0o600))

	table, err := LoadPriceTable(path)
	require.NoError(t, err)
	p, ok := table.PriceFor("DPK - Pump 3")
	assert.True(t, ok)
	assert.Equal(t, 900.0, p)
}
