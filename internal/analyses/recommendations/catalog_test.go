package recommendations

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogContents(t *testing.T) {
	catalog := DefaultCatalog()

	assert.Equal(t, []string{Commercial, Residential}, catalog.BuildingTypes())

	residential, ok := catalog.Lookup(Residential)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Install energy-efficient LED bulbs",
		"Use smart thermostats",
		"Insulate your home to reduce heating costs",
		"Turn off appliances when not in use",
	}, residential)

	commercial, ok := catalog.Lookup(Commercial)
	require.True(t, ok)
	assert.Equal(t, []string{
		"Upgrade to energy-efficient HVAC systems",
		"Implement automated lighting control",
		"Conduct regular energy audits",
		"Use renewable energy sources like solar panels",
	}, commercial)

	assert.False(t, catalog.Has("industrial"))
}

func TestCatalogLookupReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()

	items, ok := catalog.Lookup(Residential)
	require.True(t, ok)
	items[0] = "mutated"

	again, _ := catalog.Lookup(Residential)
	assert.Equal(t, "Install energy-efficient LED bulbs", again[0])
}

func TestNewCatalogValidation(t *testing.T) {
	cases := []struct {
		name    string
		entries map[string][]string
	}{
		{name: "empty", entries: map[string][]string{}},
		{name: "blank_key", entries: map[string][]string{" ": {"a", "b"}}},
		{name: "too_few", entries: map[string][]string{"x": {"a"}}},
		{name: "duplicate", entries: map[string][]string{"x": {"a", "a"}}},
		{name: "blank_item", entries: map[string][]string{"x": {"a", ""}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.entries)
			assert.True(t, errors.Is(err, ErrInvalidCatalog), "got %v", err)
		})
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	entries := map[string][]string{"x": {"a", "b"}}
	catalog, err := NewCatalog(entries)
	require.NoError(t, err)

	entries["x"][0] = "z"
	items, _ := catalog.Lookup("x")
	assert.Equal(t, []string{"a", "b"}, items)
}
