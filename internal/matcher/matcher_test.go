package matcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []PartRef {
	return []PartRef{
		{ID: "p1", Name: "iPhone 13 Screen", SKU: "SCR-IP13-OEM"},
		{ID: "p2", Name: "iPhone 13 Battery", SKU: "BAT-IP13"},
		{ID: "p3", Name: "USB-C Charging Port", SKU: "PRT-USBC-01"},
		{ID: "p4", Name: "Back Glass", SKU: "GLS-BACK-13"},
		{ID: "p5", Name: "Back Glass", SKU: "GLS-BACK-14"},
	}
}

func TestResolveBySKU(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Replace screen SCR-IP13-OEM (original)", testCatalog())
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "p1", match.Part.ID)
	assert.Equal(t, "sku", match.Rule)
}

func TestResolveBySKUCaseInsensitive(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("bat-ip13 swap", testCatalog())
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "p2", match.Part.ID)
}

func TestResolveByExactName(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("  iPhone 13   Battery ", testCatalog())
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "p2", match.Part.ID)
	assert.Equal(t, "exact-name", match.Rule)
}

func TestResolveByNameSubstring(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Install new USB-C Charging Port and test", testCatalog())
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "p3", match.Part.ID)
	assert.Equal(t, "name-contains", match.Rule)
}

func TestResolveAmbiguousName(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Back Glass", testCatalog())
	require.Error(t, err)
	assert.Nil(t, match)

	var ambiguous *AmbiguousError
	require.True(t, errors.As(err, &ambiguous))
	assert.Len(t, ambiguous.Candidates, 2)
}

func TestResolveUnresolvedSKU(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Fit part XYZ-999 from supplier", testCatalog())
	require.Error(t, err)
	assert.Nil(t, match)

	var unresolved *UnresolvedSKUError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "XYZ-999", unresolved.Token)
}

func TestResolveServiceConcept(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Diagnostic labor", testCatalog())
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestResolveEmptyCatalog(t *testing.T) {
	m := NewNameMatcher()

	match, err := m.Resolve("Cleaning", nil)
	require.NoError(t, err)
	assert.Nil(t, match)
}
