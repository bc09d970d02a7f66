package fingerprint_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/fingerprint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAndroid(t *testing.T) {
	t.Parallel()

	t.Run("ambiguous adreno 710 entry", func(t *testing.T) {
		t.Parallel()
		c, ok := fingerprint.ResolveAndroid("Adreno (TM) 710", 432, 960)
		require.True(t, ok)
		assert.False(t, c.Unique)
		assert.Contains(t, c.DisplayName, "Motorola Edge 50")
		assert.Contains(t, c.DisplayName, "Moto G84")
		assert.Equal(t, []string{"Motorola Edge 50 Fusion", "Moto G84"}, c.Models)
	})

	t.Run("height is optional", func(t *testing.T) {
		t.Parallel()
		c, ok := fingerprint.ResolveAndroid("Adreno (TM) 710", 432, 0)
		require.True(t, ok)
		assert.False(t, c.Unique)
	})

	t.Run("unique entry", func(t *testing.T) {
		t.Parallel()
		c, ok := fingerprint.ResolveAndroid("Qualcomm Adreno (TM) 740", 360, 780)
		require.True(t, ok)
		assert.True(t, c.Unique)
		assert.Equal(t, "Samsung Galaxy S23", c.DisplayName)
	})

	t.Run("width within tolerance", func(t *testing.T) {
		t.Parallel()
		_, ok := fingerprint.ResolveAndroid("Adreno (TM) 710", 430, 960)
		assert.True(t, ok)
		_, ok = fingerprint.ResolveAndroid("Adreno (TM) 710", 429, 960)
		assert.False(t, ok, "3 px off is a miss")
	})

	t.Run("renderer is case-folded", func(t *testing.T) {
		t.Parallel()
		_, ok := fingerprint.ResolveAndroid("ADRENO (TM) 710", 432, 960)
		assert.True(t, ok)
	})

	t.Run("unknown gpu", func(t *testing.T) {
		t.Parallel()
		_, ok := fingerprint.ResolveAndroid("PowerVR Rogue GE8320", 360, 800)
		assert.False(t, ok)
	})

	t.Run("missing renderer or width", func(t *testing.T) {
		t.Parallel()
		_, ok := fingerprint.ResolveAndroid("", 432, 960)
		assert.False(t, ok)
		_, ok = fingerprint.ResolveAndroid("Adreno (TM) 710", 0, 960)
		assert.False(t, ok)
	})
}

const extraTableYAML = `
- gpu: "Adreno (TM) 730"
  width: 360
  height: 800
  display_name: "Samsung Galaxy S22"
  models: ["Samsung Galaxy S22"]
- gpu: "mali-g57"
  width: 412
  models:
    - "Samsung Galaxy A25"
    - "Samsung Galaxy A15"
`

func TestLoadAndroidTable(t *testing.T) {
	t.Parallel()

	table, err := fingerprint.LoadAndroidTable(strings.NewReader(extraTableYAML))
	require.NoError(t, err)
	require.Len(t, table, 2)

	c, ok := table.Resolve("Adreno (TM) 730", 360, 800)
	require.True(t, ok)
	assert.True(t, c.Unique)
	assert.Equal(t, "Samsung Galaxy S22", c.DisplayName)

	c, ok = table.Resolve("Mali-G57 MC2", 412, 0)
	require.True(t, ok)
	assert.False(t, c.Unique)
	assert.Equal(t, "Samsung Galaxy A25", c.DisplayName, "display name defaults to first model")
}

func TestLoadAndroidTableInvalid(t *testing.T) {
	t.Parallel()

	_, err := fingerprint.LoadAndroidTable(strings.NewReader("- gpu: \"\"\n  width: 100\n  models: [x]\n"))
	assert.ErrorIs(t, err, fingerprint.ErrInvalidTableEntry)

	_, err = fingerprint.LoadAndroidTable(strings.NewReader("not yaml: ["))
	assert.ErrorIs(t, err, fingerprint.ErrInvalidTable)

	_, err = fingerprint.LoadAndroidTable(nil)
	assert.ErrorIs(t, err, fingerprint.ErrInvalidTable)
}

func TestExtendedAndroidTable(t *testing.T) {
	t.Parallel()

	table, err := fingerprint.ExtendedAndroidTable(strings.NewReader(extraTableYAML))
	require.NoError(t, err)

	// Built-ins still resolve and keep priority.
	c, ok := table.Resolve("Adreno (TM) 710", 432, 960)
	require.True(t, ok)
	assert.Contains(t, c.DisplayName, "Moto G84")

	// Extension entries resolve too.
	_, ok = table.Resolve("Adreno (TM) 730", 360, 800)
	assert.True(t, ok)
}
