package corpus_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/corpus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `id|full_name|manufacturer|device_type|operating_system|bands|lte|5g|sim_slots|euicc
100|Apple iPhone 14|Apple|Smartphone|iOS|LTE bands 1-66|Yes|Yes|1|Yes
101|Not in Signaling|||||||0|No
102|Not Known|||||||0|No
103||Unknown|||||No|No|0|No
104|Moto G84|Motorola|Smartphone|Android|LTE bands 1-40|yes|no|2|1
bogus|Broken Row|X|Smartphone|Android||No|No|1|No
105|Samsung Galaxy S23|Samsung|Smartphone|Android|LTE bands 1-71|1|1|1|true
`

func TestImport(t *testing.T) {
	t.Parallel()

	res, err := corpus.Import(strings.NewReader(sampleSource))
	require.NoError(t, err)

	assert.NotEmpty(t, res.BatchID)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, 4, res.Skipped, "two sentinels, one empty name, one bad identifier")
	require.Len(t, res.Records, 3)

	iphone := res.Records[0]
	assert.Equal(t, int64(100), iphone.ID)
	assert.Equal(t, "Apple iPhone 14", iphone.FullName)
	assert.Equal(t, "Apple", iphone.Manufacturer)
	assert.True(t, iphone.LTESupport)
	assert.True(t, iphone.FiveGSupport)
	assert.Equal(t, 1, iphone.SIMSlotCount)
	assert.True(t, iphone.EUICC)

	moto := res.Records[1]
	assert.Equal(t, "Moto G84", moto.FullName)
	assert.True(t, moto.LTESupport, "lowercase yes accepted")
	assert.False(t, moto.FiveGSupport)
	assert.Equal(t, 2, moto.SIMSlotCount)
	assert.True(t, moto.EUICC, "numeric flag accepted")

	s23 := res.Records[2]
	assert.True(t, s23.EUICC, "true spelling accepted")
}

func TestImportFlagSpellings(t *testing.T) {
	t.Parallel()

	src := "id|name|mfr|type|os|bands|lte|5g|slots|euicc\n" +
		"1|Device A|X|Smartphone|Android||Y|N|1|y\n" +
		"2|Device B|X|Smartphone|Android||no|0|1|NO\n"
	res, err := corpus.Import(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	assert.True(t, res.Records[0].LTESupport)
	assert.True(t, res.Records[0].EUICC)
	assert.False(t, res.Records[1].LTESupport)
	assert.False(t, res.Records[1].EUICC)
}

func TestImportNilSource(t *testing.T) {
	t.Parallel()
	_, err := corpus.Import(nil)
	assert.ErrorIs(t, err, corpus.ErrInvalidSource)
}

func TestImportHeaderOnly(t *testing.T) {
	t.Parallel()
	res, err := corpus.Import(strings.NewReader("id|name|mfr|type|os|bands|lte|5g|slots|euicc\n"))
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Records)
}
