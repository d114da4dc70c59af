package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bcf/variant"
)

// testSite builds the site buffer shared by the projection tests:
// sq1:1000 rs123 A C 6.0 PASS NS=32;DB with two samples.
func testSite() []byte {
	return []byte{
		0x01, 0x00, 0x00, 0x00, // chromosome id = 1 (sq1)
		0xe7, 0x03, 0x00, 0x00, // position = 999 (0-based)
		0x01, 0x00, 0x00, 0x00, // span = 1
		0x00, 0x00, 0xc0, 0x40, // quality = 6.0
		0x02, 0x00, // info count = 2
		0x02, 0x00, // allele count = 2
		0x02, 0x00, 0x00, // sample count = 2
		0x03,                          // format key count = 3
		0x57, 'r', 's', '1', '2', '3', // ids = "rs123"
		0x17, 'A', // reference bases = "A"
		0x17, 'C', // alternate bases = "C"
		0x11, 0x00, // filters = [0] (PASS)
		0x11, 0x01, 0x11, 0x20, // NS = 32
		0x11, 0x05, 0x00, // DB
	}
}

func TestRecordVariant(t *testing.T) {
	h, maps := testHeader(t)

	r, err := New(testSite(), testSamplesData())
	require.NoError(t, err)

	v, err := r.Variant(h, maps)
	require.NoError(t, err)

	assert.Equal(t, "sq1", v.Chromosome)
	assert.Equal(t, 1000, v.Position)
	assert.Equal(t, []string{"rs123"}, v.IDs)
	assert.Equal(t, "A", v.ReferenceBases)
	assert.Equal(t, []string{"C"}, v.AlternateBases)
	require.NotNil(t, v.QualityScore)
	assert.Equal(t, float32(6.0), *v.QualityScore)
	assert.Equal(t, []string{"PASS"}, v.Filters)

	require.NotNil(t, v.Info)
	assert.Equal(t, []string{"NS", "DB"}, v.Info.Keys())
	ns, ok := v.Info.Get("NS")
	require.True(t, ok)
	require.NotNil(t, ns)
	assert.Equal(t, variant.Integer(32), *ns)

	require.NotNil(t, v.Samples)
	assert.Equal(t, []string{"GT", "DP", "HQ"}, v.Samples.Keys())
	assert.Equal(t, 2, v.Samples.Len())
}

func TestRecordVariantDefault(t *testing.T) {
	h, maps := testHeader(t)

	r, err := New(defaultSite(), nil)
	require.NoError(t, err)

	v, err := r.Variant(h, maps)
	require.NoError(t, err)

	assert.Equal(t, "sq0", v.Chromosome)
	assert.Equal(t, 1, v.Position)
	assert.Nil(t, v.IDs)
	assert.Equal(t, "N", v.ReferenceBases)
	assert.Empty(t, v.AlternateBases)
	assert.Nil(t, v.QualityScore)
	assert.Nil(t, v.Filters)
	require.NotNil(t, v.Info)
	assert.Zero(t, v.Info.Len())
	assert.Nil(t, v.Samples)
}

func TestRecordVariantErrors(t *testing.T) {
	h, maps := testHeader(t)

	t.Run("unknown contig", func(t *testing.T) {
		site := testSite()
		site[chromosomeIDOffset] = 0x07

		r, err := New(site, testSamplesData())
		require.NoError(t, err)

		_, err = r.Variant(h, maps)

		var uce *UnknownContigError
		require.ErrorAs(t, err, &uce)
		assert.Equal(t, 7, uce.Index)
	})

	t.Run("unknown filter", func(t *testing.T) {
		site := testSite()
		site[35] = 0x14 // filters = [20]

		r, err := New(site, testSamplesData())
		require.NoError(t, err)

		_, err = r.Variant(h, maps)

		var ufe *UnknownFilterError
		require.ErrorAs(t, err, &ufe)
		assert.Equal(t, 20, ufe.Index)
	})

	t.Run("invalid reference bases", func(t *testing.T) {
		site := testSite()
		site[31] = 0xff // ref = invalid UTF-8

		r, err := New(site, testSamplesData())
		require.NoError(t, err)

		_, err = r.Variant(h, maps)
		require.ErrorIs(t, err, ErrInvalidData)
	})
}
