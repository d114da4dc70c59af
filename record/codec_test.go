package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bcf/header"
	"github.com/hupe1980/bcf/variant"
)

const testHeaderText = "##fileformat=VCFv4.3\n" +
	"##INFO=<ID=NS,Number=1,Type=Integer,Description=\"Number of samples with data\">\n" +
	"##INFO=<ID=DP,Number=1,Type=Integer,Description=\"Total depth\">\n" +
	"##INFO=<ID=AF,Number=A,Type=Float,Description=\"Allele frequency\">\n" +
	"##INFO=<ID=AA,Number=1,Type=String,Description=\"Ancestral allele\">\n" +
	"##INFO=<ID=DB,Number=0,Type=Flag,Description=\"dbSNP membership\">\n" +
	"##INFO=<ID=CG,Number=A,Type=Character,Description=\"Allele class\">\n" +
	"##FILTER=<ID=q10,Description=\"Quality below 10\">\n" +
	"##FORMAT=<ID=GT,Number=1,Type=String,Description=\"Genotype\">\n" +
	"##FORMAT=<ID=DP,Number=1,Type=Integer,Description=\"Read depth\">\n" +
	"##FORMAT=<ID=HQ,Number=2,Type=Integer,Description=\"Haplotype quality\">\n" +
	"##contig=<ID=sq0>\n" +
	"##contig=<ID=sq1>\n" +
	"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\tFORMAT\tsample0\tsample1\n"

// testHeader parses the shared test header and its dictionary set.
// String dictionary: PASS=0, NS=1, DP=2, AF=3, AA=4, DB=5, CG=6,
// q10=7, GT=8, HQ=9. Contigs: sq0=0, sq1=1.
func testHeader(t *testing.T) (*header.Header, *header.StringMaps) {
	t.Helper()

	h, err := header.Parse(testHeaderText)
	require.NoError(t, err)

	maps, err := header.StringMapsFromHeader(h)
	require.NoError(t, err)

	return h, maps
}

func TestReadValueInteger(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		v, _, err := readValue([]byte{0x00}, header.TypeInteger)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("int8 empty", func(t *testing.T) {
		v, _, err := readValue([]byte{0x01}, header.TypeInteger)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("int8 missing", func(t *testing.T) {
		v, _, err := readValue([]byte{0x11, 0x80}, header.TypeInteger)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("int8 scalar", func(t *testing.T) {
		v, _, err := readValue([]byte{0x11, 0x08}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.Integer(8), *v)
	})

	t.Run("int16 scalar", func(t *testing.T) {
		v, _, err := readValue([]byte{0x12, 0x0d, 0x00}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.Integer(13), *v)
	})

	t.Run("int32 scalar", func(t *testing.T) {
		v, _, err := readValue([]byte{0x13, 0x15, 0x00, 0x00, 0x00}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.Integer(21), *v)
	})

	t.Run("int8 array", func(t *testing.T) {
		v, _, err := readValue([]byte{0x21, 0x08, 0x0d}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		require.Equal(t, variant.KindIntegerArray, v.Kind)
		assert.Equal(t, []*int32{ptr(int32(8)), ptr(int32(13))}, v.Ints)
	})

	t.Run("int8 array with missing", func(t *testing.T) {
		v, _, err := readValue([]byte{0x21, 0x08, 0x80}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, []*int32{ptr(int32(8)), nil}, v.Ints)
	})

	t.Run("int16 array", func(t *testing.T) {
		v, _, err := readValue([]byte{0x22, 0x15, 0x00, 0x22, 0x00}, header.TypeInteger)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, []*int32{ptr(int32(21)), ptr(int32(34))}, v.Ints)
	})

	t.Run("int32 array with missing", func(t *testing.T) {
		v, _, err := readValue(
			[]byte{0x23, 0x37, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80},
			header.TypeInteger,
		)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, []*int32{ptr(int32(55)), nil}, v.Ints)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, _, err := readValue([]byte{0x17, 'n'}, header.TypeInteger)

		var tme *TypeMismatchError
		require.ErrorAs(t, err, &tme)
		assert.Equal(t, header.TypeString, tme.Actual)
		assert.Equal(t, header.TypeInteger, tme.Expected)
	})
}

func TestReadValueFlag(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		v, _, err := readValue([]byte{0x00}, header.TypeFlag)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.KindFlag, v.Kind)
	})

	t.Run("int8 one", func(t *testing.T) {
		v, _, err := readValue([]byte{0x11, 0x01}, header.TypeFlag)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.KindFlag, v.Kind)
	})

	t.Run("other payload", func(t *testing.T) {
		_, _, err := readValue([]byte{0x11, 0x02}, header.TypeFlag)

		var tme *TypeMismatchError
		require.ErrorAs(t, err, &tme)
		assert.Equal(t, header.TypeFlag, tme.Expected)
	})
}

func TestReadValueFloat(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		v, _, err := readValue([]byte{0x00}, header.TypeFloat)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("empty", func(t *testing.T) {
		v, _, err := readValue([]byte{0x05}, header.TypeFloat)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("missing", func(t *testing.T) {
		v, _, err := readValue([]byte{0x15, 0x01, 0x00, 0x80, 0x7f}, header.TypeFloat)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scalar", func(t *testing.T) {
		v, _, err := readValue([]byte{0x15, 0x00, 0x00, 0x00, 0x00}, header.TypeFloat)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.Float(0.0), *v)
	})

	t.Run("array with missing", func(t *testing.T) {
		v, _, err := readValue(
			[]byte{0x25, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x80, 0x7f},
			header.TypeFloat,
		)
		require.NoError(t, err)
		require.NotNil(t, v)
		require.Equal(t, variant.KindFloatArray, v.Kind)
		assert.Equal(t, []*float32{ptr(float32(0.0)), nil}, v.Floats)
	})
}

func TestReadValueCharacter(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		v, _, err := readValue([]byte{0x00}, header.TypeCharacter)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("empty", func(t *testing.T) {
		v, _, err := readValue([]byte{0x07}, header.TypeCharacter)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("scalar", func(t *testing.T) {
		v, _, err := readValue([]byte{0x17, 'n'}, header.TypeCharacter)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.Character('n'), *v)
	})

	t.Run("array", func(t *testing.T) {
		v, _, err := readValue([]byte{0x37, 'n', ',', 'd'}, header.TypeCharacter)
		require.NoError(t, err)
		require.NotNil(t, v)
		require.Equal(t, variant.KindCharacterArray, v.Kind)
		assert.Equal(t, []*byte{ptr(byte('n')), ptr(byte('d'))}, v.Characters)
	})

	t.Run("array with missing", func(t *testing.T) {
		v, _, err := readValue([]byte{0x37, 'n', ',', '.'}, header.TypeCharacter)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, []*byte{ptr(byte('n')), nil}, v.Characters)
	})
}

func TestReadValueString(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		v, _, err := readValue([]byte{0x00}, header.TypeString)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("empty", func(t *testing.T) {
		v, _, err := readValue([]byte{0x07}, header.TypeString)
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("value", func(t *testing.T) {
		v, _, err := readValue([]byte{0x47, 'n', 'd', 'l', 's'}, header.TypeString)
		require.NoError(t, err)
		require.NotNil(t, v)
		assert.Equal(t, variant.String("ndls"), *v)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, _, err := readValue([]byte{0x11, 0x08}, header.TypeString)

		var tme *TypeMismatchError
		require.ErrorAs(t, err, &tme)
		assert.Equal(t, header.TypeInteger, tme.Actual)
		assert.Equal(t, header.TypeString, tme.Expected)
	})
}

func TestReadInfo(t *testing.T) {
	h, maps := testHeader(t)

	t.Run("fields", func(t *testing.T) {
		data := []byte{
			0x11, 0x01, 0x11, 0x20, // NS = 32
			0x11, 0x05, 0x00, // DB (flag, absent payload)
			0x11, 0x04, 0x00, // AA = missing
		}

		info, rest, err := ReadInfo(data, h, maps.Strings(), 3)
		require.NoError(t, err)
		assert.Empty(t, rest)

		require.Equal(t, []string{"NS", "DB", "AA"}, info.Keys())

		ns, ok := info.Get("NS")
		require.True(t, ok)
		require.NotNil(t, ns)
		assert.Equal(t, variant.Integer(32), *ns)

		db, ok := info.Get("DB")
		require.True(t, ok)
		require.NotNil(t, db)
		assert.Equal(t, variant.KindFlag, db.Kind)

		aa, ok := info.Get("AA")
		require.True(t, ok)
		assert.Nil(t, aa)
	})

	t.Run("duplicate key", func(t *testing.T) {
		data := []byte{
			0x11, 0x01, 0x11, 0x20, // NS = 32
			0x11, 0x01, 0x11, 0x15, // NS again
		}

		info, _, err := ReadInfo(data, h, maps.Strings(), 2)

		var dke *DuplicateKeyError
		require.ErrorAs(t, err, &dke)
		assert.Equal(t, "NS", dke.Key)
		assert.Nil(t, info)
	})

	t.Run("undefined key", func(t *testing.T) {
		data := []byte{0x11, 0x14, 0x11, 0x20}

		_, _, err := ReadInfo(data, h, maps.Strings(), 1)

		var uke *UndefinedKeyError
		require.ErrorAs(t, err, &uke)
		assert.Equal(t, 20, uke.Index)
	})

	t.Run("undeclared field", func(t *testing.T) {
		data := []byte{0x11, 0x07, 0x11, 0x20} // q10 is a FILTER, not an INFO

		_, _, err := ReadInfo(data, h, maps.Strings(), 1)

		var ufe *UndeclaredFieldError
		require.ErrorAs(t, err, &ufe)
		assert.Equal(t, "q10", ufe.Key)
	})
}

func ptr[T any](v T) *T { return &v }
