package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	t.Run("fileformat", func(t *testing.T) {
		rec, err := ParseRecord("##fileformat=VCFv4.3")
		require.NoError(t, err)
		assert.Equal(t, RecordFileFormat, rec.Kind)
		assert.Equal(t, FileFormat{Major: 4, Minor: 3}, rec.FileFormat)
	})

	t.Run("info", func(t *testing.T) {
		rec, err := ParseRecord(`##INFO=<ID=NS,Number=1,Type=Integer,Description="Number of samples with data",IDX=1>`)
		require.NoError(t, err)
		require.Equal(t, RecordInfo, rec.Kind)
		assert.Equal(t, "NS", rec.Info.ID)
		assert.Equal(t, Number{Kind: NumberKindCount, Count: 1}, rec.Info.Number)
		assert.Equal(t, TypeInteger, rec.Info.Type)
		assert.Equal(t, "Number of samples with data", rec.Info.Description)
		assert.Equal(t, 1, rec.Info.IDX)
	})

	t.Run("info without idx", func(t *testing.T) {
		rec, err := ParseRecord(`##INFO=<ID=AA,Number=1,Type=String,Description="Ancestral allele">`)
		require.NoError(t, err)
		assert.Equal(t, NoIDX, rec.Info.IDX)
	})

	t.Run("info number forms", func(t *testing.T) {
		for raw, want := range map[string]Number{
			"A": {Kind: NumberKindAlternateAlleles},
			"R": {Kind: NumberKindAlleles},
			"G": {Kind: NumberKindGenotypes},
			".": {Kind: NumberKindUnknown},
			"2": {Kind: NumberKindCount, Count: 2},
		} {
			rec, err := ParseRecord(`##INFO=<ID=X,Number=` + raw + `,Type=Integer,Description="">`)
			require.NoError(t, err, "Number=%s", raw)
			assert.Equal(t, want, rec.Info.Number, "Number=%s", raw)
		}
	})

	t.Run("filter", func(t *testing.T) {
		rec, err := ParseRecord(`##FILTER=<ID=q10,Description="Quality below 10">`)
		require.NoError(t, err)
		require.Equal(t, RecordFilter, rec.Kind)
		assert.Equal(t, "q10", rec.Filter.ID)
		assert.Equal(t, "Quality below 10", rec.Filter.Description)
	})

	t.Run("format", func(t *testing.T) {
		rec, err := ParseRecord(`##FORMAT=<ID=GT,Number=1,Type=String,Description="Genotype",IDX=4>`)
		require.NoError(t, err)
		require.Equal(t, RecordFormat, rec.Kind)
		assert.Equal(t, "GT", rec.Format.ID)
		assert.Equal(t, 4, rec.Format.IDX)
	})

	t.Run("format rejects flag", func(t *testing.T) {
		_, err := ParseRecord(`##FORMAT=<ID=DB,Number=0,Type=Flag,Description="">`)
		assert.Error(t, err)
	})

	t.Run("contig", func(t *testing.T) {
		rec, err := ParseRecord(`##contig=<ID=sq0,length=8,md5=d7eba311421bbc9d3ada44709dd61534>`)
		require.NoError(t, err)
		require.Equal(t, RecordContig, rec.Kind)
		assert.Equal(t, "sq0", rec.Contig.ID)
		assert.Equal(t, 8, rec.Contig.Length)
		assert.Equal(t, "d7eba311421bbc9d3ada44709dd61534", rec.Contig.Other["md5"])
	})

	t.Run("alt", func(t *testing.T) {
		rec, err := ParseRecord(`##ALT=<ID=DEL,Description="Deletion">`)
		require.NoError(t, err)
		require.Equal(t, RecordAlternativeAllele, rec.Kind)
		assert.Equal(t, "DEL", rec.Alt.ID)
	})

	t.Run("unstructured other", func(t *testing.T) {
		rec, err := ParseRecord("##fileDate=20210412")
		require.NoError(t, err)
		require.Equal(t, RecordOther, rec.Kind)
		assert.Equal(t, "fileDate", rec.Key)
		assert.Equal(t, "20210412", rec.Value)
	})

	t.Run("structured other", func(t *testing.T) {
		rec, err := ParseRecord(`##META=<ID=Assay,Type=String,Number=.,Values=[WholeGenome, Exome]>`)
		require.NoError(t, err)
		require.Equal(t, RecordOther, rec.Kind)
		assert.Equal(t, "META", rec.Key)
		assert.Equal(t, []Field{
			{Key: "ID", Value: "Assay"},
			{Key: "Type", Value: "String"},
			{Key: "Number", Value: "."},
			{Key: "Values", Value: "[WholeGenome, Exome]"},
		}, rec.Fields)
	})

	t.Run("quoted escapes", func(t *testing.T) {
		rec, err := ParseRecord(`##FILTER=<ID=q10,Description="a \"quoted\" description, with a comma">`)
		require.NoError(t, err)
		assert.Equal(t, `a "quoted" description, with a comma`, rec.Filter.Description)
	})

	t.Run("invalid lines", func(t *testing.T) {
		for _, line := range []string{
			"fileformat=VCFv4.3",
			"##fileformat=VCF43",
			"##INFO=<ID=NS,Number=1>",
			"##INFO=<ID=NS,Number=1,Type=Bogus,Description=x>",
			`##FILTER=<Description="no id">`,
			`##FILTER=<ID=q10,Description="unterminated>`,
			"##INFO=<ID=NS,Number=1,Type=Integer,IDX=-1>",
		} {
			_, err := ParseRecord(line)
			var ire *InvalidRecordError
			assert.ErrorAs(t, err, &ire, "line %q", line)
		}
	})
}
