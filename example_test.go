package bcf_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bcf"
)

func Example() {
	rawHeader := "##fileformat=VCFv4.3\n" +
		"##INFO=<ID=NS,Number=1,Type=Integer,Description=\"Number of samples with data\">\n" +
		"##contig=<ID=sq0>\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n"

	h, maps, err := bcf.ParseHeader(rawHeader)
	if err != nil {
		log.Fatal(err)
	}

	site := []byte{
		0x00, 0x00, 0x00, 0x00, // chromosome id = 0
		0x07, 0x00, 0x00, 0x00, // position = 7 (0-based)
		0x01, 0x00, 0x00, 0x00, // span = 1
		0x01, 0x00, 0x80, 0x7f, // quality = missing
		0x01, 0x00, // info count = 1
		0x02, 0x00, // allele count = 2
		0x00, 0x00, 0x00, // sample count = 0
		0x00,      // format key count = 0
		0x07,      // ids = ""
		0x17, 'A', // reference bases = "A"
		0x17, 'T', // alternate bases = "T"
		0x11, 0x00, // filters = [0] (PASS)
		0x11, 0x01, 0x11, 0x02, // NS = 2
	}

	r, err := bcf.NewRecord(site, nil)
	if err != nil {
		log.Fatal(err)
	}

	v, err := r.Variant(h, maps)
	if err != nil {
		log.Fatal(err)
	}

	ns, _ := v.Info.Get("NS")

	fmt.Printf("%s:%d %s>%s %v NS=%d\n",
		v.Chromosome, v.Position, v.ReferenceBases, v.AlternateBases[0], v.Filters, ns.Int)
	// Output:
	// sq0:8 A>T [PASS] NS=2
}
