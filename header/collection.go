package header

// collection is an insertion-ordered id-addressed table. Re-adding an
// existing id replaces its value in place without changing its position.
type collection[T any] struct {
	ids []string
	m   map[string]T
}

func (c *collection[T]) Add(id string, v T) {
	if c.m == nil {
		c.m = make(map[string]T)
	}
	if _, ok := c.m[id]; !ok {
		c.ids = append(c.ids, id)
	}
	c.m[id] = v
}

func (c *collection[T]) Get(id string) (T, bool) {
	v, ok := c.m[id]
	return v, ok
}

func (c *collection[T]) IDs() []string {
	return c.ids
}

func (c *collection[T]) Len() int {
	return len(c.ids)
}

// Infos is an insertion-ordered table of INFO declarations.
type Infos struct{ collection[*Info] }

// Filters is an insertion-ordered table of FILTER declarations.
type Filters struct{ collection[*Filter] }

// Formats is an insertion-ordered table of FORMAT declarations.
type Formats struct{ collection[*Format] }

// Contigs is an insertion-ordered table of contig declarations.
type Contigs struct{ collection[*Contig] }

// AlternativeAlleles is an insertion-ordered table of ALT declarations.
type AlternativeAlleles struct{ collection[*AlternativeAllele] }
