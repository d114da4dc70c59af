package variant

// Info is an order-preserving map of INFO fields.
//
// A key bound to a nil value is present but carries no data (a missing
// value), which is distinct from the key being absent.
type Info struct {
	keys   []string
	values map[string]*Value
}

// NewInfo returns an empty Info map.
func NewInfo() *Info {
	return &Info{values: make(map[string]*Value)}
}

// Insert binds key to v, appending the key if new. It returns the
// previous value and whether the key was already present.
func (i *Info) Insert(key string, v *Value) (*Value, bool) {
	prev, ok := i.values[key]
	if !ok {
		i.keys = append(i.keys, key)
	}
	i.values[key] = v
	return prev, ok
}

// Get returns the value bound to key. The second return is false when
// the key is absent.
func (i *Info) Get(key string) (*Value, bool) {
	v, ok := i.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (i *Info) Keys() []string {
	return i.keys
}

// Len returns the number of fields.
func (i *Info) Len() int {
	return len(i.keys)
}
