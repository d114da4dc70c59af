// Package variant provides the resolved representation of a variant
// call record: typed field values, ordered INFO maps, and per-sample
// series with dictionary indices replaced by their header-defined
// names.
package variant
