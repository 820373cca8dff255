// Package configbox wraps parsed configuration trees in Box, a read-only value
// that exposes fields by key, by dotted path, through typed accessors backed by
// spf13/cast, and by decoding into typed structs with mapstructure.
package configbox
