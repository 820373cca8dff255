package configbox

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"
	"sort"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
)

const (
	keyPathSeparatorConstant = "."
	mapstructureTagConstant  = "mapstructure"
)

// The generic containers a parsed document holds are registered so GobEncode
// works without further setup.
func init() {
	gob.Register(map[string]any{})
	gob.Register([]any{})
}

// Box is a read-only view over a parsed configuration mapping. Nested
// mappings, slices, and typed maps are copied on the way in and on the way
// out; structs and pointers stored in the mapping are shared.
type Box struct {
	values map[string]any
}

// New wraps the mapping in a Box. The mapping is copied and nested
// map[any]any values are normalized to map[string]any.
func New(values map[string]any) Box {
	return Box{values: normalizeMapping(values)}
}

// FromValue wraps an arbitrary decoded value, failing with ErrNotMapping when
// the value is not a mapping.
func FromValue(value any) (Box, error) {
	switch typedValue := value.(type) {
	case map[string]any:
		return New(typedValue), nil
	case map[any]any:
		return Box{values: normalizeMapping(typedValue)}, nil
	case Box:
		return typedValue, nil
	default:
		return Box{}, fmt.Errorf("%w: %T", ErrNotMapping, value)
	}
}

// Len returns the number of top-level keys.
func (box Box) Len() int {
	return len(box.values)
}

// Keys returns the top-level keys in sorted order.
func (box Box) Keys() []string {
	keys := make([]string, 0, len(box.values))
	for key := range box.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a deep copy of the underlying mapping.
func (box Box) Map() map[string]any {
	return normalizeMapping(box.values)
}

// Has reports whether the key or dotted path resolves to a value.
func (box Box) Has(key string) bool {
	_, found := box.Get(key)
	return found
}

// Get resolves a top-level key or a dotted path such as "data_ingestion.root_dir".
// A literal top-level key containing dots takes precedence over path traversal.
func (box Box) Get(key string) (any, bool) {
	if value, found := box.values[key]; found {
		return copyValue(value), true
	}

	segments := strings.Split(key, keyPathSeparatorConstant)
	if len(segments) < 2 {
		return nil, false
	}

	var current any = box.values
	for _, segment := range segments {
		mapping, isMapping := current.(map[string]any)
		if !isMapping {
			return nil, false
		}
		next, found := mapping[segment]
		if !found {
			return nil, false
		}
		current = next
	}

	return copyValue(current), true
}

// StringE returns the value at key converted to a string.
func (box Box) StringE(key string) (string, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return "", lookupError
	}
	converted, conversionError := cast.ToStringE(value)
	if conversionError != nil {
		return "", fmt.Errorf(keyErrorTemplateConstant, key, conversionError)
	}
	return converted, nil
}

// String returns the value at key as a string, or an empty string when absent or unconvertible.
func (box Box) String(key string) string {
	converted, _ := box.StringE(key)
	return converted
}

// IntE returns the value at key converted to an int.
func (box Box) IntE(key string) (int, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return 0, lookupError
	}
	converted, conversionError := cast.ToIntE(value)
	if conversionError != nil {
		return 0, fmt.Errorf(keyErrorTemplateConstant, key, conversionError)
	}
	return converted, nil
}

// Int returns the value at key as an int, or zero.
func (box Box) Int(key string) int {
	converted, _ := box.IntE(key)
	return converted
}

// FloatE returns the value at key converted to a float64.
func (box Box) FloatE(key string) (float64, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return 0, lookupError
	}
	converted, conversionError := cast.ToFloat64E(value)
	if conversionError != nil {
		return 0, fmt.Errorf(keyErrorTemplateConstant, key, conversionError)
	}
	return converted, nil
}

// Float returns the value at key as a float64, or zero.
func (box Box) Float(key string) float64 {
	converted, _ := box.FloatE(key)
	return converted
}

// BoolE returns the value at key converted to a bool.
func (box Box) BoolE(key string) (bool, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return false, lookupError
	}
	converted, conversionError := cast.ToBoolE(value)
	if conversionError != nil {
		return false, fmt.Errorf(keyErrorTemplateConstant, key, conversionError)
	}
	return converted, nil
}

// Bool returns the value at key as a bool, or false.
func (box Box) Bool(key string) bool {
	converted, _ := box.BoolE(key)
	return converted
}

// StringSliceE returns the value at key converted to a string slice.
func (box Box) StringSliceE(key string) ([]string, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return nil, lookupError
	}
	converted, conversionError := cast.ToStringSliceE(value)
	if conversionError != nil {
		return nil, fmt.Errorf(keyErrorTemplateConstant, key, conversionError)
	}
	return converted, nil
}

// Section returns the nested mapping at key as its own Box.
func (box Box) Section(key string) (Box, error) {
	value, lookupError := box.require(key)
	if lookupError != nil {
		return Box{}, lookupError
	}
	section, sectionError := FromValue(value)
	if sectionError != nil {
		return Box{}, fmt.Errorf(keyErrorTemplateConstant, key, sectionError)
	}
	return section, nil
}

// Decode populates target, a pointer to a struct or map, from the Box using
// mapstructure tags. Scalar values are converted weakly, so "8" decodes into an
// int field and json.Number values decode into numeric fields.
func (box Box) Decode(target any) error {
	if target == nil {
		return ErrDecodeTargetRequired
	}

	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          mapstructureTagConstant,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if decoderError != nil {
		return fmt.Errorf(decoderCreationErrorTemplateConstant, decoderError)
	}

	if decodeError := decoder.Decode(box.Map()); decodeError != nil {
		return fmt.Errorf(decodeFailureErrorTemplateConstant, decodeError)
	}

	return nil
}

// GobEncode encodes the mapping so a Box can be stored with encoding/gob.
// Concrete types held in the mapping must be registered with gob.
func (box Box) GobEncode() ([]byte, error) {
	var encoded bytes.Buffer
	if encodeError := gob.NewEncoder(&encoded).Encode(box.Map()); encodeError != nil {
		return nil, fmt.Errorf(gobEncodeErrorTemplateConstant, encodeError)
	}
	return encoded.Bytes(), nil
}

// GobDecode restores a Box written by GobEncode.
func (box *Box) GobDecode(data []byte) error {
	var values map[string]any
	if decodeError := gob.NewDecoder(bytes.NewReader(data)).Decode(&values); decodeError != nil {
		return fmt.Errorf(gobDecodeErrorTemplateConstant, decodeError)
	}
	box.values = normalizeMapping(values)
	return nil
}

func (box Box) require(key string) (any, error) {
	value, found := box.Get(key)
	if !found {
		return nil, MissingKeyError{Key: key}
	}
	return value, nil
}

func normalizeMapping[K comparable](values map[K]any) map[string]any {
	normalized := make(map[string]any, len(values))
	for key, value := range values {
		normalized[cast.ToString(key)] = copyValue(value)
	}
	return normalized
}

func copyValue(value any) any {
	switch typedValue := value.(type) {
	case map[string]any:
		return normalizeMapping(typedValue)
	case map[any]any:
		return normalizeMapping(typedValue)
	case []any:
		copied := make([]any, len(typedValue))
		for index := range typedValue {
			copied[index] = copyValue(typedValue[index])
		}
		return copied
	case Box:
		return typedValue.Map()
	default:
		return copyTypedContainer(value)
	}
}

func copyTypedContainer(value any) any {
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Slice:
		if reflected.IsNil() {
			return value
		}
		copied := reflect.MakeSlice(reflected.Type(), reflected.Len(), reflected.Len())
		for index := 0; index < reflected.Len(); index++ {
			copied.Index(index).Set(copyElement(reflected.Index(index)))
		}
		return copied.Interface()
	case reflect.Map:
		if reflected.IsNil() {
			return value
		}
		copied := reflect.MakeMapWithSize(reflected.Type(), reflected.Len())
		iterator := reflected.MapRange()
		for iterator.Next() {
			copied.SetMapIndex(iterator.Key(), copyElement(iterator.Value()))
		}
		return copied.Interface()
	default:
		return value
	}
}

func copyElement(element reflect.Value) reflect.Value {
	if !element.CanInterface() {
		return element
	}
	copied := copyValue(element.Interface())
	if copied == nil {
		return reflect.Zero(element.Type())
	}
	copiedValue := reflect.ValueOf(copied)
	if !copiedValue.Type().AssignableTo(element.Type()) {
		return element
	}
	return copiedValue
}
