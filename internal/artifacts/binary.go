package artifacts

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"reflect"

	"github.com/spf13/afero"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

// binaryEnvelope carries the stored value as an interface so the concrete
// type travels with the encoded bytes.
type binaryEnvelope struct {
	Value any
}

var boxType = reflect.TypeOf(configbox.Box{})

// Configuration documents are registered up front so a snapshot of one loads
// in any process. configbox registers the containers they hold.
func init() {
	gob.Register(configbox.Box{})
}

// RegisterBinaryType records the concrete type of value with encoding/gob.
// Values saved in one process must have their types registered before a
// different process can load them. Types containing no exported fields,
// functions, or channels cannot be encoded.
func RegisterBinaryType(value any) (registrationError error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			registrationError = fmt.Errorf(registerBinaryTypeErrorTemplateConstant, value, recovered)
		}
	}()
	gob.Register(value)
	return nil
}

// SaveBinary encodes value with encoding/gob and writes it to path. The
// value's concrete type, and the concrete type behind every interface value
// reachable through exported struct fields, slices, arrays, and maps, are
// registered automatically. configbox.Box values are supported.
//
// gob does not preserve every detail of the graph: pointers are stored by
// value, so LoadBinary returns the pointed-to value; empty slices and maps
// load as nil; unexported struct fields are dropped. The encoding is only
// meant to be read back by the same build of this program.
func (store *Store) SaveBinary(value any, path string) error {
	if validationError := validatePath(path); validationError != nil {
		return validationError
	}
	value = dereference(value)
	if value == nil {
		return fmt.Errorf(argumentErrorTemplateConstant, ErrInvalidArgument, valueRequiredMessageConstant)
	}

	if registrationError := registerNestedTypes(value); registrationError != nil {
		return fmt.Errorf(encodeBinaryErrorTemplateConstant, path, registrationError)
	}

	var encodedArtifact bytes.Buffer
	if encodeError := gob.NewEncoder(&encodedArtifact).Encode(binaryEnvelope{Value: value}); encodeError != nil {
		return fmt.Errorf(encodeBinaryErrorTemplateConstant, path, encodeError)
	}

	if writeError := afero.WriteFile(store.fileSystem, path, encodedArtifact.Bytes(), artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeFileErrorTemplateConstant, path, writeError)
	}

	store.logPath(binarySavedMessageConstant, path)
	return nil
}

// LoadBinary decodes the value stored at path by SaveBinary.
func (store *Store) LoadBinary(path string) (any, error) {
	if validationError := validatePath(path); validationError != nil {
		return nil, validationError
	}

	binaryFile, openError := store.fileSystem.Open(path)
	if openError != nil {
		return nil, fmt.Errorf(readFileErrorTemplateConstant, path, openError)
	}
	defer binaryFile.Close()

	var envelope binaryEnvelope
	if decodeError := gob.NewDecoder(binaryFile).Decode(&envelope); decodeError != nil {
		return nil, fmt.Errorf(decodeBinaryErrorTemplateConstant, path, decodeError)
	}

	store.logPath(binaryLoadedMessageConstant, path)
	return envelope.Value, nil
}

// LoadBinaryAs loads the value stored at path and asserts it to T.
func LoadBinaryAs[T any](store *Store, path string) (T, error) {
	var typedValue T

	value, loadError := store.LoadBinary(path)
	if loadError != nil {
		return typedValue, loadError
	}

	typedValue, matches := value.(T)
	if !matches {
		return typedValue, fmt.Errorf(binaryTypeMismatchTemplateConstant, ErrBinaryTypeMismatch, path, value)
	}

	return typedValue, nil
}

func dereference(value any) any {
	reflected := reflect.ValueOf(value)
	for reflected.Kind() == reflect.Pointer {
		if reflected.IsNil() {
			return nil
		}
		reflected = reflected.Elem()
	}
	if !reflected.IsValid() {
		return nil
	}
	return reflected.Interface()
}

func registerNestedTypes(value any) error {
	value = dereference(value)
	if value == nil {
		return nil
	}
	if registrationError := RegisterBinaryType(value); registrationError != nil {
		return registrationError
	}
	return registerInterfaceValues(reflect.ValueOf(value), make(map[uintptr]struct{}))
}

// registerInterfaceValues walks exported struct fields, slices, arrays, and
// maps, registering the concrete type behind every non-nil interface value.
func registerInterfaceValues(reflected reflect.Value, visited map[uintptr]struct{}) error {
	switch reflected.Kind() {
	case reflect.Interface:
		if reflected.IsNil() {
			return nil
		}
		concreteType := reflected.Elem().Type()
		for concreteType.Kind() == reflect.Pointer {
			concreteType = concreteType.Elem()
		}
		if registrationError := RegisterBinaryType(reflect.Zero(concreteType).Interface()); registrationError != nil {
			return registrationError
		}
		return registerInterfaceValues(reflected.Elem(), visited)
	case reflect.Pointer:
		if reflected.IsNil() {
			return nil
		}
		if _, seen := visited[reflected.Pointer()]; seen {
			return nil
		}
		visited[reflected.Pointer()] = struct{}{}
		return registerInterfaceValues(reflected.Elem(), visited)
	case reflect.Struct:
		if reflected.Type() == boxType && reflected.CanInterface() {
			return registerInterfaceValues(reflect.ValueOf(reflected.Interface().(configbox.Box).Map()), visited)
		}
		for fieldIndex := 0; fieldIndex < reflected.NumField(); fieldIndex++ {
			if !reflected.Type().Field(fieldIndex).IsExported() {
				continue
			}
			if registrationError := registerInterfaceValues(reflected.Field(fieldIndex), visited); registrationError != nil {
				return registrationError
			}
		}
	case reflect.Slice, reflect.Array:
		if !mayHoldInterfaces(reflected.Type().Elem()) {
			return nil
		}
		for index := 0; index < reflected.Len(); index++ {
			if registrationError := registerInterfaceValues(reflected.Index(index), visited); registrationError != nil {
				return registrationError
			}
		}
	case reflect.Map:
		iterator := reflected.MapRange()
		for iterator.Next() {
			if registrationError := registerInterfaceValues(iterator.Key(), visited); registrationError != nil {
				return registrationError
			}
			if registrationError := registerInterfaceValues(iterator.Value(), visited); registrationError != nil {
				return registrationError
			}
		}
	}

	return nil
}

func mayHoldInterfaces(elementType reflect.Type) bool {
	switch elementType.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
