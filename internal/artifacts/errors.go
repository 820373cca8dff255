package artifacts

import (
	"errors"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

const (
	invalidArgumentMessageConstant          = "invalid argument"
	emptyDocumentMessageConstant            = "yaml file is empty"
	multipleDocumentsMessageConstant        = "yaml file holds more than one document"
	binaryTypeMismatchMessageConstant       = "binary artifact holds an unexpected type"
	pathRequiredMessageConstant             = "path must be provided"
	dataRequiredMessageConstant             = "data must be provided"
	valueRequiredMessageConstant            = "value must be provided"
	trailingJSONDataMessageConstant         = "unexpected data after top-level json value"
	directoryPathRequiredTemplateConstant   = "directory path at index %d must be provided"
	argumentErrorTemplateConstant           = "%w: %s"
	readFileErrorTemplateConstant           = "unable to read %s: %w"
	writeFileErrorTemplateConstant          = "unable to write %s: %w"
	parseYAMLErrorTemplateConstant          = "unable to parse yaml file %s: %w"
	parseJSONErrorTemplateConstant          = "unable to parse json file %s: %w"
	encodeJSONErrorTemplateConstant         = "unable to encode json for %s: %w"
	documentErrorTemplateConstant           = "%s: %w"
	createDirectoryErrorTemplateConstant    = "unable to create directory %s: %w"
	registerBinaryTypeErrorTemplateConstant = "unable to register binary type %T: %v"
	encodeBinaryErrorTemplateConstant       = "unable to encode binary artifact for %s: %w"
	decodeBinaryErrorTemplateConstant       = "unable to decode binary artifact %s: %w"
	binaryTypeMismatchTemplateConstant      = "%w: %s holds %T"
)

// ErrInvalidArgument indicates an operation rejected its arguments before performing any I/O.
var ErrInvalidArgument = errors.New(invalidArgumentMessageConstant)

// ErrEmptyDocument indicates a YAML file parsed to no content.
var ErrEmptyDocument = errors.New(emptyDocumentMessageConstant)

// ErrMultipleDocuments indicates a YAML stream with more than one document.
var ErrMultipleDocuments = errors.New(multipleDocumentsMessageConstant)

// ErrNotMapping indicates a YAML or JSON document whose top-level value is not a mapping.
var ErrNotMapping = configbox.ErrNotMapping

// ErrBinaryTypeMismatch indicates LoadBinaryAs found a value of a different type than requested.
var ErrBinaryTypeMismatch = errors.New(binaryTypeMismatchMessageConstant)

var errTrailingJSONData = errors.New(trailingJSONDataMessageConstant)
