package configbox

import (
	"errors"
	"fmt"
)

const (
	notMappingMessageConstant            = "value is not a mapping"
	decodeTargetRequiredMessageConstant  = "decode target must be provided"
	missingKeyErrorTemplateConstant      = "configuration key %q not found"
	keyErrorTemplateConstant             = "configuration key %q: %w"
	decoderCreationErrorTemplateConstant = "unable to create decoder: %w"
	decodeFailureErrorTemplateConstant   = "unable to decode configuration: %w"
	gobEncodeErrorTemplateConstant       = "unable to gob-encode configuration: %w"
	gobDecodeErrorTemplateConstant       = "unable to gob-decode configuration: %w"
)

// ErrNotMapping indicates a value expected to be a mapping holds another kind of data.
var ErrNotMapping = errors.New(notMappingMessageConstant)

// ErrDecodeTargetRequired indicates Decode received a nil target.
var ErrDecodeTargetRequired = errors.New(decodeTargetRequiredMessageConstant)

// MissingKeyError reports a lookup of a key that is absent from the Box.
type MissingKeyError struct {
	Key string
}

// Error describes the missing key.
func (missingKeyError MissingKeyError) Error() string {
	return fmt.Sprintf(missingKeyErrorTemplateConstant, missingKeyError.Key)
}
