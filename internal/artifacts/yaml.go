package artifacts

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

// ReadYAML parses the YAML file at path into a Box.
//
// YAML tags are treated as data; nothing in the document is executed. A file
// without content, holding only comments, or holding a single null document
// fails with ErrEmptyDocument. A document whose top level is not a mapping
// fails with ErrNotMapping, and a stream holding more than one document fails
// with ErrMultipleDocuments. Other read and parse failures are returned wrapped.
func (store *Store) ReadYAML(path string) (configbox.Box, error) {
	if validationError := validatePath(path); validationError != nil {
		return configbox.Box{}, validationError
	}

	yamlFile, openError := store.fileSystem.Open(path)
	if openError != nil {
		return configbox.Box{}, fmt.Errorf(readFileErrorTemplateConstant, path, openError)
	}
	defer yamlFile.Close()

	decoder := yaml.NewDecoder(yamlFile)

	var content any
	decodeError := decoder.Decode(&content)
	switch {
	case errors.Is(decodeError, io.EOF):
		return configbox.Box{}, fmt.Errorf(documentErrorTemplateConstant, path, ErrEmptyDocument)
	case decodeError != nil:
		return configbox.Box{}, fmt.Errorf(parseYAMLErrorTemplateConstant, path, decodeError)
	case content == nil:
		return configbox.Box{}, fmt.Errorf(documentErrorTemplateConstant, path, ErrEmptyDocument)
	}

	var extraDocument any
	if extraError := decoder.Decode(&extraDocument); !errors.Is(extraError, io.EOF) {
		if extraError == nil {
			extraError = ErrMultipleDocuments
		}
		return configbox.Box{}, fmt.Errorf(parseYAMLErrorTemplateConstant, path, extraError)
	}

	document, shapeError := configbox.FromValue(content)
	if shapeError != nil {
		return configbox.Box{}, fmt.Errorf(documentErrorTemplateConstant, path, shapeError)
	}

	store.logPath(yamlLoadedMessageConstant, path)
	return document, nil
}
