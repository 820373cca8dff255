package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

// SaveJSON writes data to path as JSON indented with four spaces, replacing
// any existing file. The document is encoded in memory first, so an encoding
// failure leaves an existing file intact.
func (store *Store) SaveJSON(path string, data map[string]any) error {
	if validationError := validatePath(path); validationError != nil {
		return validationError
	}
	if data == nil {
		return fmt.Errorf(argumentErrorTemplateConstant, ErrInvalidArgument, dataRequiredMessageConstant)
	}

	var encodedDocument bytes.Buffer
	encoder := json.NewEncoder(&encodedDocument)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent(jsonPrefixConstant, jsonIndentConstant)
	if encodeError := encoder.Encode(data); encodeError != nil {
		return fmt.Errorf(encodeJSONErrorTemplateConstant, path, encodeError)
	}

	if writeError := afero.WriteFile(store.fileSystem, path, encodedDocument.Bytes(), artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(writeFileErrorTemplateConstant, path, writeError)
	}

	store.logPath(jsonSavedMessageConstant, path)
	return nil
}

// LoadJSON parses the JSON object stored at path into a Box. Numbers are kept
// as json.Number so integers survive the round trip without float rounding.
func (store *Store) LoadJSON(path string) (configbox.Box, error) {
	if validationError := validatePath(path); validationError != nil {
		return configbox.Box{}, validationError
	}

	jsonFile, openError := store.fileSystem.Open(path)
	if openError != nil {
		return configbox.Box{}, fmt.Errorf(readFileErrorTemplateConstant, path, openError)
	}
	defer jsonFile.Close()

	decoder := json.NewDecoder(jsonFile)
	decoder.UseNumber()

	var content any
	if decodeError := decoder.Decode(&content); decodeError != nil {
		if errors.Is(decodeError, io.EOF) {
			decodeError = io.ErrUnexpectedEOF
		}
		return configbox.Box{}, fmt.Errorf(parseJSONErrorTemplateConstant, path, decodeError)
	}

	var trailing any
	if trailingError := decoder.Decode(&trailing); !errors.Is(trailingError, io.EOF) {
		if trailingError == nil {
			trailingError = errTrailingJSONData
		}
		return configbox.Box{}, fmt.Errorf(parseJSONErrorTemplateConstant, path, trailingError)
	}

	document, shapeError := configbox.FromValue(content)
	if shapeError != nil {
		return configbox.Box{}, fmt.Errorf(documentErrorTemplateConstant, path, shapeError)
	}

	store.logPath(jsonLoadedMessageConstant, path)
	return document, nil
}
