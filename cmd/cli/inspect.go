package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/utils/paths"
)

const (
	inspectCommandUseConstant              = "inspect <file> [key]"
	inspectCommandShortDescriptionConstant = "Print a configuration or artifact value"
	inspectCommandLongDescriptionConstant  = "inspect loads a YAML (.yaml, .yml), JSON (.json), or binary (.bin, .gob) artifact and prints the value stored at the dotted key, or the whole document as YAML when no key is given."
	inspectCommandExampleConstant          = "dsp inspect config/config.yaml data_ingestion.root_dir"
	yamlExtensionConstant                  = ".yaml"
	ymlExtensionConstant                   = ".yml"
	jsonExtensionConstant                  = ".json"
	binExtensionConstant                   = ".bin"
	gobExtensionConstant                   = ".gob"
	unsupportedExtensionTemplateConstant   = "unsupported artifact extension %q for %s"
	renderValueErrorTemplateConstant       = "unable to render value: %w"
	binaryDocumentErrorTemplateConstant    = "%s: %w"
)

// InspectCommandBuilder assembles the inspect command.
type InspectCommandBuilder struct {
	StoreProvider  StoreProvider
	PathNormalizer *paths.Normalizer
}

// Build constructs the inspect command.
func (builder *InspectCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     inspectCommandUseConstant,
		Short:   inspectCommandShortDescriptionConstant,
		Long:    inspectCommandLongDescriptionConstant,
		Example: inspectCommandExampleConstant,
		Args:    cobra.RangeArgs(1, 2),
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *InspectCommandBuilder) run(command *cobra.Command, arguments []string) error {
	artifactPath := builder.PathNormalizer.Expand(strings.TrimSpace(arguments[0]))

	document, loadError := builder.load(artifactPath)
	if loadError != nil {
		return loadError
	}

	var value any = document.Map()
	if len(arguments) > 1 {
		key := strings.TrimSpace(arguments[1])
		lookedUp, found := document.Get(key)
		if !found {
			return configbox.MissingKeyError{Key: key}
		}
		value = lookedUp
	}

	rendered, renderError := renderValue(value)
	if renderError != nil {
		return fmt.Errorf(renderValueErrorTemplateConstant, renderError)
	}

	fmt.Fprint(command.OutOrStdout(), rendered)
	return nil
}

func (builder *InspectCommandBuilder) load(artifactPath string) (configbox.Box, error) {
	store := resolveStore(builder.StoreProvider)

	switch strings.ToLower(filepath.Ext(artifactPath)) {
	case yamlExtensionConstant, ymlExtensionConstant:
		return store.ReadYAML(artifactPath)
	case jsonExtensionConstant:
		return store.LoadJSON(artifactPath)
	case binExtensionConstant, gobExtensionConstant:
		value, loadError := store.LoadBinary(artifactPath)
		if loadError != nil {
			return configbox.Box{}, loadError
		}
		document, conversionError := configbox.FromValue(value)
		if conversionError != nil {
			return configbox.Box{}, fmt.Errorf(binaryDocumentErrorTemplateConstant, artifactPath, conversionError)
		}
		return document, nil
	default:
		return configbox.Box{}, fmt.Errorf(unsupportedExtensionTemplateConstant, filepath.Ext(artifactPath), artifactPath)
	}
}

// renderValue prints scalars on a single line and containers as YAML.
func renderValue(value any) (string, error) {
	switch value.(type) {
	case map[string]any, []any:
		encoded, marshalError := yaml.Marshal(plainNumbers(value))
		if marshalError != nil {
			return "", marshalError
		}
		return string(encoded), nil
	}

	scalar, conversionError := cast.ToStringE(value)
	if conversionError != nil {
		return "", conversionError
	}
	return scalar + "\n", nil
}

// plainNumbers replaces json.Number values so YAML renders them unquoted.
func plainNumbers(value any) any {
	switch typedValue := value.(type) {
	case map[string]any:
		converted := make(map[string]any, len(typedValue))
		for key, nestedValue := range typedValue {
			converted[key] = plainNumbers(nestedValue)
		}
		return converted
	case []any:
		converted := make([]any, len(typedValue))
		for index, nestedValue := range typedValue {
			converted[index] = plainNumbers(nestedValue)
		}
		return converted
	case json.Number:
		if integerValue, integerError := typedValue.Int64(); integerError == nil {
			return integerValue
		}
		if floatValue, floatError := typedValue.Float64(); floatError == nil {
			return floatValue
		}
		return typedValue.String()
	default:
		return value
	}
}
