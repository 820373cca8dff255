package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/artifacts"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

const (
	artifactsRootKeyConstant               = "artifacts_root"
	rootDirectoryKeyConstant               = "root_dir"
	keyPathSeparatorConstant               = "."
	storeMissingMessageConstant            = "artifact store not configured"
	configPathMissingMessageConstant       = "configuration file path must be provided"
	stageNameMissingMessageConstant        = "stage name must be provided"
	artifactsRootMissingTemplateConstant   = "configuration %s does not define %s"
	loadConfigurationErrorTemplateConstant = "unable to load %s: %w"
	stageSectionErrorTemplateConstant      = "stage %q: %w"
	prepareStageErrorTemplateConstant      = "unable to prepare stage %q: %w"
)

// ErrStoreNotConfigured indicates the artifact store dependency was missing.
var ErrStoreNotConfigured = errors.New(storeMissingMessageConstant)

// ErrConfigPathRequired indicates Paths.Config was empty.
var ErrConfigPathRequired = errors.New(configPathMissingMessageConstant)

// ErrStageNameRequired indicates Stage received an empty stage name.
var ErrStageNameRequired = errors.New(stageNameMissingMessageConstant)

// Paths locates the project's configuration files. Params and Schema are optional.
type Paths struct {
	Config string
	Params string
	Schema string
}

// ConfigurationManager exposes the loaded project configuration.
type ConfigurationManager struct {
	store         *artifacts.Store
	configuration configbox.Box
	parameters    configbox.Box
	schema        configbox.Box
	artifactsRoot string
}

// NewConfigurationManager loads the configuration files named by paths and
// creates the artifacts root declared by the configuration's artifacts_root key.
func NewConfigurationManager(store *artifacts.Store, paths Paths) (*ConfigurationManager, error) {
	if store == nil {
		return nil, ErrStoreNotConfigured
	}
	if len(strings.TrimSpace(paths.Config)) == 0 {
		return nil, ErrConfigPathRequired
	}

	configuration, configurationError := store.ReadYAML(paths.Config)
	if configurationError != nil {
		return nil, fmt.Errorf(loadConfigurationErrorTemplateConstant, paths.Config, configurationError)
	}

	manager := &ConfigurationManager{store: store, configuration: configuration}

	if len(strings.TrimSpace(paths.Params)) > 0 {
		parameters, parametersError := store.ReadYAML(paths.Params)
		if parametersError != nil {
			return nil, fmt.Errorf(loadConfigurationErrorTemplateConstant, paths.Params, parametersError)
		}
		manager.parameters = parameters
	}

	if len(strings.TrimSpace(paths.Schema)) > 0 {
		schema, schemaError := store.ReadYAML(paths.Schema)
		if schemaError != nil {
			return nil, fmt.Errorf(loadConfigurationErrorTemplateConstant, paths.Schema, schemaError)
		}
		manager.schema = schema
	}

	artifactsRoot := strings.TrimSpace(configuration.String(artifactsRootKeyConstant))
	if len(artifactsRoot) == 0 {
		return nil, fmt.Errorf(artifactsRootMissingTemplateConstant, paths.Config, artifactsRootKeyConstant)
	}
	if createError := store.CreateDirectories([]string{artifactsRoot}, true); createError != nil {
		return nil, createError
	}
	manager.artifactsRoot = artifactsRoot

	return manager, nil
}

// ArtifactsRoot returns the directory every stage writes beneath.
func (manager *ConfigurationManager) ArtifactsRoot() string {
	return manager.artifactsRoot
}

// Config returns the loaded configuration document.
func (manager *ConfigurationManager) Config() configbox.Box {
	return manager.configuration
}

// Params returns the loaded parameters document, empty when none was configured.
func (manager *ConfigurationManager) Params() configbox.Box {
	return manager.parameters
}

// Schema returns the loaded schema document, empty when none was configured.
func (manager *ConfigurationManager) Schema() configbox.Box {
	return manager.schema
}

// Stage decodes the configuration section named stageName into target and
// creates the section's root_dir when it declares one. The created directory,
// or an empty string, is returned.
func (manager *ConfigurationManager) Stage(stageName string, target any) (string, error) {
	trimmedStageName := strings.TrimSpace(stageName)
	if len(trimmedStageName) == 0 {
		return "", ErrStageNameRequired
	}

	section, sectionError := manager.configuration.Section(trimmedStageName)
	if sectionError != nil {
		return "", fmt.Errorf(stageSectionErrorTemplateConstant, trimmedStageName, sectionError)
	}

	if target != nil {
		if decodeError := section.Decode(target); decodeError != nil {
			return "", fmt.Errorf(stageSectionErrorTemplateConstant, trimmedStageName, decodeError)
		}
	}

	rootDirectory := strings.TrimSpace(section.String(rootDirectoryKeyConstant))
	if len(rootDirectory) == 0 {
		return "", nil
	}

	if createError := manager.store.CreateDirectories([]string{rootDirectory}, true); createError != nil {
		return "", fmt.Errorf(prepareStageErrorTemplateConstant, trimmedStageName, createError)
	}

	return rootDirectory, nil
}

// StageNames returns the configuration sections that declare a root_dir, in sorted order.
func (manager *ConfigurationManager) StageNames() []string {
	stageNames := make([]string, 0)
	for _, key := range manager.configuration.Keys() {
		if manager.configuration.Has(key + keyPathSeparatorConstant + rootDirectoryKeyConstant) {
			stageNames = append(stageNames, key)
		}
	}
	return stageNames
}
