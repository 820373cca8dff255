package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/artifacts"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/project"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/utils/paths"
)

const (
	prepareCommandUseConstant              = "prepare"
	prepareCommandShortDescriptionConstant = "Load project configuration and create stage directories"
	prepareCommandLongDescriptionConstant  = "prepare reads the project configuration, parameters, and schema files, creates the artifacts root, and creates the root_dir of every selected stage. Stages default to every configuration section that declares a root_dir."
	prepareCommandExampleConstant          = "dsp prepare --stage data_ingestion --manifest artifacts/manifest.json"
	prepareStageFlagNameConstant           = "stage"
	prepareStageFlagUsageConstant          = "Stage section to prepare (repeatable). Defaults to every section declaring a root_dir."
	prepareManifestFlagNameConstant        = "manifest"
	prepareManifestFlagUsageConstant       = "Write a JSON manifest of the prepared directories, tagged with a fresh run identifier, to this path."
	prepareSnapshotFlagNameConstant        = "params-snapshot"
	prepareSnapshotFlagUsageConstant       = "Write a binary snapshot of the loaded parameters to this path."
	prepareArtifactsOutputTemplateConstant = "ARTIFACTS: %s\n"
	prepareStageOutputTemplateConstant     = "PREPARED: %s -> %s\n"
	prepareSkippedOutputTemplateConstant   = "SKIPPED: %s (no root_dir)\n"
	prepareManifestOutputTemplateConstant  = "MANIFEST: %s\n"
	prepareSnapshotOutputTemplateConstant  = "SNAPSHOT: %s\n"
	prepareStagesPreparedMessageConstant   = "stages prepared"
	prepareStageCountFieldConstant         = "stage_count"
	manifestRunIdentifierKeyConstant       = "run_id"
	manifestArtifactsRootKeyConstant       = "artifacts_root"
	manifestStagesKeyConstant              = "stages"
	manifestParamsPathKeyConstant          = "params_path"
	manifestSchemaPathKeyConstant          = "schema_path"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// StoreProvider yields the artifact store commands operate on.
type StoreProvider func() *artifacts.Store

// PrepareCommandBuilder assembles the prepare command.
type PrepareCommandBuilder struct {
	LoggerProvider        LoggerProvider
	StoreProvider         StoreProvider
	PathNormalizer        *paths.Normalizer
	ConfigurationProvider func() ApplicationProjectConfiguration
}

// Build constructs the prepare command.
func (builder *PrepareCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     prepareCommandUseConstant,
		Short:   prepareCommandShortDescriptionConstant,
		Long:    prepareCommandLongDescriptionConstant,
		Example: prepareCommandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	command.Flags().StringSlice(prepareStageFlagNameConstant, nil, prepareStageFlagUsageConstant)
	command.Flags().String(prepareManifestFlagNameConstant, "", prepareManifestFlagUsageConstant)
	command.Flags().String(prepareSnapshotFlagNameConstant, "", prepareSnapshotFlagUsageConstant)

	return command, nil
}

func (builder *PrepareCommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	store := resolveStore(builder.StoreProvider)

	projectPaths := project.Paths{
		Config: builder.PathNormalizer.Expand(strings.TrimSpace(configuration.ConfigPath)),
		Params: builder.PathNormalizer.Expand(strings.TrimSpace(configuration.ParamsPath)),
		Schema: builder.PathNormalizer.Expand(strings.TrimSpace(configuration.SchemaPath)),
	}

	manager, managerError := project.NewConfigurationManager(store, projectPaths)
	if managerError != nil {
		return managerError
	}

	output := command.OutOrStdout()
	fmt.Fprintf(output, prepareArtifactsOutputTemplateConstant, manager.ArtifactsRoot())

	stageNames, stageFlagError := command.Flags().GetStringSlice(prepareStageFlagNameConstant)
	if stageFlagError != nil {
		return stageFlagError
	}
	if len(stageNames) == 0 {
		stageNames = manager.StageNames()
	}

	preparedStages := make(map[string]any, len(stageNames))
	for _, stageName := range stageNames {
		stageRoot, stageError := manager.Stage(stageName, nil)
		if stageError != nil {
			return stageError
		}
		if len(stageRoot) == 0 {
			fmt.Fprintf(output, prepareSkippedOutputTemplateConstant, stageName)
			continue
		}
		preparedStages[stageName] = stageRoot
		fmt.Fprintf(output, prepareStageOutputTemplateConstant, stageName, stageRoot)
	}

	builder.resolveLogger().Info(prepareStagesPreparedMessageConstant, zap.Int(prepareStageCountFieldConstant, len(preparedStages)))

	manifestPath, manifestFlagError := command.Flags().GetString(prepareManifestFlagNameConstant)
	if manifestFlagError != nil {
		return manifestFlagError
	}
	if trimmedManifestPath := strings.TrimSpace(manifestPath); len(trimmedManifestPath) > 0 {
		manifestPath = builder.PathNormalizer.Expand(trimmedManifestPath)
		manifest := map[string]any{
			manifestRunIdentifierKeyConstant: uuid.NewString(),
			manifestArtifactsRootKeyConstant: manager.ArtifactsRoot(),
			manifestStagesKeyConstant:        preparedStages,
			manifestParamsPathKeyConstant:    projectPaths.Params,
			manifestSchemaPathKeyConstant:    projectPaths.Schema,
		}
		if saveError := store.SaveJSON(manifestPath, manifest); saveError != nil {
			return saveError
		}
		fmt.Fprintf(output, prepareManifestOutputTemplateConstant, manifestPath)
	}

	snapshotPath, snapshotFlagError := command.Flags().GetString(prepareSnapshotFlagNameConstant)
	if snapshotFlagError != nil {
		return snapshotFlagError
	}
	if trimmedSnapshotPath := strings.TrimSpace(snapshotPath); len(trimmedSnapshotPath) > 0 {
		snapshotPath = builder.PathNormalizer.Expand(trimmedSnapshotPath)
		if saveError := store.SaveBinary(manager.Params(), snapshotPath); saveError != nil {
			return saveError
		}
		fmt.Fprintf(output, prepareSnapshotOutputTemplateConstant, snapshotPath)
	}

	return nil
}

func (builder *PrepareCommandBuilder) resolveConfiguration() ApplicationProjectConfiguration {
	if builder.ConfigurationProvider == nil {
		return ApplicationProjectConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *PrepareCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveStore(provider StoreProvider) *artifacts.Store {
	if provider == nil {
		return artifacts.NewStore(artifacts.Dependencies{})
	}
	store := provider()
	if store == nil {
		return artifacts.NewStore(artifacts.Dependencies{})
	}
	return store
}
