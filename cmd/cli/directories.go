package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/utils/paths"
)

const (
	directoriesCommandUseConstant              = "mkdirs <path>..."
	directoriesCommandShortDescriptionConstant = "Create directories and any missing parents"
	directoriesCommandLongDescriptionConstant  = "mkdirs creates each directory along with its missing parents. Existing directories are left untouched. A leading ~ expands to the home directory and duplicate paths are created once."
	directoriesCommandExampleConstant          = "dsp mkdirs artifacts/data_ingestion artifacts/model_trainer"
	directoriesQuietFlagNameConstant           = "quiet"
	directoriesQuietFlagUsageConstant          = "Skip the per-directory log entries."
	directoriesCreatedOutputTemplateConstant   = "CREATED: %s\n"
	directoriesMissingMessageConstant          = "at least one non-empty directory path is required"
)

// DirectoriesCommandBuilder assembles the mkdirs command.
type DirectoriesCommandBuilder struct {
	StoreProvider  StoreProvider
	PathNormalizer *paths.Normalizer
}

// Build constructs the mkdirs command.
func (builder *DirectoriesCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     directoriesCommandUseConstant,
		Short:   directoriesCommandShortDescriptionConstant,
		Long:    directoriesCommandLongDescriptionConstant,
		Example: directoriesCommandExampleConstant,
		Args:    cobra.ArbitraryArgs,
		RunE:    builder.run,
	}

	command.Flags().Bool(directoriesQuietFlagNameConstant, false, directoriesQuietFlagUsageConstant)

	return command, nil
}

func (builder *DirectoriesCommandBuilder) run(command *cobra.Command, arguments []string) error {
	normalizer := builder.PathNormalizer
	if normalizer == nil {
		normalizer = paths.NewNormalizer()
	}

	directoryPaths := normalizer.Normalize(arguments)
	if len(directoryPaths) == 0 {
		_ = command.Help()
		return errors.New(directoriesMissingMessageConstant)
	}

	quiet, quietFlagError := command.Flags().GetBool(directoriesQuietFlagNameConstant)
	if quietFlagError != nil {
		return quietFlagError
	}

	if createError := resolveStore(builder.StoreProvider).CreateDirectories(directoryPaths, !quiet); createError != nil {
		return createError
	}

	for _, directoryPath := range directoryPaths {
		fmt.Fprintf(command.OutOrStdout(), directoriesCreatedOutputTemplateConstant, directoryPath)
	}

	return nil
}
