package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/artifacts"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/utils"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/utils/paths"
)

const (
	applicationNameConstant                  = "dsp"
	applicationShortDescriptionConstant      = "Configuration and artifact utilities for the data-science pipeline"
	applicationLongDescriptionConstant       = "dsp reads pipeline configuration, prepares artifact directories, and inspects the YAML, JSON, and binary artifacts a pipeline run produces."
	configFileFlagNameConstant               = "config"
	configFileFlagUsageConstant              = "Optional path to a dsp configuration file (YAML or JSON)."
	environmentFileFlagNameConstant          = "env-file"
	environmentFileFlagUsageConstant         = "Optional .env file whose variables are exported before configuration loads. Existing environment variables win."
	environmentFileLoadErrorTemplateConstant = "unable to load environment file %s: %w"
	logLevelFlagNameConstant                 = "log-level"
	logLevelFlagUsageConstant                = "Override the configured log level."
	logFormatFlagNameConstant                = "log-format"
	logFormatFlagUsageConstant               = "Override the configured log format (structured or console)."
	commonLogLevelConfigKeyConstant          = "common.log_level"
	commonLogFormatConfigKeyConstant         = "common.log_format"
	projectConfigPathConfigKeyConstant       = "project.config_path"
	projectParamsPathConfigKeyConstant       = "project.params_path"
	projectSchemaPathConfigKeyConstant       = "project.schema_path"
	environmentPrefixConstant                = "DSP"
	configurationNameConstant                = "dsp"
	configurationTypeConstant                = "yaml"
	configurationInitializedMessageConstant  = "configuration initialized"
	configurationLogLevelFieldConstant       = "log_level"
	configurationLogFormatFieldConstant      = "log_format"
	configurationFileFieldConstant           = "config_file"
	configurationLoadErrorTemplateConstant   = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant      = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant          = "unable to flush logger: %w"
	defaultConfigurationSearchPathConstant   = "."
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common  ApplicationCommonConfiguration  `mapstructure:"common"`
	Project ApplicationProjectConfiguration `mapstructure:"project"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationProjectConfiguration locates the pipeline's own configuration files.
type ApplicationProjectConfiguration struct {
	ConfigPath string `mapstructure:"config_path"`
	ParamsPath string `mapstructure:"params_path"`
	SchemaPath string `mapstructure:"schema_path"`
}

// ApplicationOptions overrides the collaborators an Application uses.
type ApplicationOptions struct {
	FileSystem afero.Fs
	LogWriter  io.Writer
}

// Application wires the Cobra root command, configuration loader, structured logger, and artifact store.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	fileSystem            afero.Fs
	pathNormalizer        *paths.Normalizer
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	environmentFilePath   string
	logLevelFlagValue     string
	logFormatFlagValue    string
}

// NewApplication assembles a CLI application backed by the operating system filesystem and standard error logging.
func NewApplication() *Application {
	return NewApplicationWithOptions(ApplicationOptions{})
}

// NewApplicationWithOptions assembles a fully wired CLI application instance.
func NewApplicationWithOptions(options ApplicationOptions) *Application {
	configurationLoader := utils.NewConfigurationLoader(utils.ConfigurationLoaderOptions{
		ConfigurationName: configurationNameConstant,
		ConfigurationType: configurationTypeConstant,
		EnvironmentPrefix: environmentPrefixConstant,
		SearchPaths:       []string{defaultConfigurationSearchPathConstant},
	})
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	fileSystem := options.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	loggerFactory := utils.NewLoggerFactory()
	if options.LogWriter != nil {
		loggerFactory = utils.NewLoggerFactoryWithWriter(options.LogWriter)
	}

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       loggerFactory,
		logger:              zap.NewNop(),
		fileSystem:          fileSystem,
		pathNormalizer:      paths.NewNormalizer(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.environmentFilePath, environmentFileFlagNameConstant, "", environmentFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	prepareBuilder := PrepareCommandBuilder{
		LoggerProvider:        application.loggerProvider,
		StoreProvider:         application.store,
		PathNormalizer:        application.pathNormalizer,
		ConfigurationProvider: application.projectConfiguration,
	}
	prepareCommand, prepareBuildError := prepareBuilder.Build()
	if prepareBuildError == nil {
		cobraCommand.AddCommand(prepareCommand)
	}

	directoriesBuilder := DirectoriesCommandBuilder{
		StoreProvider:  application.store,
		PathNormalizer: application.pathNormalizer,
	}
	directoriesCommand, directoriesBuildError := directoriesBuilder.Build()
	if directoriesBuildError == nil {
		cobraCommand.AddCommand(directoriesCommand)
	}

	inspectBuilder := InspectCommandBuilder{
		StoreProvider:  application.store,
		PathNormalizer: application.pathNormalizer,
	}
	inspectCommand, inspectBuildError := inspectBuilder.Build()
	if inspectBuildError == nil {
		cobraCommand.AddCommand(inspectCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// SetArguments replaces the command-line arguments parsed by Execute.
func (application *Application) SetArguments(arguments []string) {
	application.rootCommand.SetArgs(arguments)
}

// SetOutput redirects command output, which otherwise goes to standard output.
func (application *Application) SetOutput(writer io.Writer) {
	application.rootCommand.SetOut(writer)
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.syncLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	if environmentFilePath := strings.TrimSpace(application.environmentFilePath); len(environmentFilePath) > 0 {
		if loadError := godotenv.Load(environmentFilePath); loadError != nil {
			return fmt.Errorf(environmentFileLoadErrorTemplateConstant, environmentFilePath, loadError)
		}
	}

	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:    string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant:   string(utils.LogFormatStructured),
		projectConfigPathConfigKeyConstant: "",
		projectParamsPathConfigKeyConstant: "",
		projectSchemaPathConfigKeyConstant: "",
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(strings.TrimSpace(application.configuration.Common.LogLevel)),
		utils.LogFormat(strings.TrimSpace(application.configuration.Common.LogFormat)),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) loggerProvider() *zap.Logger {
	return application.logger
}

func (application *Application) store() *artifacts.Store {
	return artifacts.NewStore(artifacts.Dependencies{
		Logger:     application.logger,
		FileSystem: application.fileSystem,
	})
}

func (application *Application) projectConfiguration() ApplicationProjectConfiguration {
	return application.configuration.Project
}

func (application *Application) syncLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
