package artifacts

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	logFieldPathConstant            = "path"
	directoryPermissionsConstant    = os.FileMode(0o755)
	artifactFilePermissionsConstant = os.FileMode(0o644)
	yamlLoadedMessageConstant       = "yaml file loaded successfully"
	directoryCreatedMessageConstant = "created directory"
	jsonSavedMessageConstant        = "json file saved"
	jsonLoadedMessageConstant       = "json file loaded successfully"
	binarySavedMessageConstant      = "binary file saved"
	binaryLoadedMessageConstant     = "binary file loaded"
	jsonIndentConstant              = "    "
	jsonPrefixConstant              = ""
)

// Dependencies enumerates the collaborators a Store uses.
type Dependencies struct {
	Logger     *zap.Logger
	FileSystem afero.Fs
}

// Store performs configuration and artifact I/O against a filesystem and reports each step to a logger.
type Store struct {
	logger     *zap.Logger
	fileSystem afero.Fs
}

// NewStore constructs a Store. A nil logger discards output and a nil filesystem uses the operating system.
func NewStore(dependencies Dependencies) *Store {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}

	return &Store{logger: logger, fileSystem: fileSystem}
}

func (store *Store) logPath(message string, path string) {
	store.logger.Info(message, zap.String(logFieldPathConstant, path))
}

func validatePath(path string) error {
	if len(strings.TrimSpace(path)) == 0 {
		return fmt.Errorf(argumentErrorTemplateConstant, ErrInvalidArgument, pathRequiredMessageConstant)
	}
	return nil
}
