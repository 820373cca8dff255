package artifacts

import (
	"fmt"
	"strings"
)

// CreateDirectories creates every directory in directoryPaths along with any
// missing parents. Directories that already exist are left untouched. All
// entries are validated before the first directory is created. When verbose
// is set, one log entry is written per path.
func (store *Store) CreateDirectories(directoryPaths []string, verbose bool) error {
	for directoryIndex, directoryPath := range directoryPaths {
		if len(strings.TrimSpace(directoryPath)) == 0 {
			return fmt.Errorf(argumentErrorTemplateConstant, ErrInvalidArgument, fmt.Sprintf(directoryPathRequiredTemplateConstant, directoryIndex))
		}
	}

	for _, directoryPath := range directoryPaths {
		if createError := store.fileSystem.MkdirAll(directoryPath, directoryPermissionsConstant); createError != nil {
			return fmt.Errorf(createDirectoryErrorTemplateConstant, directoryPath, createError)
		}
		if verbose {
			store.logPath(directoryCreatedMessageConstant, directoryPath)
		}
	}

	return nil
}
