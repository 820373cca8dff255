package paths

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// Normalizer cleans caller-supplied path lists before they reach the filesystem.
type Normalizer struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewNormalizer constructs a Normalizer that resolves the home directory through the operating system.
func NewNormalizer() *Normalizer {
	return NewNormalizerWithProvider(os.UserHomeDir)
}

// NewNormalizerWithProvider constructs a Normalizer with a custom home directory provider.
func NewNormalizerWithProvider(provider HomeDirectoryProvider) *Normalizer {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &Normalizer{homeDirectoryProvider: provider}
}

// Expand resolves a leading tilde to the user's home directory. Paths without
// a tilde prefix, and paths naming another user's home such as "~bob", are
// returned unchanged.
func (normalizer *Normalizer) Expand(candidatePath string) string {
	if normalizer == nil || !strings.HasPrefix(candidatePath, tildeSymbolConstant) {
		return candidatePath
	}

	homeDirectory := normalizer.resolveHomeDirectory()
	if len(homeDirectory) == 0 {
		return candidatePath
	}

	if candidatePath == tildeSymbolConstant {
		return homeDirectory
	}

	for _, prefix := range []string{tildeForwardSlashPrefixConstant, tildeSymbolConstant + string(os.PathSeparator)} {
		if strings.HasPrefix(candidatePath, prefix) {
			return filepath.Join(homeDirectory, strings.TrimPrefix(candidatePath, prefix))
		}
	}

	return candidatePath
}

// Normalize trims whitespace, drops blank entries, expands the home directory,
// cleans each path, and removes duplicates while keeping first-seen order.
func (normalizer *Normalizer) Normalize(candidatePaths []string) []string {
	normalizedPaths := make([]string, 0, len(candidatePaths))
	seenPaths := make(map[string]struct{}, len(candidatePaths))

	for _, candidatePath := range candidatePaths {
		trimmedPath := strings.TrimSpace(candidatePath)
		if len(trimmedPath) == 0 {
			continue
		}

		cleanedPath := filepath.Clean(normalizer.Expand(trimmedPath))
		if _, seen := seenPaths[cleanedPath]; seen {
			continue
		}

		seenPaths[cleanedPath] = struct{}{}
		normalizedPaths = append(normalizedPaths, cleanedPath)
	}

	return normalizedPaths
}

func (normalizer *Normalizer) resolveHomeDirectory() string {
	normalizer.initializationGuard.Do(func() {
		normalizer.homeDirectory, normalizer.homeDirectoryError = normalizer.homeDirectoryProvider()
	})
	if normalizer.homeDirectoryError != nil {
		return ""
	}
	return normalizer.homeDirectory
}
