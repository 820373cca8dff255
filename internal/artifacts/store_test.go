package artifacts_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/artifacts"
	"github.com/nsk20/End-to-End-Data-Science-Pipeline/internal/configbox"
)

const (
	testSubtestNameTemplateConstant     = "%d_%s"
	testArtifactsRootConstant           = "/artifacts"
	testConfigFileNameConstant          = "config.yaml"
	testMetricsFileNameConstant         = "metrics.json"
	testModelFileNameConstant           = "model.bin"
	testLogFieldPathConstant            = "path"
	testYAMLLoadedMessageConstant       = "yaml file loaded successfully"
	testDirectoryCreatedMessageConstant = "created directory"
	testJSONSavedMessageConstant        = "json file saved"
	testJSONLoadedMessageConstant       = "json file loaded successfully"
	testBinarySavedMessageConstant      = "binary file saved"
	testBinaryLoadedMessageConstant     = "binary file loaded"
	testNestedConfigurationConstant     = "artifacts_root: artifacts\ndata_ingestion:\n  root_dir: artifacts/data_ingestion\n  source_url: https://example.com/data.zip\n  retries: 3\n  columns:\n    - fixed_acidity\n    - quality\n"
	testExpectedJSONDocumentConstant    = "{\n    \"accuracy\": 0.91,\n    \"label\": \"a<b&c\",\n    \"samples\": 1200\n}\n"
	testMalformedJSONConstant           = "{\"accuracy\": 0.91"
	testTrailingJSONConstant            = "{\"accuracy\": 0.91} {}"
	testTopLevelSequenceYAMLConstant    = "- first\n- second\n"
	testTopLevelSequenceJSONConstant    = "[1, 2, 3]"
	testMalformedYAMLConstant           = "key: [unterminated\n"
	testCommentOnlyYAMLConstant         = "# nothing configured yet\n"
	testExplicitNullYAMLConstant        = "---\n~\n"
	testEmptyDocumentCaseConstant       = "empty_file"
	testCommentDocumentCaseConstant     = "comment_only"
	testNullDocumentCaseConstant        = "explicit_null"
	testCorruptBinaryContentConstant    = "not a gob stream"
	testModelNameConstant               = "elasticnet"
	testFeatureAlcoholConstant          = "alcohol"
	testFeatureSulphatesConstant        = "sulphates"
	testSecondArtifactsRootConstant     = "/artifacts/model_trainer"
	testNestedDirectoryConstant         = "/artifacts/data_ingestion/raw"
	testDirectoryPermissionsConstant    = fs.FileMode(0o755)
	testArtifactPermissionsConstant     = fs.FileMode(0o644)
	testMissingFileNameConstant         = "missing.json"
	testMultipleDocumentsYAMLConstant   = "a: 1\n---\nb: 2\n"
	testRegisterErrorFragmentConstant   = "unable to register binary type"
)

type trainedModel struct {
	Name         string
	Alpha        float64
	L1Ratio      float64
	Coefficients map[string]float64
	Features     []string
}

type hyperParameters struct {
	Depth        int
	LearningRate float64
}

type modelEnvelope struct {
	Name       string
	Parameters any
	Extras     map[string]any
}

type featureScaler struct {
	Mean     float64
	Variance float64
}

type calibrationCurve struct {
	Bins []float64
}

func newObservedStore(testInstance *testing.T, fileSystem afero.Fs) (*artifacts.Store, *observer.ObservedLogs) {
	testInstance.Helper()
	observedCore, observedLogs := observer.New(zapcore.DebugLevel)
	store := artifacts.NewStore(artifacts.Dependencies{
		Logger:     zap.New(observedCore),
		FileSystem: fileSystem,
	})
	return store, observedLogs
}

func requireLoggedPath(testInstance *testing.T, observedLogs *observer.ObservedLogs, message string, path string) {
	testInstance.Helper()
	entries := observedLogs.FilterMessage(message).AllUntimed()
	require.Len(testInstance, entries, 1)
	require.Equal(testInstance, zapcore.InfoLevel, entries[0].Level)
	require.Equal(testInstance, path, entries[0].ContextMap()[testLogFieldPathConstant])
}

func writeFixture(testInstance *testing.T, fileSystem afero.Fs, path string, content string) {
	testInstance.Helper()
	require.NoError(testInstance, fileSystem.MkdirAll(filepath.Dir(path), testDirectoryPermissionsConstant))
	require.NoError(testInstance, afero.WriteFile(fileSystem, path, []byte(content), testArtifactPermissionsConstant))
}

func TestStoreReadYAMLParsesNestedDocument(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, observedLogs := newObservedStore(testInstance, fileSystem)
	configurationPath := filepath.Join(testArtifactsRootConstant, testConfigFileNameConstant)
	writeFixture(testInstance, fileSystem, configurationPath, testNestedConfigurationConstant)

	document, readError := store.ReadYAML(configurationPath)
	require.NoError(testInstance, readError)

	require.Equal(testInstance, "artifacts", document.String("artifacts_root"))
	require.Equal(testInstance, "artifacts/data_ingestion", document.String("data_ingestion.root_dir"))
	require.Equal(testInstance, 3, document.Int("data_ingestion.retries"))

	columns, columnsError := document.StringSliceE("data_ingestion.columns")
	require.NoError(testInstance, columnsError)
	require.Equal(testInstance, []string{"fixed_acidity", "quality"}, columns)

	require.Equal(testInstance, map[string]any{
		"artifacts_root": "artifacts",
		"data_ingestion": map[string]any{
			"root_dir":   "artifacts/data_ingestion",
			"source_url": "https://example.com/data.zip",
			"retries":    3,
			"columns":    []any{"fixed_acidity", "quality"},
		},
	}, document.Map())

	requireLoggedPath(testInstance, observedLogs, testYAMLLoadedMessageConstant, configurationPath)
}

func TestStoreReadYAMLRejectsEmptyDocuments(testInstance *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: testEmptyDocumentCaseConstant, content: ""},
		{name: testCommentDocumentCaseConstant, content: testCommentOnlyYAMLConstant},
		{name: testNullDocumentCaseConstant, content: testExplicitNullYAMLConstant},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			store, observedLogs := newObservedStore(testInstance, fileSystem)
			configurationPath := filepath.Join(testArtifactsRootConstant, testConfigFileNameConstant)
			writeFixture(testInstance, fileSystem, configurationPath, testCase.content)

			_, readError := store.ReadYAML(configurationPath)
			require.ErrorIs(testInstance, readError, artifacts.ErrEmptyDocument)
			require.Zero(testInstance, observedLogs.Len())
		})
	}
}

func TestStoreReadYAMLPropagatesFailures(testInstance *testing.T) {
	testCases := []struct {
		name          string
		content       *string
		expectedError error
		checkError    func(testing.TB, error)
	}{
		{
			name:          "missing_file",
			expectedError: fs.ErrNotExist,
		},
		{
			name:          "top_level_sequence",
			content:       stringPointer(testTopLevelSequenceYAMLConstant),
			expectedError: artifacts.ErrNotMapping,
		},
		{
			name:          "multiple_documents",
			content:       stringPointer(testMultipleDocumentsYAMLConstant),
			expectedError: artifacts.ErrMultipleDocuments,
		},
		{
			name:    "malformed_document",
			content: stringPointer(testMalformedYAMLConstant),
			checkError: func(testInstance testing.TB, readError error) {
				require.Error(testInstance, readError)
				require.False(testInstance, errors.Is(readError, artifacts.ErrEmptyDocument))
				require.False(testInstance, errors.Is(readError, artifacts.ErrInvalidArgument))
			},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			store, _ := newObservedStore(testInstance, fileSystem)
			configurationPath := filepath.Join(testArtifactsRootConstant, testConfigFileNameConstant)
			if testCase.content != nil {
				writeFixture(testInstance, fileSystem, configurationPath, *testCase.content)
			}

			_, readError := store.ReadYAML(configurationPath)
			if testCase.checkError != nil {
				testCase.checkError(testInstance, readError)
				return
			}
			require.ErrorIs(testInstance, readError, testCase.expectedError)
		})
	}
}

func TestStoreCreateDirectoriesIsIdempotent(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, observedLogs := newObservedStore(testInstance, fileSystem)
	directoryPaths := []string{testNestedDirectoryConstant, testSecondArtifactsRootConstant}

	require.NoError(testInstance, store.CreateDirectories(directoryPaths, true))
	require.NoError(testInstance, store.CreateDirectories(directoryPaths, true))

	for _, directoryPath := range directoryPaths {
		directoryExists, existsError := afero.DirExists(fileSystem, directoryPath)
		require.NoError(testInstance, existsError)
		require.True(testInstance, directoryExists)
	}

	createdEntries := observedLogs.FilterMessage(testDirectoryCreatedMessageConstant).AllUntimed()
	require.Len(testInstance, createdEntries, 4)
	require.Equal(testInstance, testNestedDirectoryConstant, createdEntries[0].ContextMap()[testLogFieldPathConstant])
	require.Equal(testInstance, testSecondArtifactsRootConstant, createdEntries[1].ContextMap()[testLogFieldPathConstant])
}

func TestStoreCreateDirectoriesQuietMode(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, observedLogs := newObservedStore(testInstance, fileSystem)

	require.NoError(testInstance, store.CreateDirectories([]string{testNestedDirectoryConstant}, false))
	require.Zero(testInstance, observedLogs.Len())

	directoryExists, existsError := afero.DirExists(fileSystem, testNestedDirectoryConstant)
	require.NoError(testInstance, existsError)
	require.True(testInstance, directoryExists)
}

func TestStoreCreateDirectoriesOnOperatingSystem(testInstance *testing.T) {
	store := artifacts.NewStore(artifacts.Dependencies{})
	rootDirectory := testInstance.TempDir()
	directoryPaths := []string{
		filepath.Join(rootDirectory, "data_ingestion", "raw"),
		filepath.Join(rootDirectory, "model_evaluation"),
	}

	require.NoError(testInstance, store.CreateDirectories(directoryPaths, true))
	require.NoError(testInstance, store.CreateDirectories(directoryPaths, true))

	for _, directoryPath := range directoryPaths {
		directoryInfo, statError := os.Stat(directoryPath)
		require.NoError(testInstance, statError)
		require.True(testInstance, directoryInfo.IsDir())
	}
}

func TestStoreCreateDirectoriesFailsWhenPathIsAFile(testInstance *testing.T) {
	store := artifacts.NewStore(artifacts.Dependencies{})
	blockingFilePath := filepath.Join(testInstance.TempDir(), testMetricsFileNameConstant)
	require.NoError(testInstance, os.WriteFile(blockingFilePath, []byte(testExpectedJSONDocumentConstant), testArtifactPermissionsConstant))

	creationError := store.CreateDirectories([]string{filepath.Join(blockingFilePath, "nested")}, true)
	require.Error(testInstance, creationError)
	require.False(testInstance, errors.Is(creationError, artifacts.ErrInvalidArgument))
}

func TestStoreJSONRoundTrip(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, observedLogs := newObservedStore(testInstance, fileSystem)
	metricsPath := filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant)
	require.NoError(testInstance, fileSystem.MkdirAll(testArtifactsRootConstant, testDirectoryPermissionsConstant))

	metrics := map[string]any{
		"samples":  1200,
		"accuracy": 0.91,
		"label":    "a<b&c",
	}

	require.NoError(testInstance, store.SaveJSON(metricsPath, metrics))

	writtenContent, readError := afero.ReadFile(fileSystem, metricsPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testExpectedJSONDocumentConstant, string(writtenContent))

	loadedMetrics, loadError := store.LoadJSON(metricsPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, 1200, loadedMetrics.Int("samples"))
	require.InDelta(testInstance, 0.91, loadedMetrics.Float("accuracy"), 1e-9)
	require.Equal(testInstance, "a<b&c", loadedMetrics.String("label"))
	require.ElementsMatch(testInstance, []string{"accuracy", "label", "samples"}, loadedMetrics.Keys())

	requireLoggedPath(testInstance, observedLogs, testJSONSavedMessageConstant, metricsPath)
	requireLoggedPath(testInstance, observedLogs, testJSONLoadedMessageConstant, metricsPath)
}

func TestStoreSaveJSONOverwritesExistingFile(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	metricsPath := filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant)
	writeFixture(testInstance, fileSystem, metricsPath, testNestedConfigurationConstant)

	require.NoError(testInstance, store.SaveJSON(metricsPath, map[string]any{"rmse": 0.5}))

	loadedMetrics, loadError := store.LoadJSON(metricsPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, []string{"rmse"}, loadedMetrics.Keys())
}

func TestStoreLoadJSONPropagatesFailures(testInstance *testing.T) {
	testCases := []struct {
		name          string
		content       *string
		expectedError error
	}{
		{name: "missing_file", expectedError: fs.ErrNotExist},
		{name: "top_level_array", content: stringPointer(testTopLevelSequenceJSONConstant), expectedError: artifacts.ErrNotMapping},
		{name: "truncated_document", content: stringPointer(testMalformedJSONConstant)},
		{name: "trailing_document", content: stringPointer(testTrailingJSONConstant)},
		{name: "empty_file", content: stringPointer("")},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			store, observedLogs := newObservedStore(testInstance, fileSystem)
			metricsPath := filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant)
			if testCase.content != nil {
				writeFixture(testInstance, fileSystem, metricsPath, *testCase.content)
			}

			_, loadError := store.LoadJSON(metricsPath)
			require.Error(testInstance, loadError)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, loadError, testCase.expectedError)
			}
			require.Zero(testInstance, observedLogs.Len())
		})
	}
}

func TestStoreSaveJSONPropagatesWriteFailure(testInstance *testing.T) {
	fileSystem := afero.NewReadOnlyFs(afero.NewMemMapFs())
	store, observedLogs := newObservedStore(testInstance, fileSystem)

	saveError := store.SaveJSON(filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant), map[string]any{"rmse": 0.5})
	require.Error(testInstance, saveError)
	require.False(testInstance, errors.Is(saveError, artifacts.ErrInvalidArgument))
	require.Zero(testInstance, observedLogs.Len())
}

func TestStoreSaveJSONEncodingFailureKeepsExistingFile(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	metricsPath := filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant)
	writeFixture(testInstance, fileSystem, metricsPath, testExpectedJSONDocumentConstant)

	saveError := store.SaveJSON(metricsPath, map[string]any{"callback": func() {}})
	require.Error(testInstance, saveError)

	existingContent, readError := afero.ReadFile(fileSystem, metricsPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, testExpectedJSONDocumentConstant, string(existingContent))
}

func TestStoreBinaryRoundTrip(testInstance *testing.T) {
	pointedModel := trainedModel{
		Name:     testModelNameConstant,
		Alpha:    0.5,
		Features: []string{testFeatureAlcoholConstant},
	}
	genericMapping := map[string]any{
		"name":     testModelNameConstant,
		"epochs":   10,
		"features": []any{testFeatureAlcoholConstant, 4.5},
		"nested":   map[string]any{"enabled": true},
	}
	structValue := trainedModel{
		Name:         testModelNameConstant,
		Alpha:        0.2,
		L1Ratio:      0.1,
		Coefficients: map[string]float64{testFeatureAlcoholConstant: 0.31, testFeatureSulphatesConstant: 0.12},
		Features:     []string{testFeatureAlcoholConstant, testFeatureSulphatesConstant},
	}

	testCases := []struct {
		name     string
		value    any
		expected any
	}{
		{name: "struct_value", value: structValue, expected: structValue},
		{name: "struct_pointer", value: &pointedModel, expected: pointedModel},
		{name: "generic_mapping", value: genericMapping, expected: genericMapping},
		{name: "scalar", value: 42, expected: 42},
		{
			name: "interface_fields",
			value: modelEnvelope{
				Name:       testModelNameConstant,
				Parameters: hyperParameters{Depth: 3, LearningRate: 0.05},
				Extras:     map[string]any{"scaler": featureScaler{Mean: 0.4, Variance: 1.2}},
			},
			expected: modelEnvelope{
				Name:       testModelNameConstant,
				Parameters: hyperParameters{Depth: 3, LearningRate: 0.05},
				Extras:     map[string]any{"scaler": featureScaler{Mean: 0.4, Variance: 1.2}},
			},
		},
		{
			name:     "nested_custom_struct",
			value:    map[string]any{"model": trainedModel{Name: testModelNameConstant, Alpha: 0.3}},
			expected: map[string]any{"model": trainedModel{Name: testModelNameConstant, Alpha: 0.3}},
		},
		{name: "empty_slice_loads_nil", value: []int{}, expected: []int(nil)},
		{
			name:     "empty_struct_field_loads_nil",
			value:    trainedModel{Name: testModelNameConstant, Features: []string{}},
			expected: trainedModel{Name: testModelNameConstant},
		},
		{
			name:     "empty_nested_sequence_loads_nil",
			value:    map[string]any{"features": []any{}},
			expected: map[string]any{"features": []any(nil)},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			store, observedLogs := newObservedStore(testInstance, fileSystem)
			modelPath := filepath.Join(testArtifactsRootConstant, testModelFileNameConstant)
			require.NoError(testInstance, fileSystem.MkdirAll(testArtifactsRootConstant, testDirectoryPermissionsConstant))

			require.NoError(testInstance, store.SaveBinary(testCase.value, modelPath))

			loadedValue, loadError := store.LoadBinary(modelPath)
			require.NoError(testInstance, loadError)
			require.Equal(testInstance, testCase.expected, loadedValue)

			requireLoggedPath(testInstance, observedLogs, testBinarySavedMessageConstant, modelPath)
			requireLoggedPath(testInstance, observedLogs, testBinaryLoadedMessageConstant, modelPath)
		})
	}
}

func TestStoreBinaryRoundTripsConfigurationDocument(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	configurationPath := filepath.Join(testArtifactsRootConstant, testConfigFileNameConstant)
	modelPath := filepath.Join(testArtifactsRootConstant, testModelFileNameConstant)
	writeFixture(testInstance, fileSystem, configurationPath, testNestedConfigurationConstant)

	document, readError := store.ReadYAML(configurationPath)
	require.NoError(testInstance, readError)
	require.NoError(testInstance, store.SaveBinary(document, modelPath))

	loadedDocument, loadError := artifacts.LoadBinaryAs[configbox.Box](store, modelPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, document.Map(), loadedDocument.Map())
	require.Equal(testInstance, 3, loadedDocument.Int("data_ingestion.retries"))

	nestedPath := filepath.Join(testArtifactsRootConstant, "nested.bin")
	require.NoError(testInstance, store.SaveBinary(map[string]any{"config": document}, nestedPath))
	nestedValue, nestedError := artifacts.LoadBinaryAs[map[string]any](store, nestedPath)
	require.NoError(testInstance, nestedError)
	nestedDocument, isBox := nestedValue["config"].(configbox.Box)
	require.True(testInstance, isBox)
	require.Equal(testInstance, "artifacts/data_ingestion", nestedDocument.String("data_ingestion.root_dir"))
}

func TestRegisterBinaryType(testInstance *testing.T) {
	require.NoError(testInstance, artifacts.RegisterBinaryType(calibrationCurve{}))
	require.NoError(testInstance, artifacts.RegisterBinaryType(calibrationCurve{Bins: []float64{0.5}}))

	conflictError := artifacts.RegisterBinaryType(&calibrationCurve{})
	require.Error(testInstance, conflictError)
	require.ErrorContains(testInstance, conflictError, testRegisterErrorFragmentConstant)

	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	modelPath := filepath.Join(testArtifactsRootConstant, testModelFileNameConstant)
	require.NoError(testInstance, fileSystem.MkdirAll(testArtifactsRootConstant, testDirectoryPermissionsConstant))

	savedCurve := map[string]any{"curve": calibrationCurve{Bins: []float64{0.1, 0.9}}}
	require.NoError(testInstance, store.SaveBinary(savedCurve, modelPath))
	loadedCurve, loadError := store.LoadBinary(modelPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, savedCurve, loadedCurve)
}

func TestLoadBinaryAs(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	modelPath := filepath.Join(testArtifactsRootConstant, testModelFileNameConstant)
	require.NoError(testInstance, fileSystem.MkdirAll(testArtifactsRootConstant, testDirectoryPermissionsConstant))

	savedModel := trainedModel{Name: testModelNameConstant, Alpha: 0.7}
	require.NoError(testInstance, store.SaveBinary(savedModel, modelPath))

	loadedModel, loadError := artifacts.LoadBinaryAs[trainedModel](store, modelPath)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, savedModel, loadedModel)

	_, mismatchError := artifacts.LoadBinaryAs[string](store, modelPath)
	require.ErrorIs(testInstance, mismatchError, artifacts.ErrBinaryTypeMismatch)
}

func TestStoreBinaryFailures(testInstance *testing.T) {
	fileSystem := afero.NewMemMapFs()
	store, _ := newObservedStore(testInstance, fileSystem)
	modelPath := filepath.Join(testArtifactsRootConstant, testModelFileNameConstant)
	writeFixture(testInstance, fileSystem, modelPath, testCorruptBinaryContentConstant)

	_, corruptError := store.LoadBinary(modelPath)
	require.Error(testInstance, corruptError)

	_, missingError := store.LoadBinary(filepath.Join(testArtifactsRootConstant, testMissingFileNameConstant))
	require.ErrorIs(testInstance, missingError, fs.ErrNotExist)

	unencodableError := store.SaveBinary(make(chan int), filepath.Join(testArtifactsRootConstant, "channel.bin"))
	require.Error(testInstance, unencodableError)
	channelFileExists, existsError := afero.Exists(fileSystem, filepath.Join(testArtifactsRootConstant, "channel.bin"))
	require.NoError(testInstance, existsError)
	require.False(testInstance, channelFileExists)
}

func TestStoreRejectsInvalidArgumentsBeforeIO(testInstance *testing.T) {
	validPath := filepath.Join(testArtifactsRootConstant, testMetricsFileNameConstant)

	testCases := []struct {
		name         string
		operation    func(*artifacts.Store) error
		untouchedDir string
	}{
		{
			name: "read_yaml_empty_path",
			operation: func(store *artifacts.Store) error {
				_, readError := store.ReadYAML(" ")
				return readError
			},
		},
		{
			name: "save_json_nil_data",
			operation: func(store *artifacts.Store) error {
				return store.SaveJSON(validPath, nil)
			},
		},
		{
			name: "save_json_empty_path",
			operation: func(store *artifacts.Store) error {
				return store.SaveJSON("", map[string]any{"rmse": 0.5})
			},
		},
		{
			name: "load_json_empty_path",
			operation: func(store *artifacts.Store) error {
				_, loadError := store.LoadJSON("")
				return loadError
			},
		},
		{
			name: "save_binary_nil_value",
			operation: func(store *artifacts.Store) error {
				return store.SaveBinary(nil, validPath)
			},
		},
		{
			name: "load_binary_empty_path",
			operation: func(store *artifacts.Store) error {
				_, loadError := store.LoadBinary("")
				return loadError
			},
		},
		{
			name: "create_directories_blank_entry",
			operation: func(store *artifacts.Store) error {
				return store.CreateDirectories([]string{testNestedDirectoryConstant, "  "}, true)
			},
			untouchedDir: testNestedDirectoryConstant,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(testSubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			fileSystem := afero.NewMemMapFs()
			store, observedLogs := newObservedStore(testInstance, fileSystem)

			operationError := testCase.operation(store)
			require.ErrorIs(testInstance, operationError, artifacts.ErrInvalidArgument)
			require.Zero(testInstance, observedLogs.Len())

			fileExists, existsError := afero.Exists(fileSystem, validPath)
			require.NoError(testInstance, existsError)
			require.False(testInstance, fileExists)

			if len(testCase.untouchedDir) > 0 {
				directoryExists, directoryError := afero.DirExists(fileSystem, testCase.untouchedDir)
				require.NoError(testInstance, directoryError)
				require.False(testInstance, directoryExists)
			}
		})
	}
}

func stringPointer(value string) *string {
	return &value
}
