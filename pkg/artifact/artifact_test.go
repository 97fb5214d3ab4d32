package artifact

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/filesystem"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type model struct {
	Name     string             `json:"name" yaml:"name"`
	Features []string           `json:"features" yaml:"features"`
	Weights  map[string]float64 `json:"weights" yaml:"weights"`
	Trained  bool               `json:"trained" yaml:"trained"`
}

func fixedNow() time.Time {
	return time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
}

func newMemoryStore() *Store {
	return NewStore(Options{FS: filesystem.NewMemory(), Now: fixedNow})
}

func sampleModel() model {
	return model{
		Name:     "student-performance",
		Features: []string{"math_score", "reading_score"},
		Weights:  map[string]float64{"math_score": 0.75, "reading_score": 0.25},
		Trained:  true,
	}
}

func TestSaveObjectCreatesMissingDirectories(t *testing.T) {
	store := newMemoryStore()
	obj := map[string]any{"accuracy": 0.93, "features": []any{"math", "reading"}}

	require.NoError(t, store.SaveObject("/project/artifacts/model.pkl", obj))

	info, err := store.fs.Stat("/project/artifacts")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	var loaded map[string]any
	header, err := store.LoadObject("/project/artifacts/model.pkl", &loaded)
	require.NoError(t, err)
	assert.Equal(t, obj, loaded)
	assert.Equal(t, "json", header.Codec, "unknown extensions use the default codec")
	assert.Equal(t, "map[string]interface {}", header.Kind)
}

func TestSaveLoadRoundTripPerCodec(t *testing.T) {
	for _, path := range []string{
		"/artifacts/model.json",
		"/artifacts/model.yaml",
		"/artifacts/model.yml",
		"/artifacts/model.gob",
	} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			store := newMemoryStore()
			obj := sampleModel()

			require.NoError(t, store.SaveObject(path, obj))

			var loaded model
			header, err := store.LoadObject(path, &loaded)
			require.NoError(t, err)

			assert.Equal(t, obj, loaded)
			assert.Equal(t, FormatName, header.Format)
			assert.Equal(t, FormatVersion, header.Version)
			assert.Equal(t, "artifact.model", header.Kind)
			assert.True(t, fixedNow().Equal(header.CreatedAt))
		})
	}
}

func TestSaveObjectTruncatesExistingFile(t *testing.T) {
	store := newMemoryStore()
	path := "/artifacts/model.json"

	long := sampleModel()
	long.Features = []string{strings.Repeat("x", 4096)}
	require.NoError(t, store.SaveObject(path, long))
	require.NoError(t, store.SaveObject(path, model{Name: "small"}))

	var loaded model
	_, err := store.LoadObject(path, &loaded)
	require.NoError(t, err)
	assert.Equal(t, model{Name: "small"}, loaded)

	data, err := store.fs.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "xxxx")
}

func TestSaveObjectDefaultCodecOption(t *testing.T) {
	store := NewStore(Options{FS: filesystem.NewMemory(), DefaultCodec: "yaml"})

	require.NoError(t, store.SaveObject("/artifacts/model.pkl", sampleModel()))

	header, err := store.ReadHeader("/artifacts/model.pkl")
	require.NoError(t, err)
	assert.Equal(t, "yaml", header.Codec)

	data, err := store.fs.ReadFile("/artifacts/model.pkl")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\n"))
}

func TestSaveObjectLogsSuccess(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	store := newMemoryStore()
	require.NoError(t, store.SaveObject("/artifacts/model.json", sampleModel()))

	assert.Contains(t, buf.String(), "Object saved")
	assert.Contains(t, buf.String(), `"path":"/artifacts/model.json"`)
	assert.Contains(t, buf.String(), `"component":"artifact"`)
}

func requireStashError(t *testing.T, err error, code errors.ErrorCode) *errors.StashError {
	t.Helper()
	require.Error(t, err)

	var stashErr *errors.StashError
	require.True(t, stderrors.As(err, &stashErr), "expected *errors.StashError, got %T", err)
	assert.Equal(t, code, stashErr.Code)
	return stashErr
}

func TestSaveObjectUnserializableValue(t *testing.T) {
	store := newMemoryStore()
	path := "/artifacts/model.json"

	err := store.SaveObject(path, map[string]any{"handle": make(chan int)})

	stashErr := requireStashError(t, err, errors.ErrSerialize)
	assert.Equal(t, "save", stashErr.Details[DetailOperation])
	assert.Equal(t, path, stashErr.Details[DetailPath])
	assert.Equal(t, "json", stashErr.Details[DetailCodec])
	assert.NotNil(t, stashErr.Unwrap(), "original cause is kept")

	// No cleanup: the header document was written before the payload failed.
	_, statErr := store.fs.Stat(path)
	assert.NoError(t, statErr)

	var loaded map[string]any
	_, err = store.LoadObject(path, &loaded)
	requireStashError(t, err, errors.ErrDeserialize)
}

func TestSaveObjectRecordsCaller(t *testing.T) {
	store := newMemoryStore()

	err := store.SaveObject("/artifacts/model.json", func() {})

	stashErr := requireStashError(t, err, errors.ErrSerialize)
	caller, _ := stashErr.Details[errors.DetailCaller].(string)
	assert.True(t, strings.HasPrefix(caller, "artifact_test.go:"), "caller = %q", caller)
	fn, _ := stashErr.Details[errors.DetailFunction].(string)
	assert.True(t, strings.HasSuffix(fn, "TestSaveObjectRecordsCaller"), "function = %q", fn)
}

func TestSaveObjectDirectoryCreationFails(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

	store := NewStore(Options{FS: filesystem.NewOS()})
	err := store.SaveObject(filepath.Join(blocker, "model.json"), sampleModel())

	stashErr := requireStashError(t, err, errors.ErrDirCreate)
	assert.Equal(t, "save", stashErr.Details[DetailOperation])
}

func TestSaveObjectOpenFails(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "model.json")
	require.NoError(t, os.Mkdir(target, 0755))

	store := NewStore(Options{FS: filesystem.NewOS()})
	err := store.SaveObject(target, sampleModel())

	requireStashError(t, err, errors.ErrFileCreate)
}

func TestSaveObjectUnknownDefaultCodec(t *testing.T) {
	store := NewStore(Options{FS: filesystem.NewMemory(), DefaultCodec: "pickle"})

	err := store.SaveObject("/artifacts/model.pkl", sampleModel())
	requireStashError(t, err, errors.ErrCodecUnknown)

	// A known extension still works.
	require.NoError(t, store.SaveObject("/artifacts/model.json", sampleModel()))
}

func TestPackageLevelSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifacts", "model.pkl")
	obj := map[string]any{"accuracy": 0.93}

	require.NoError(t, SaveObject(path, obj))

	var loaded map[string]any
	_, err := LoadObject(path, &loaded)
	require.NoError(t, err)
	assert.Equal(t, obj, loaded)
}

func TestLoadObjectMissingFile(t *testing.T) {
	store := newMemoryStore()

	var loaded model
	_, err := store.LoadObject("/artifacts/missing.json", &loaded)

	stashErr := requireStashError(t, err, errors.ErrFileNotFound)
	assert.Equal(t, "load", stashErr.Details[DetailOperation])
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestLoadObjectRejectsForeignFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{
			name:    "not an artifact",
			content: `{"name": "plain json"}`,
			code:    errors.ErrFormatVersion,
		},
		{
			name:    "newer version",
			content: `{"format": "stash-artifact", "version": 2, "codec": "json"}`,
			code:    errors.ErrFormatVersion,
		},
		{
			name:    "garbage",
			content: "\x80\x04\x95pickle",
			code:    errors.ErrDeserialize,
		},
		{
			name:    "header only",
			content: `{"format": "stash-artifact", "version": 1, "codec": "json"}`,
			code:    errors.ErrDeserialize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			require.NoError(t, store.fs.WriteFile("/artifacts/model.json", []byte(tt.content), 0644))

			var loaded model
			_, err := store.LoadObject("/artifacts/model.json", &loaded)
			requireStashError(t, err, tt.code)
		})
	}
}

func TestInfo(t *testing.T) {
	store := newMemoryStore()
	require.NoError(t, store.SaveObject("/artifacts/model.yaml", sampleModel()))

	info, err := store.Info("/artifacts/model.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/artifacts/model.yaml", info.Path)
	assert.Equal(t, "yaml", info.Codec)
	assert.Equal(t, "artifact.model", info.Kind)
	assert.Equal(t, 1, info.Version)
	assert.Greater(t, info.Size, int64(0))
}

func TestList(t *testing.T) {
	store := newMemoryStore()
	require.NoError(t, store.SaveObject("/artifacts/b.json", sampleModel()))
	require.NoError(t, store.SaveObject("/artifacts/a.gob", sampleModel()))
	require.NoError(t, store.SaveObject("/artifacts/nested/c.yaml", sampleModel()))
	require.NoError(t, store.fs.WriteFile("/artifacts/notes.txt", []byte("not an artifact"), 0644))

	infos, err := store.List("/artifacts")
	require.NoError(t, err)

	var paths []string
	for _, info := range infos {
		paths = append(paths, info.Path)
	}
	assert.Equal(t, []string{
		"/artifacts/a.gob",
		"/artifacts/b.json",
		"/artifacts/nested/c.yaml",
	}, paths)
}

func TestListMissingDirectory(t *testing.T) {
	store := newMemoryStore()

	infos, err := store.List("/nowhere")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestLoadObjectProbesCodecsForUnknownExtensions(t *testing.T) {
	memFS := filesystem.NewMemory()

	for _, written := range []string{"yaml", "gob", "json"} {
		t.Run(written, func(t *testing.T) {
			path := "/artifacts/" + written + "/model.pkl"
			writer := NewStore(Options{FS: memFS, DefaultCodec: written, Now: fixedNow})
			require.NoError(t, writer.SaveObject(path, sampleModel()))

			reader := NewStore(Options{FS: memFS, DefaultCodec: "json"})
			var loaded model
			header, err := reader.LoadObject(path, &loaded)
			require.NoError(t, err)
			assert.Equal(t, written, header.Codec)
			assert.Equal(t, sampleModel(), loaded)
		})
	}
}

func TestLoadObjectKnownExtensionDoesNotProbe(t *testing.T) {
	store := newMemoryStore()
	yamlStore := NewStore(Options{FS: store.fs, DefaultCodec: "yaml", Now: fixedNow})
	require.NoError(t, yamlStore.SaveObject("/artifacts/model.pkl", sampleModel()))

	data, err := store.fs.ReadFile("/artifacts/model.pkl")
	require.NoError(t, err)
	require.NoError(t, store.fs.WriteFile("/artifacts/model.json", data, 0644))

	var loaded model
	_, err = store.LoadObject("/artifacts/model.json", &loaded)
	stashErr := requireStashError(t, err, errors.ErrDeserialize)
	assert.Equal(t, "json", stashErr.Details[DetailCodec])
}
