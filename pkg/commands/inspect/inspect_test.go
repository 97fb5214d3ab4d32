package inspect

import (
	"testing"
	"time"

	"github.com/arthur-debert/stash/pkg/commands/internal"
	"github.com/arthur-debert/stash/pkg/errors"
	"github.com/arthur-debert/stash/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectArtifact(t *testing.T) {
	t.Run("reads header", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		store := internal.NewStore(env.FS, env.Config)
		path := internal.ResolveArtifact(env.Config, env.Paths, "scores.yaml")
		require.NoError(t, store.SaveObject(path, []float64{0.1, 0.2}))

		info, err := InspectArtifact(InspectArtifactOptions{
			FS:       env.FS,
			Paths:    env.Paths,
			Config:   env.Config,
			Artifact: "scores.yaml",
		})

		require.NoError(t, err)
		assert.Equal(t, path, info.Path)
		assert.Equal(t, "yaml", info.Codec)
		assert.Equal(t, "[]float64", info.Kind)
		assert.Equal(t, 1, info.Version)
		assert.WithinDuration(t, time.Now(), info.CreatedAt, time.Minute)
	})

	t.Run("foreign file", func(t *testing.T) {
		env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
		env.WriteFile("artifacts/plain.json", `{"format": "something-else", "version": 1}`)

		_, err := InspectArtifact(InspectArtifactOptions{
			FS:       env.FS,
			Paths:    env.Paths,
			Config:   env.Config,
			Artifact: "plain.json",
		})

		assert.True(t, errors.IsErrorCode(err, errors.ErrFormatVersion))
	})
}
