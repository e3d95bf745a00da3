package submit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msprojectmerger/landing/svc/submit"
)

func TestDefaultTargets(t *testing.T) {
	t.Parallel()

	targets := submit.DefaultTargets()
	assert.Equal(t, []string{"mac", "windows"}, targets.Platforms())
	assert.Equal(t, "/downloads/MsProjectMerger.dmg", targets["mac"])
	assert.Equal(t, "/downloads/msproject-merge.exe", targets["windows"])
	assert.NoError(t, targets.Validate())
}

func TestLoadTargets(t *testing.T) {
	t.Parallel()

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "targets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("mac: https://cdn.example.com/m.dmg\nlinux: /downloads/merge.AppImage\n"), 0o600))

		targets, err := submit.LoadTargets(path)
		require.NoError(t, err)
		assert.Equal(t, submit.Targets{
			"mac":   "https://cdn.example.com/m.dmg",
			"linux": "/downloads/merge.AppImage",
		}, targets)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := submit.LoadTargets(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, submit.ErrInvalidTargets)
	})

	for name, data := range map[string]string{
		"not a mapping": "- mac\n- windows\n",
		"empty":         "",
		"empty url":     "mac: \"\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := submit.ParseTargets([]byte(data))
			assert.ErrorIs(t, err, submit.ErrInvalidTargets)
		})
	}
}
