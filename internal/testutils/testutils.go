package testutils

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// ModulesFs returns an in-memory modules directory holding the given files,
// keyed by file name (e.g. "module1.json").
func ModulesFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(memFs, name, []byte(content), 0644))
	}
	return memFs
}
