package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nfrund/specboard/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		// Flag state is package global; undo whatever this run parsed.
		rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	})
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "module2.json"), []byte(`{}`), 0644))

	out := runCommand(t, "check", "--modules-dir", dir)

	assert.JSONEq(t, `{"module1": false, "module2": true}`, out)
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")

	assert.Equal(t, "specboard v"+version+"\n", out)
}

func TestApplyFlags(t *testing.T) {
	t.Run("unset flags keep the environment", func(t *testing.T) {
		cfg := &config.Config{Debug: true, Addr: ":9999", ModulesDir: "/from/env"}
		applyFlags(serveCmd, cfg)

		assert.True(t, cfg.Debug)
		assert.Equal(t, ":9999", cfg.Addr)
		assert.Equal(t, "/from/env", cfg.ModulesDir)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		require.NoError(t, serveCmd.Flags().Set("addr", "127.0.0.1:7000"))
		t.Cleanup(func() {
			_ = serveCmd.Flags().Set("addr", config.DefaultAddr)
			serveCmd.Flags().Lookup("addr").Changed = false
		})

		cfg := &config.Config{Addr: ":9999"}
		applyFlags(serveCmd, cfg)

		assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
	})
}
