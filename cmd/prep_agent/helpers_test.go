package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command in-process and returns its combined output.
// Flag values are package globals, so they are reset after each run.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	defer resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// sqliteArgs points a command at a fresh SQLite store shared by the calls of one test.
func sqliteArgs(t *testing.T) []string {
	t.Helper()
	return []string{"--store", "sqlite", "--sqlite-path", filepath.Join(t.TempDir(), "prep.db")}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func decodeOutput(t *testing.T, out string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func withArgs(store []string, args ...string) []string {
	return append(append([]string{}, args...), store...)
}
