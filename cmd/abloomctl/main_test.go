package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "abloomctl"}
	root.AddCommand(estimateCmd())
	root.AddCommand(buildCmd())
	root.AddCommand(checkCmd())
	return root
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEstimateCommand(t *testing.T) {
	t.Parallel()

	out, err := run(t, "estimate", "100000", "0.01")
	require.NoError(t, err)
	assert.Contains(t, out, "blocks")
	assert.Contains(t, out, "expected false positive rate")
}

func TestEstimateCommandBadArgs(t *testing.T) {
	t.Parallel()

	_, err := run(t, "estimate", "not-a-number", "0.01")
	assert.Error(t, err)
}

func TestBuildAndCheckRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	wordsPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte("apple\nbanana\ncherry\n"), 0o644))

	outPath := filepath.Join(dir, "dict.ablm")
	_, err := run(t, "build", "--capacity", "1000", "--fp-rate", "0.01", "-o", outPath, wordsPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("apple\ngrapefruit\n"))
	root.SetArgs([]string{"check", outPath})
	require.NoError(t, root.Execute())
}
