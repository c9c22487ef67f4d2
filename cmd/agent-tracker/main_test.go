package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agent-tracker/pkg/version"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, version.Full()+"\n", out.String())
}

func TestMigrateCommand_RejectsUnknownDirection(t *testing.T) {
	err := migrateCmd.Args(migrateCmd, []string{"sideways"})
	assert.Error(t, err)
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"down"}))
	assert.NoError(t, migrateCmd.Args(migrateCmd, nil))
}

func TestLoadCatalog_DefaultsToBuiltin(t *testing.T) {
	entries, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, entries, 100)
}
