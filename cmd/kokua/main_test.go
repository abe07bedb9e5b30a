package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kokua-cli/internal/adapters/driven/storage/memory"
)

func TestOpenStores_Ephemeral(t *testing.T) {
	t.Setenv(ephemeralEnv, "1")
	home := t.TempDir()

	records, history, closeStore, err := openStores(home)
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &memory.RecordStore{}, records)
	assert.IsType(t, &memory.RunHistory{}, history)
	assert.NoDirExists(t, home+"/data")
}

func TestOpenStores_SQLite(t *testing.T) {
	t.Setenv(ephemeralEnv, "")
	home := t.TempDir()

	records, history, closeStore, err := openStores(home)
	require.NoError(t, err)
	defer closeStore()

	require.NoError(t, records.Set(context.Background(), "k", []byte("v")))
	got, ok, err := records.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	runs, err := history.Recent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)
	assert.FileExists(t, home+"/data/records.db")
}
