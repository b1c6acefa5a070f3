package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lpg-backoffice/internal/database/models"
	"lpg-backoffice/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdmin(t *testing.T) {
	_, err := parseAdmin("")
	assert.ErrorContains(t, err, "--admin is required")

	_, err = parseAdmin("tenant-7")
	assert.Error(t, err)

	id := uuid.New()
	got, err := parseAdmin(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestReadDocument(t *testing.T) {
	doc := service.BackupDocument{
		Version:     service.BackupVersion,
		AdminID:     uuid.New(),
		GeneratedAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC),
		Kind:        models.BackupManual,
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	t.Run("stdin", func(t *testing.T) {
		got, err := readDocument(bytes.NewReader(raw), "-")
		require.NoError(t, err)
		assert.Equal(t, doc.AdminID, got.AdminID)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "backup.json")
		require.NoError(t, os.WriteFile(path, raw, 0o600))
		got, err := readDocument(nil, path)
		require.NoError(t, err)
		assert.Equal(t, service.BackupVersion, got.Version)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := readDocument(strings.NewReader("not json"), "")
		assert.ErrorContains(t, err, "decode backup document")
	})
}

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"seed"},
		{"backup", "export"},
		{"backup", "restore"},
		{"otp", "purge"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRestoreRejectsBadDocumentBeforeConnecting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version":99,"admin_id":"`+uuid.NewString()+`"}`), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"backup", "restore", "--admin", uuid.NewString(), "--in", path})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "unsupported backup version")
}
