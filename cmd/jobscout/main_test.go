package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/jobscout/cmd/jobscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HelpFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"--help flag", []string{"--help"}},
		{"-h flag", []string{"-h"}},
		{"help command", []string{"help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := main.NewMain()
			m.DBPath = filepath.Join(t.TempDir(), "test.db")

			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			err := m.Run(context.Background(), tt.args, stdout, stderr)

			require.NoError(t, err)
			help := stdout.String()
			assert.Contains(t, help, "Usage: jobscout")
			for _, cmd := range []string{"scrape", "list", "sites"} {
				assert.Contains(t, help, cmd)
			}
			assert.Empty(t, stderr.String())
		})
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{}, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), "Usage: jobscout")
}

func TestRun_HelpWithoutCreatingDB(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")
	m := main.NewMain()
	m.DBPath = dbPath

	err := m.Run(context.Background(), []string{"--help"}, &bytes.Buffer{}, &bytes.Buffer{})

	require.NoError(t, err)
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database file should not be created for --help")
}

func TestRun_Sites(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "should-not-exist.db")
	m := main.NewMain()
	m.DBPath = dbPath

	stdout := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"sites"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "https://www.work.ua/")
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "sites should not open the database")
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	t.Run("creates database and reports empty store", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "nested", "jobs.db")
		m := main.NewMain()
		m.DBPath = dbPath

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No jobs found")
		_, statErr := os.Stat(dbPath)
		assert.NoError(t, statErr)
	})

	t.Run("rejects unknown site filter", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "jobs.db")

		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"list", "--site", "monster"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unknown site")
	})
}

func TestRun_ScrapeWithoutTargets(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "jobs.db")

	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"scrape", "--static"}, &bytes.Buffer{}, stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "nothing to scrape")
}
