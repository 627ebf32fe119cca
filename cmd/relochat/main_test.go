package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/mrmovin/relochat/cmd/relochat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainTestData = `City,StateName,2021_Avg_Rent,2022_Avg_Rent,2023_Avg_Rent,2024_Avg_Rent,2025_Avg_Rent,Current_Rent
United States,,1500,1600,1700,1800,1900,1900
"Seattle, WA",WA,1900,2000,2150,2250,2300,2300
"Austin, TX",TX,1680,1750,1800,1780,1764,1764
`

func writeMainTestData(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metro_rents.csv")
	require.NoError(t, os.WriteFile(path, []byte(mainTestData), 0644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command returns an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, strings.NewReader(""), stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("states lists dataset state codes", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"states", "--data", writeMainTestData(t)},
			strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "TX\nWA\n", stdout.String())
	})

	t.Run("ask answers a question end to end", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"ask", "cheapest metros", "--data", writeMainTestData(t)},
			strings.NewReader(""), stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Austin, TX")
	})

	t.Run("ask with a missing dataset fails with a friendly message", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"ask", "cheapest metros", "--data", filepath.Join(t.TempDir(), "missing.csv")},
			strings.NewReader(""), stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Rent dataset not found.")
	})
}
