package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Rana718/scout/internal/mockgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCommandWritesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "mock.json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"mock", "--count", "25", "--start", "2024-01-01", "--end", "2024-01-03", "-o", path, "--seed", "5"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc mockgen.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Transactions, 25)
	assert.Equal(t, 25, doc.Summary.TotalTransactions)
	assert.Equal(t, mockgen.DateRange{Start: "2024-01-01", End: "2024-01-03"}, doc.Summary.DateRange)

	assert.Contains(t, out.String(), "Mock data generation completed")
	assert.Contains(t, out.String(), "Transactions: 25")
}
