package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsightsCmd_Use(t *testing.T) {
	assert.Equal(t, "insights [document-id]", insightsCmd.Use)
}

func TestInsightsCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"insights"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestInsightsCmd_PrintsSections(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"insights", "doc-1"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Summary:")
	assert.Contains(t, buf.String(), "A quarterly report covering revenue growth.")
	assert.Contains(t, buf.String(), "Key points:")
	assert.Contains(t, buf.String(), "Revenue grew twelve percent year over year")
	assert.Contains(t, buf.String(), "Entities:")
	assert.Contains(t, buf.String(), "Acme Corp")
}

func TestInsightsCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"insights", "--json", "doc-1"})
	defer func() {
		rootCmd.SetArgs(nil)
		insightsJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Summary\"")
	assert.Contains(t, buf.String(), "\"KeyPoints\"")
	assert.Contains(t, buf.String(), "\"Entities\"")
}

func TestInsightsCmd_UnknownDocument(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"insights", "doc-404"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no insights for document doc-404")
}
