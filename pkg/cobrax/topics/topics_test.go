package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"load-order.md":      {Data: []byte("# Load order\n\nMods load top to bottom.")},
		"option-format.txt":  {Data: []byte("Output formats: auto, terminal, text, json")},
		"nested/versions.md": {Data: []byte("# Versions")},
		"notes.json":         {Data: []byte("{}")},
	}
}

type upperRenderer struct{}

func (upperRenderer) Render(content, format string) string {
	if format != ".md" {
		return content
	}
	return strings.ToUpper(content)
}

func TestScanTopics(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{"load-order", "option-format", "versions"}, tm.ListTopics())

	topic, ok := tm.GetTopic("--format")
	require.True(t, ok)
	assert.Equal(t, "Output formats: auto, terminal, text, json", topic.Content)

	_, ok = tm.GetTopic("notes")
	assert.False(t, ok)
}

func TestScanTopicsCustomExtensions(t *testing.T) {
	tm := NewWithOptions(testFS(), Options{Extensions: []string{".json"}})
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"notes"}, tm.ListTopics())
}

func TestScanTopicsNilFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "modorder", Run: func(*cobra.Command, []string) {}}
	root.AddCommand(&cobra.Command{Use: "validate", Short: "Validate the active order", Run: func(*cobra.Command, []string) {}})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)

	require.NoError(t, InitializeWithOptions(root, testFS(), Options{Renderer: upperRenderer{}}))
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"topic list", []string{"help", "topics"}, "Option topics:\n  --format"},
		{"markdown topic rendered", []string{"help", "load-order"}, "# LOAD ORDER"},
		{"text topic as is", []string{"help", "format"}, "Output formats: auto"},
		{"command help", []string{"help", "validate"}, "Validate the active order"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, out := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}
