package style_test

import (
	"testing"

	"github.com/arthur-debert/modorder/pkg/style"
	"github.com/stretchr/testify/assert"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []style.Status
		expected style.Status
	}{
		{"empty", nil, style.StatusOK},
		{"all ok", []style.Status{style.StatusOK, style.StatusBuiltin}, style.StatusOK},
		{"extension only", []style.Status{style.StatusOK, style.StatusExtension}, style.StatusExtension},
		{"missing wins", []style.Status{style.StatusExtension, style.StatusMissing}, style.StatusMissing},
		{"depends counts as missing", []style.Status{style.StatusDepends}, style.StatusMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]style.EntryLine, len(tt.statuses))
			for i, s := range tt.statuses {
				lines[i] = style.EntryLine{Status: s}
			}
			assert.Equal(t, tt.expected, style.AggregateStatus(lines))
		})
	}
}

func TestRenderEntryLine(t *testing.T) {
	line := style.RenderEntryLine(style.EntryLine{
		Position: 2,
		Name:     "Alpha",
		UUID:     "aaaa",
		Version:  "1.0.0.0",
		Status:   style.StatusDepends,
		Note:     "missing dependencies: Beta",
		Project:  true,
	})

	assert.Contains(t, line, "3.")
	assert.Contains(t, line, "Alpha")
	assert.Contains(t, line, "[project]")
	assert.Contains(t, line, "v1.0.0.0")
	assert.Contains(t, line, "aaaa")
	assert.Contains(t, line, "missing dependencies: Beta")
}

func TestRenderOrder(t *testing.T) {
	assert.Contains(t, style.RenderOrder("Current", nil), "The load order is empty")

	out := style.RenderOrder("Current", []style.EntryLine{
		{Position: 0, Name: "Alpha", UUID: "a", Status: style.StatusOK},
		{Position: 1, Name: "Beta", UUID: "b", Status: style.StatusMissing},
	})
	assert.Contains(t, out, "Current")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "The load order is empty")
}
