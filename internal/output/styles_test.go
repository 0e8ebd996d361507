package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name   string
		status string
		wantFG lipgloss.TerminalColor
	}{
		{
			name:   "created returns green",
			status: StatusCreated,
			wantFG: ColorGreen,
		},
		{
			name:   "overwritten returns yellow",
			status: StatusOverwritten,
			wantFG: ColorYellow,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
			wantFG: lipgloss.NoColor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	result := FormatFileLine("DummyOpponent000000000.h", StatusCreated)

	assert.Contains(t, result, "DummyOpponent000000000.h")
	assert.Contains(t, result, StatusCreated)
	assert.True(t, strings.HasPrefix(stripAnsi(result), "f:"), "should start with f: prefix")

	t.Run("alignment consistency", func(t *testing.T) {
		line1 := stripAnsi(FormatFileLine("DummyOpponent000000000.h", StatusCreated))
		line2 := stripAnsi(FormatFileLine("DummyOpponent000000000.cpp", StatusCreated))

		assert.Equal(t, strings.Index(line1, StatusCreated), strings.Index(line2, StatusCreated),
			"status words should align to same column")
	})

	t.Run("long names keep a two space gap", func(t *testing.T) {
		name := strings.Repeat("x", minFileColumnWidth+5)
		line := stripAnsi(FormatFileLine(name, StatusOverwritten))
		assert.Contains(t, line, name+"  "+StatusOverwritten)
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Generated 10 pairs")
	assert.Contains(t, result, "✔")
	assert.Contains(t, result, "Generated 10 pairs")
}

// stripAnsi removes ANSI escape sequences from a string.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
