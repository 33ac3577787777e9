package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danreyes/reckon/internal/model"
)

func testFormatter(buf *bytes.Buffer) *Formatter {
	return &Formatter{Writer: buf, Format: FormatCLI, ColorMode: ColorNever}
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	f := &Formatter{Writer: &buf, ColorMode: ColorAlways}
	assert.True(t, f.IsColorEnabled())

	f.ColorMode = ColorNever
	assert.False(t, f.IsColorEnabled())

	// Auto against a non-file writer never colors.
	f.ColorMode = ColorAuto
	assert.False(t, f.IsColorEnabled())
}

func TestCLIFormatterPrefixes(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))

	cli.Success("saved")
	cli.Warning("careful")
	cli.Error("broken")
	cli.Title("Header")
	cli.Muted("aside")

	out := buf.String()
	assert.Contains(t, out, "✓ saved")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✗ broken")
	assert.Contains(t, out, "Header")
	assert.Contains(t, out, "aside")
}

func TestPrintTransaction(t *testing.T) {
	var buf bytes.Buffer
	cli := NewCLIFormatter(testFormatter(&buf))

	tx := &model.Transaction{
		Key:        "tx:casa:0195f1e2-aaaa-bbbb-cccc-1234567890ab",
		ProjectSID: "casa",
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     150000,
		Kind:       model.KindExpense,
		Note:       "roof repair",
	}
	cli.PrintTransaction(tx)

	out := buf.String()
	assert.Contains(t, out, "567890ab") // trailing key fragment only
	assert.NotContains(t, out, "tx:casa:")
	assert.Contains(t, out, "2026-03-14")
	assert.Contains(t, out, "expense")
	assert.Contains(t, out, "$1500.00")
	assert.Contains(t, out, "roof repair")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatJSON, ColorMode: ColorNever}

	require.NoError(t, f.JSON(map[string]int{"count": 3}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 3, decoded["count"])
}

func TestJSONPrintError(t *testing.T) {
	var buf bytes.Buffer
	j := NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON})

	require.NoError(t, j.PrintError("error", "project does not exist", "Create it first"))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "project does not exist", decoded["message"])
	assert.Equal(t, "Create it first", decoded["suggestion"])

	buf.Reset()
	require.NoError(t, j.PrintError("error", "boom", ""))
	var bare map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &bare))
	_, hasSuggestion := bare["suggestion"]
	assert.False(t, hasSuggestion)
}
