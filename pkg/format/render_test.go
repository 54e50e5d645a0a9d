package format

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/borrowlint/pkg/borrow"
)

func invalidVerdict(t *testing.T) *borrow.Verdict {
	t.Helper()
	v, err := borrow.CheckString("DECL x mut=false\nASSIGN x\n")
	require.NoError(t, err)
	require.False(t, v.Valid)
	return v
}

func validVerdict(t *testing.T) *borrow.Verdict {
	t.Helper()
	v, err := borrow.CheckString("DECL x mut=true\nASSIGN x 1\n")
	require.NoError(t, err)
	require.True(t, v.Valid)
	return v
}

func TestNewReport(t *testing.T) {
	rep := NewReport("trace.bl", invalidVerdict(t))

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "trace.bl", rep.Source)
	assert.False(t, rep.Valid)
	require.NotNil(t, rep.ViolationIndex)
	assert.Equal(t, 1, *rep.ViolationIndex)
	assert.Equal(t, "ImmutableMutation", rep.ViolationKind)
	require.NotNil(t, rep.Diagnostic)

	// Each run gets its own ID.
	other := NewReport("trace.bl", invalidVerdict(t))
	assert.NotEqual(t, rep.ID, other.ID)
}

func TestNewReport_Valid(t *testing.T) {
	rep := NewReport("", validVerdict(t))

	assert.True(t, rep.Valid)
	assert.Nil(t, rep.ViolationIndex)
	assert.Empty(t, rep.ViolationKind)
	assert.Nil(t, rep.Diagnostic)
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	err := r.Render(&buf, NewReport("notes/owners.bl", invalidVerdict(t)), FormatText)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "notes/owners.bl")
	assert.Contains(t, out, "BC03")
	assert.Contains(t, out, "op 1")
	assert.Contains(t, out, "immutable")
}

func TestRenderText_Valid(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	err := r.Render(&buf, NewReport("", validVerdict(t)), FormatText)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "trace: valid")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	rep := NewReport("t.bl", invalidVerdict(t))
	require.NoError(t, r.Render(&buf, rep, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, rep.ID, decoded["id"])
	assert.Equal(t, false, decoded["valid"])
	assert.Equal(t, float64(1), decoded["violation_index"])
	assert.Equal(t, "ImmutableMutation", decoded["violation_kind"])
}

func TestRenderJSON_ValidOmitsViolationFields(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	require.NoError(t, r.Render(&buf, NewReport("", validVerdict(t)), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.NotContains(t, decoded, "violation_index")
	assert.NotContains(t, decoded, "violation_kind")
	assert.NotContains(t, decoded, "diagnostic")
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	require.NoError(t, r.Render(&buf, NewReport("t.bl", invalidVerdict(t)), FormatTable))

	out := buf.String()
	for _, want := range []string{"SOURCE", "VALID", "KIND", "ImmutableMutation", "no"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	require.NoError(t, r.Render(&buf, NewReport("t.bl", invalidVerdict(t)), FormatMarkdown))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "**t.bl**: invalid"))
	assert.Contains(t, out, "| Op | Kind | Severity | Message |")
	assert.Contains(t, out, "ImmutableMutation")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	err := r.Render(&buf, NewReport("", validVerdict(t)), "yaml")
	assert.Error(t, err)
}

func TestRender_DefaultFormatIsText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(false)

	require.NoError(t, r.Render(&buf, NewReport("", validVerdict(t)), ""))
	assert.Contains(t, buf.String(), "valid")
}
