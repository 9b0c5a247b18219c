package output_test

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"testing"

	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/actdeck/pkg/actions"
	"github.com/arthur-debert/actdeck/pkg/errors"
	"github.com/arthur-debert/actdeck/pkg/output"
)

func sampleActions(t *testing.T) []*actions.Action {
	t.Helper()

	noop := func() (bool, error) { return true, nil }
	gc, err := actions.New(1, "gc", noop, false)
	require.NoError(t, err)
	clearLog, err := actions.New(5, "clear_log", noop, true)
	require.NoError(t, err)
	return []*actions.Action{gc, clearLog}
}

var wantListing = output.Listing{Actions: []output.Entry{
	{ID: 1, Name: "gc"},
	{ID: 5, Name: "clear_log", RequiresConfirmation: true},
}}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleActions(t), output.FormatText))

	assert.Equal(t, "   1  gc\n   5  clear_log  [confirm]\n", buf.String())
}

func TestRenderEmpty(t *testing.T) {
	for _, format := range []output.Format{output.FormatText, output.FormatTerminal, output.FormatAuto} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.Render(&buf, nil, format))
			assert.Contains(t, buf.String(), output.MsgNoActions)
		})
	}
}

func TestRenderTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleActions(t), output.FormatTerminal))

	got := buf.String()
	assert.Contains(t, got, "Actions")
	assert.Contains(t, got, "gc")
	assert.Contains(t, got, "clear_log")
	assert.Contains(t, got, "(confirm)")
	assert.NotContains(t, got, "[confirm]")
}

func TestRenderStructured(t *testing.T) {
	tests := []struct {
		format output.Format
		decode func([]byte, interface{}) error
	}{
		{output.FormatJSON, json.Unmarshal},
		{output.FormatYAML, yaml.Unmarshal},
		{output.FormatTOML, toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.Render(&buf, sampleActions(t), tt.format))

			var got output.Listing
			require.NoError(t, tt.decode(buf.Bytes(), &got))
			assert.Equal(t, wantListing, got)
		})
	}
}

func TestRenderJSONEmptyIsList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, nil, output.FormatJSON))
	assert.JSONEq(t, `{"actions": []}`, buf.String())
}

func TestRenderTOMLUsesArrayOfTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleActions(t), output.FormatTOML))
	assert.Contains(t, buf.String(), "[[actions]]")
}

func TestRenderXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleActions(t), output.FormatXML))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("actions")
	require.NotNil(t, root)
	assert.Equal(t, "2", root.SelectAttrValue("count", ""))

	elements := root.SelectElements("action")
	require.Len(t, elements, 2)
	assert.Equal(t, "1", elements[0].SelectAttrValue("id", ""))
	assert.Equal(t, "gc", elements[0].Text())
	assert.Equal(t, "false", elements[0].SelectAttrValue("requires-confirmation", ""))
	assert.Equal(t, "5", elements[1].SelectAttrValue("id", ""))
	assert.Equal(t, "clear_log", elements[1].Text())
	assert.Equal(t, "true", elements[1].SelectAttrValue("requires-confirmation", ""))
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "no action 'x'")

	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(&buf, output.FormatJSON).RenderError(err))
	assert.JSONEq(t, `{"error": "[NOT_FOUND] no action 'x'", "code": "NOT_FOUND"}`, buf.String())

	buf.Reset()
	require.NoError(t, output.NewRenderer(&buf, output.FormatText).RenderError(stderrors.New("plain")))
	assert.Equal(t, "Error: plain\n", buf.String())
}

func TestRenderMessage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.NewRenderer(&buf, output.FormatText).RenderMessage("Success", "done"))
	assert.Equal(t, "done\n", buf.String())

	buf.Reset()
	require.NoError(t, output.NewRenderer(&buf, output.FormatJSON).RenderMessage("Success", "done"))
	assert.JSONEq(t, `{"message": "done"}`, buf.String())
}

func TestResolveKeepsExplicitFormat(t *testing.T) {
	assert.Equal(t, output.FormatYAML, output.FormatYAML.Resolve(os.Stdout))
}

func TestDetectFormatHonoursNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, output.FormatText, output.DetectFormat(os.Stdout))
	assert.Equal(t, output.FormatText, output.FormatAuto.Resolve(os.Stdout))
}

func TestDetectFormatPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.Equal(t, output.FormatText, output.DetectFormat(w))
}
