package ux

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type renderable struct {
	Name string `json:"name" yaml:"name"`
}

func (r renderable) RenderText() string {
	return "name: " + r.Name + "\n"
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"yaml", false},
		{"text", false},
		{"", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			_, err := NewFormatter(tt.format, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(renderable{Name: "Clínica Central"}))

	var decoded renderable
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Clínica Central", decoded.Name)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(renderable{Name: "Clínica Central"}))
	assert.Contains(t, buf.String(), "name: Clínica Central")
}

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format(renderable{Name: "Clínica Central"}))
	assert.Equal(t, "name: Clínica Central\n", buf.String())
}

func TestTextFormatter_String(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("text", &FormatterOptions{Writer: &buf})
	require.NoError(t, err)

	require.NoError(t, f.Format("plain line"))
	assert.True(t, strings.HasPrefix(buf.String(), "plain line"))
}

func TestTextFormatter_UnsupportedType(t *testing.T) {
	f, err := NewFormatter("text", nil)
	require.NoError(t, err)

	assert.Error(t, f.Format(struct{ X int }{1}))
}
