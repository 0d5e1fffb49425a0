package svg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONShape(t *testing.T) {
	lines := []Polyline{
		{Pt(0, 0), Pt(10, 0)},
		{Pt(5, 5), Pt(6, 7.5)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, lines, false))
	assert.Equal(t, `[[{"x":0,"y":0},{"x":10,"y":0}],[{"x":5,"y":5},{"x":6,"y":7.5}]]`+"\n", buf.String())
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil, false))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteJSONIndented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, []Polyline{{Pt(1, 2), Pt(3, 4)}}, true))
	assert.True(t, strings.HasPrefix(buf.String(), "[\n  [\n    {\n      \"x\": 1,"), buf.String())
}

func TestReadJSONPreservesOrder(t *testing.T) {
	input := `[[{"x":3,"y":1},{"x":1,"y":3},{"x":2,"y":2}],[{"x":-1,"y":0.5},{"x":0,"y":0}]]`

	lines, err := ReadJSON(strings.NewReader(input))
	require.NoError(t, err)

	want := []Polyline{
		{Pt(3, 1), Pt(1, 3), Pt(2, 2)},
		{Pt(-1, 0.5), Pt(0, 0)},
	}
	assert.Equal(t, want, lines)
}

func TestReadJSONRejectsGarbage(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`[[{"x":"a"}]]`))
	assert.Error(t, err)
}
