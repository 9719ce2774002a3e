package present_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/circuittrace/board"
	"github.com/katalvlaran/circuittrace/frontier"
	"github.com/katalvlaran/circuittrace/present"
	"github.com/katalvlaran/circuittrace/tracer"
)

func search(t *testing.T, src string) *tracer.Result {
	t.Helper()
	b, err := board.ParseString(src)
	require.NoError(t, err)
	res, err := tracer.Trace(b, tracer.WithDiscipline(frontier.Queue))
	require.NoError(t, err)
	return res
}

func TestNew(t *testing.T) {
	for in, want := range map[string]present.Presenter{
		"text": present.Text{}, "C": present.Text{}, "console": present.Text{},
		"json": present.JSON{Indent: "  "}, "YAML": present.YAML{}, "yml": present.YAML{},
	} {
		got, err := present.New(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := present.New("gui")
	assert.ErrorIs(t, err, present.ErrUnknownFormat)
}

func TestText(t *testing.T) {
	res := search(t, "2 3\n1 O O\nO O 2\n")
	var buf bytes.Buffer
	require.NoError(t, present.Text{}.Present(&buf, res))

	want := "1 O O \nT T 2 \n\n" +
		"1 T O \nO T 2 \n\n" +
		"1 T T \nO O 2 \n\n"
	assert.Equal(t, want, buf.String())
}

func TestText_Empty(t *testing.T) {
	res := search(t, "3 3\n1 O O\nO O X\nO X 2\n")
	var buf bytes.Buffer
	require.NoError(t, present.Text{}.Present(&buf, res))
	assert.Empty(t, buf.String())
}

func TestJSON(t *testing.T) {
	res := search(t, "1 3\n1 O 2\n")
	var buf bytes.Buffer
	require.NoError(t, present.JSON{}.Present(&buf, res))

	var got present.Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	want := present.Document{
		Discipline: "queue",
		Best:       2,
		Count:      1,
		Explored:   2,
		Paths: []present.Path{
			{Length: 2, Head: present.Point{Row: 0, Col: 2}, Grid: []string{"1 T 2"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON_EmptyPaths(t *testing.T) {
	res := search(t, "1 3\n1 X 2\n")
	var buf bytes.Buffer
	require.NoError(t, present.JSON{}.Present(&buf, res))
	assert.JSONEq(t, `{"discipline":"queue","best":0,"count":0,"explored":0,"paths":[]}`, buf.String())
}

func TestYAML(t *testing.T) {
	res := search(t, "2 3\n1 O O\nO O 2\n")
	var buf bytes.Buffer
	require.NoError(t, present.YAML{}.Present(&buf, res))

	var got present.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, present.NewDocument(res), got)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, []string{"1 T T", "O O 2"}, got.Paths[2].Grid)
}
