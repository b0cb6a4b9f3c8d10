package wave_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/wave"
)

func notCircuit(t *testing.T) *logicsim.Circuit {
	t.Helper()
	b := logicsim.NewBuilder("inverter")
	require.NoError(t, b.AddInput("A"))
	_, err := b.Add("n", logicsim.KindNot, "Y", "A")
	require.NoError(t, err)
	c, err := b.Build()
	require.NoError(t, err)
	return c
}

func record(t *testing.T, c *logicsim.Circuit, names ...string) *wave.Recorder {
	t.Helper()
	r, err := wave.NewRecorder(c, names...)
	require.NoError(t, err)
	in := [][]logicsim.Value{{logicsim.Lo}, {logicsim.Hi}, {logicsim.X}, {logicsim.Lo}}
	var tr logicsim.Trace
	require.NoError(t, logicsim.Run(c, in, &tr, &logicsim.Options{OnStep: r.OnStep}))
	return r
}

func TestRecorder(t *testing.T) {
	r := record(t, notCircuit(t))
	assert.Equal(t, []string{"A", "Y"}, r.Names())
	assert.Equal(t, 4, r.Steps())
	assert.Equal(t, []logicsim.Value{logicsim.Lo, logicsim.Hi, logicsim.X, logicsim.Lo}, r.History(0))
	// NOT holds its output on X
	assert.Equal(t, []logicsim.Value{logicsim.Hi, logicsim.Lo, logicsim.Lo, logicsim.Hi}, r.History(1))

	r = record(t, notCircuit(t), "Y")
	assert.Equal(t, []string{"Y"}, r.Names())

	_, err := wave.NewRecorder(notCircuit(t), "Z")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	r := record(t, notCircuit(t))
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, "svg"))
	assert.Contains(t, buf.String(), "<svg")

	buf.Reset()
	require.NoError(t, r.Render(&buf, "PNG"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	assert.Error(t, r.Render(&buf, "bmp"))
}

func TestSave(t *testing.T) {
	r := record(t, notCircuit(t))
	dir := t.TempDir()
	require.NoError(t, r.Save(filepath.Join(dir, "out.pdf")))
	assert.FileExists(t, filepath.Join(dir, "out.pdf"))
	assert.Error(t, r.Save(filepath.Join(dir, "out.txt")))
}
