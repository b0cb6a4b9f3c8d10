package vectors_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/vectors"
)

func TestRead(t *testing.T) {
	const src = `# A B C
01X

1;0;1
 x, u ,- # unknowns
1 1
`
	rows, err := vectors.Read(strings.NewReader(src))
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, vectors.Write(&buf, rows, ""))
	assert.Equal(t, "01X\n101\nXXX\n11\n", buf.String())
}

func TestRead_errors(t *testing.T) {
	data := []struct {
		src  string
		line int
		col  int
	}{
		{"01\n0a", 2, 2},
		{"0;1;2", 1, 5},
		{"\n\n  01Z", 3, 5},
	}
	for _, d := range data {
		_, err := vectors.Read(strings.NewReader(d.src))
		require.Error(t, err, d.src)
		var e *vectors.Error
		require.True(t, errors.As(err, &e), "%+v", err)
		assert.Equal(t, d.line, e.Line, d.src)
		assert.Equal(t, d.col, e.Col, d.src)
	}
}

func TestParseLine(t *testing.T) {
	row, err := vectors.ParseLine("  # comment")
	require.NoError(t, err)
	assert.Nil(t, row)

	row, err = vectors.ParseLine("1\t0")
	require.NoError(t, err)
	assert.Equal(t, []logicsim.Value{logicsim.Hi, logicsim.Lo}, row)
}
