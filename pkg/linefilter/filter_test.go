package linefilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReaderEmitsEachLine(t *testing.T) {
	r := NewReader()
	var got []string
	r.OnLine(func(line string) { got = append(got, line) })

	err := r.Read(strings.NewReader("a\nb\nc"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestWriterAppendsNewlines(t *testing.T) {
	w := NewWriter()
	w.Consume("first")
	w.Consume("second")

	assert.Equal(t, "first\nsecond\n", w.String())
}

func TestReaderToWriterPipeline(t *testing.T) {
	r := NewReader()
	w := NewWriter()
	r.OnLine(w.Consume)

	err := r.Read(strings.NewReader("x\ny"))
	assert.NoError(t, err)
	assert.Equal(t, "x\ny\n", w.String())
}
