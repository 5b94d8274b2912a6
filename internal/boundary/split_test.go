package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zostay/go-eml/internal/boundary"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	body := []byte("preamble\r\n" +
		"--MARK\r\n" +
		"part one\r\n" +
		"--MARK\r\n" +
		"part two\r\n" +
		"--MARK--\r\n" +
		"epilogue\r\n")

	ranges, terminated := boundary.Split(body, "MARK")
	assert.True(t, terminated)
	assert.Len(t, ranges, 2)
	assert.Equal(t, "part one", string(ranges[0]))
	assert.Equal(t, "part two", string(ranges[1]))
}

func TestSplitMissingTerminator(t *testing.T) {
	t.Parallel()

	body := []byte("--B\nfirst\n--B\nsecond part\nmore text\n")

	ranges, terminated := boundary.Split(body, "B")
	assert.False(t, terminated)
	assert.Len(t, ranges, 2)
	assert.Equal(t, "first", string(ranges[0]))
	assert.Equal(t, "second part\nmore text\n", string(ranges[1]))
}

func TestSplitNoSeparators(t *testing.T) {
	t.Parallel()

	ranges, terminated := boundary.Split([]byte("no marks here\n"), "B")
	assert.False(t, terminated)
	assert.Empty(t, ranges)
}

func TestSplitTransportPadding(t *testing.T) {
	t.Parallel()

	body := []byte("--B  \npadded\n--B--\t\n")
	ranges, terminated := boundary.Split(body, "B")
	assert.True(t, terminated)
	assert.Len(t, ranges, 1)
	assert.Equal(t, "padded", string(ranges[0]))
}

func TestSplitSimilarBoundaryNotMatched(t *testing.T) {
	t.Parallel()

	// "--Bx" is not a marker for boundary "B"
	body := []byte("--B\n--Bx is body text\n--B--\n")
	ranges, terminated := boundary.Split(body, "B")
	assert.True(t, terminated)
	assert.Len(t, ranges, 1)
	assert.Equal(t, "--Bx is body text", string(ranges[0]))
}
