package walk_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-eml/message"
	"github.com/zostay/go-eml/message/walk"
)

const treeMsg = `Subject: tree
Content-Type: multipart/mixed; boundary=outer

--outer
Content-Type: multipart/alternative; boundary=inner

--inner
Content-Type: text/plain

plain
--inner
Content-Type: text/html

<p>html</p>
--inner--
--outer
Content-Type: image/png

not really a png
--outer--
`

func parseTree(t *testing.T) message.Part {
	t.Helper()
	m, err := message.Parse(strings.NewReader(treeMsg))
	require.NoError(t, err)
	return m
}

func TestAndProcess(t *testing.T) {
	t.Parallel()

	m := parseTree(t)

	var types []string
	var depths []int
	err := walk.AndProcess(
		func(part message.Part, parents []message.Part) error {
			mt, _ := part.GetHeader().GetMediaType()
			types = append(types, mt)
			depths = append(depths, len(parents))
			return nil
		},
		m)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"multipart/mixed",
		"multipart/alternative",
		"text/plain",
		"text/html",
		"image/png",
	}, types)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)
}

func TestAndProcess_Error(t *testing.T) {
	t.Parallel()

	m := parseTree(t)

	boom := errors.New("boom")
	count := 0
	err := walk.AndProcess(
		func(message.Part, []message.Part) error {
			count++
			if count == 2 {
				return boom
			}
			return nil
		},
		m)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, count)
}

func TestLeaves(t *testing.T) {
	t.Parallel()

	m := parseTree(t)

	leaves := walk.Leaves(m)
	require.Len(t, leaves, 3)

	var types []string
	for _, leaf := range leaves {
		mt, _ := leaf.GetHeader().GetMediaType()
		types = append(types, mt)
	}
	assert.Equal(t, []string{"text/plain", "text/html", "image/png"}, types)
}

func TestLeaves_Simple(t *testing.T) {
	t.Parallel()

	m, err := message.Parse(strings.NewReader("Subject: flat\n\nbody\n"))
	require.NoError(t, err)

	leaves := walk.Leaves(m)
	require.Len(t, leaves, 1)
	assert.Same(t, m, leaves[0])
}
