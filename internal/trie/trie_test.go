package trie

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tag struct {
	key string
}

func insert(t *testing.T, tr *Trie[tag], keys ...string) {
	t.Helper()
	for _, k := range keys {
		s, err := tr.Stage(k)
		require.NoError(t, err)
		tr.Commit(&s)
		tr.Payload(s.Leaf()).key = k
	}
}

func TestTrie_StageAndCommit(t *testing.T) {
	tr := New[tag](Config{})
	assert.Equal(t, 1, tr.Len())

	s, err := tr.Stage("123")
	require.NoError(t, err)
	assert.True(t, s.Fresh())
	assert.Equal(t, 4, tr.Len())
	assert.Equal(t, Nil, tr.Find("1"), "staged nodes must not be reachable before commit")

	tr.Commit(&s)
	assert.Equal(t, s.Leaf(), tr.Find("123"))
	assert.NotEqual(t, Nil, tr.Find("12"))

	again, err := tr.Stage("123")
	require.NoError(t, err)
	assert.False(t, again.Fresh())
	assert.Equal(t, s.Leaf(), again.Leaf())

	ext, err := tr.Stage("12*#")
	require.NoError(t, err)
	tr.Commit(&ext)
	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, ext.Leaf(), tr.Find("12*#"))
}

func TestTrie_Discard(t *testing.T) {
	tr := New[tag](Config{})
	insert(t, tr, "12")

	s, err := tr.Stage("12345")
	require.NoError(t, err)
	tr.Payload(s.Leaf()).key = "staged"
	tr.Discard(&s)

	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, Nil, tr.Find("123"))
	assert.True(t, tr.IsLeaf(tr.Find("12")))

	// released slots are reused before the arena grows
	arena := len(tr.nodes)
	insert(t, tr, "999")
	assert.Equal(t, arena, len(tr.nodes))
	assert.Equal(t, tag{}, *tr.Payload(tr.Find("99")))
}

func TestTrie_NodeLimit(t *testing.T) {
	tr := New[tag](Config{MaxNodes: 3})

	_, err := tr.Stage("1234")
	require.ErrorIs(t, err, ErrNodeLimit)
	assert.Equal(t, 1, tr.Len(), "a failed stage must release what it created")
	assert.Equal(t, Nil, tr.Find("1"))

	insert(t, tr, "12")
	assert.Equal(t, 3, tr.Len())

	_, err = tr.Stage("13")
	require.ErrorIs(t, err, ErrNodeLimit)

	s, err := tr.Stage("12")
	require.NoError(t, err, "existing paths need no new nodes")
	assert.False(t, s.Fresh())
}

func TestTrie_Walk(t *testing.T) {
	tr := New[tag](Config{})
	insert(t, tr, "1", "123")

	var depths []int
	last := tr.Walk("12345", func(depth int, id NodeID) bool {
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []int{0, 1, 2, 3}, depths)
	assert.Equal(t, 3, last)

	last = tr.Walk("123", func(depth int, id NodeID) bool { return depth < 1 })
	assert.Equal(t, 1, last)

	last = tr.Walk("1a3", func(int, NodeID) bool { return true })
	assert.Equal(t, 1, last)
}

func TestTrie_Cut(t *testing.T) {
	tr := New[tag](Config{})
	insert(t, tr, "12", "13", "2")

	assert.Equal(t, Nil, tr.Cut(""))
	assert.Equal(t, Nil, tr.Cut("14"))
	assert.Equal(t, Nil, tr.Cut("123"))

	sub := tr.Cut("1")
	require.NotEqual(t, Nil, sub)
	assert.Equal(t, Nil, tr.Find("1"))
	assert.NotEqual(t, Nil, tr.Find("2"))
	assert.Equal(t, 5, tr.Len(), "cut only unlinks, it does not release")

	tr.Destroy(sub, nil)
	assert.Equal(t, 2, tr.Len())
}

func TestTrie_Each(t *testing.T) {
	tr := New[tag](Config{})
	insert(t, tr, "#", "1", "*", "12", "0")

	var keys []string
	tr.Each(func(key string, _ NodeID, _ *tag) bool {
		keys = append(keys, key)
		return true
	})
	assert.Equal(t, []string{"", "0", "1", "12", "*", "#"}, keys)

	keys = keys[:0]
	tr.Each(func(key string, _ NodeID, _ *tag) bool {
		keys = append(keys, key)
		return key != "1"
	})
	assert.Equal(t, []string{"", "0", "1"}, keys)
}

func TestTrie_Dump(t *testing.T) {
	tr := New[tag](Config{})
	insert(t, tr, "12", "3")

	var buf bytes.Buffer
	err := tr.Dump(&buf, func(p *tag) string { return p.key })
	require.NoError(t, err)

	want := strings.Join([]string{
		".",
		"  1",
		"    2 12",
		"  3 3",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}
