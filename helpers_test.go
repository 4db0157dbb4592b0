package uniql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWalk(t *testing.T) {
	n := MustParse("a{b,c{d,e{f}},g}")

	var visited []string
	Walk(n, func(path []string, node *Node) bool {
		assert.Equal(t, path[len(path)-1], node.Name())
		visited = append(visited, strings.Join(path, "/"))
		return true
	})

	assert.Equal(t, []string{"a", "a/b", "a/c", "a/c/d", "a/c/e", "a/c/e/f", "a/g"}, visited)
}

func TestWalk_SkipChildren(t *testing.T) {
	n := MustParse("a{b{x,y},c}")

	var visited []string
	Walk(n, func(path []string, node *Node) bool {
		visited = append(visited, node.Name())
		return node.Name() != "b"
	})

	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestWalk_PathsAreIndependent(t *testing.T) {
	n := MustParse("a{b{c},d{e}}")

	var paths [][]string
	Walk(n, func(path []string, _ *Node) bool {
		paths = append(paths, path)
		return true
	})

	assert.Equal(t, [][]string{
		{"a"}, {"a", "b"}, {"a", "b", "c"}, {"a", "d"}, {"a", "d", "e"},
	}, paths)
}

func TestWalk_Nil(t *testing.T) {
	called := false
	Walk(nil, func([]string, *Node) bool {
		called = true
		return true
	})
	assert.False(t, called)
}

func TestDepth(t *testing.T) {
	tests := []struct {
		model string
		want  int
	}{
		{"a", 0},
		{"a{b}", 1},
		{"a{|q}", 1},
		{"a{b,c{d}}", 2},
		{"a{b{c{d}},e}", 3},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, Depth(MustParse(tt.model)))
		})
	}
	assert.Equal(t, 0, Depth(nil))
}

func TestCount(t *testing.T) {
	assert.Equal(t, 1, Count(NewNode("a")))
	assert.Equal(t, 6, Count(MustParse("a{b,c{d,e{f}}}")))
	assert.Equal(t, 0, Count(nil))
}

func TestEqual(t *testing.T) {
	base := func() *Node {
		return NewNode("a").AddField("b").AddField("c").SetQuery("q").SetPage(1, 2).SetSort(Desc, "b")
	}

	assert.True(t, Equal(base(), base()))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(base(), nil))

	reordered := NewNode("a").AddField("c").AddField("b").SetQuery("q").SetPage(1, 2).SetSort(Desc, "b")
	assert.True(t, Equal(base(), reordered), "field order is not significant")

	assert.False(t, Equal(base(), base().SetName("x")))
	assert.False(t, Equal(base(), base().SetQuery("other")))
	assert.False(t, Equal(base(), base().SetPage(2, 2)))
	assert.False(t, Equal(base(), base().SetPageRequest(nil)))
	assert.False(t, Equal(base(), base().SetSort(Asc, "b")))
	assert.False(t, Equal(base(), base().SetSort(Desc, "b", "c")))
	assert.False(t, Equal(base(), base().AddField("d")))
	assert.False(t, Equal(base(), base().RemoveField("c").AddField("d")))
}
