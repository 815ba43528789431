package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(g BlockGroup) []string {
	out := make([]string, len(g.Blocks))
	for i, b := range g.Blocks {
		out[i] = b.ID
	}
	return out
}

func TestGroupBlocks(t *testing.T) {
	blocks := []Block{
		textBlock("h", Heading1{}),
		textBlock("b1", BulletedListItem{}),
		textBlock("b2", BulletedListItem{}),
		textBlock("n1", NumberedListItem{}),
		textBlock("b3", BulletedListItem{}),
		textBlock("p", Paragraph{}),
		textBlock("n2", NumberedListItem{}),
		textBlock("n3", NumberedListItem{}),
	}

	groups := GroupBlocks(blocks)

	kinds := make([]GroupKind, len(groups))
	for i, g := range groups {
		kinds[i] = g.Kind
	}
	assert.Equal(t, []GroupKind{GroupSingle, GroupBulleted, GroupNumbered, GroupBulleted, GroupSingle, GroupNumbered}, kinds)
	assert.Equal(t, []string{"b1", "b2"}, ids(groups[1]))
	assert.Equal(t, []string{"n1"}, ids(groups[2]))
	assert.Equal(t, []string{"b3"}, ids(groups[3]))
	assert.Equal(t, []string{"n2", "n3"}, ids(groups[5]))
}

func TestGroupBlocks_Empty(t *testing.T) {
	assert.Empty(t, GroupBlocks(nil))
}

func TestGroupBlocks_SinglesNeverMerge(t *testing.T) {
	groups := GroupBlocks([]Block{textBlock("p1", Paragraph{}), textBlock("p2", Paragraph{})})

	assert.Len(t, groups, 2)
}
