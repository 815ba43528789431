package domain

// GroupKind classifies a run of blocks for rendering.
type GroupKind string

const (
	GroupSingle   GroupKind = "block"
	GroupBulleted GroupKind = "bulleted_list"
	GroupNumbered GroupKind = "numbered_list"
)

// BlockGroup is either one standalone block or a run of list items
// rendered inside a single list element.
type BlockGroup struct {
	Kind   GroupKind `json:"kind"`
	Blocks []Block   `json:"blocks"`
}

// GroupBlocks folds consecutive bulleted items and consecutive numbered
// items into list groups. Group order follows block order.
func GroupBlocks(blocks []Block) []BlockGroup {
	groups := make([]BlockGroup, 0, len(blocks))

	for _, b := range blocks {
		kind := groupKindOf(b)
		if kind != GroupSingle {
			if n := len(groups); n > 0 && groups[n-1].Kind == kind {
				groups[n-1].Blocks = append(groups[n-1].Blocks, b)
				continue
			}
		}
		groups = append(groups, BlockGroup{Kind: kind, Blocks: []Block{b}})
	}

	return groups
}

func groupKindOf(b Block) GroupKind {
	switch b.Type() {
	case BlockBulletedListItem:
		return GroupBulleted
	case BlockNumberedListItem:
		return GroupNumbered
	default:
		return GroupSingle
	}
}
