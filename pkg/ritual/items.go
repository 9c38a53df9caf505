package ritual

import (
	"strings"

	"tableflip.dev/ackgate/pkg/store"
)

// Item is one fixed daily checklist entry.
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// DefaultItems is the built-in ritual.
func DefaultItems() []Item {
	return []Item{
		{ID: "brush-teeth", Label: "Brush teeth (morning & night)"},
		{ID: "wash-face", Label: "Wash face (morning & night)"},
		{ID: "leetcode", Label: "LeetCode: 1 problem minimum"},
		{ID: "cold-message", Label: "Send 1 cold message/email"},
		{ID: "gym", Label: "Gym/30min physical activity"},
		{ID: "journal", Label: "Journal: 5-10 minutes"},
		{ID: "read", Label: "Read: 15-30 minutes"},
		{ID: "no-doomscroll", Label: "No doomscrolling (sit in silence 5-10 min)"},
	}
}

// FromConfig converts configured items, dropping blank and duplicate ids.
// An empty result falls back to DefaultItems.
func FromConfig(cfg []store.ItemConfig) []Item {
	seen := make(map[string]bool, len(cfg))
	items := make([]Item, 0, len(cfg))
	for _, c := range cfg {
		id := strings.TrimSpace(c.ID)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		label := strings.TrimSpace(c.Label)
		if label == "" {
			label = id
		}
		items = append(items, Item{ID: id, Label: label})
	}
	if len(items) == 0 {
		return DefaultItems()
	}
	return items
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
