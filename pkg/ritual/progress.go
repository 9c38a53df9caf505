package ritual

// Level classifies progress for display.
type Level int

const (
	LevelNone Level = iota
	LevelPartial
	LevelComplete
)

func (l Level) String() string {
	switch l {
	case LevelPartial:
		return "partial"
	case LevelComplete:
		return "complete"
	default:
		return "none"
	}
}

// Progress counts checked items of the fixed enumeration.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Level returns none for zero, complete when every item is done, partial otherwise.
func (p Progress) Level() Level {
	switch {
	case p.Completed <= 0:
		return LevelNone
	case p.Completed >= p.Total:
		return LevelComplete
	default:
		return LevelPartial
	}
}

// Ratio is Completed/Total, 0 for an empty enumeration.
func (p Progress) Ratio() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// progressOf counts truthy values for ids in items, ignoring orphaned keys.
func progressOf(items []Item, checked map[string]bool) Progress {
	p := Progress{Total: len(items)}
	for _, it := range items {
		if checked[it.ID] {
			p.Completed++
		}
	}
	return p
}
