package domain

import "time"

// DefaultScheduleType is stored when an item is created without a schedule.
const DefaultScheduleType = "none"

// Item is a todo or habit tracked by the user.
type Item struct {
	ID            string
	Title         string
	Kind          ItemKind
	Measure       ItemMeasure
	MilestoneID   *string
	Priority      int
	ScheduleType  string
	ScheduleValue float64
	SortOrder     int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ArchivedAt    *time.Time
}

// IsArchived returns true if the item has been archived.
func (i *Item) IsArchived() bool {
	return i.ArchivedAt != nil
}

// ItemRef is the target side of a dependency edge, resolved to its title.
type ItemRef struct {
	ID    string
	Title string
}

// Dependency is a directed "item depends on other item" edge.
type Dependency struct {
	ItemID      string
	DependsOnID string
	CreatedAt   time.Time
}

// DedupeDependencies keeps the first occurrence of every id, dropping blank
// ids and references to itemID itself.
func DedupeDependencies(itemID string, ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if isBlank(id) || id == itemID {
			continue
		}
		out = append(out, id)
	}
	return out
}
