package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestDedupeDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"duplicates and self", []string{"A", "A", "B", "self"}, []string{"A", "B"}},
		{"keeps first occurrence order", []string{"B", "A", "B"}, []string{"B", "A"}},
		{"blank entries dropped", []string{"", "  ", "A"}, []string{"A"}},
		{"empty", nil, []string{}},
		{"only self", []string{"self", "self"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := DedupeDependencies("self", tt.ids)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DedupeDependencies(%v) = %v, want %v", tt.ids, got, tt.want)
			}
		})
	}
}

func TestItem_IsArchived(t *testing.T) {
	t.Parallel()

	item := &Item{}
	if item.IsArchived() {
		t.Error("item without archived_at should not be archived")
	}

	now := time.Now()
	item.ArchivedAt = &now
	if !item.IsArchived() {
		t.Error("item with archived_at should be archived")
	}
}

func TestNullablePatch_Apply(t *testing.T) {
	t.Parallel()

	stored := "m-1"
	next := "m-2"

	if got := (NullablePatch{}).Apply(&stored); got == nil || *got != "m-1" {
		t.Errorf("unset patch should keep stored value, got %v", got)
	}
	if got := (NullablePatch{Set: true}).Apply(&stored); got != nil {
		t.Errorf("null patch should clear value, got %v", *got)
	}
	if got := (NullablePatch{Set: true, Value: &next}).Apply(&stored); got == nil || *got != "m-2" {
		t.Errorf("set patch should replace value, got %v", got)
	}
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2024, 3, 5, 15, 4, 5, 123456789, loc)

	if got := FormatTimestamp(ts); got != "2024-03-05T12:04:05.123Z" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}
