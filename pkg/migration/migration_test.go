package migration

import (
	"slices"
	"testing"
)

func TestRecordIDFormatting(t *testing.T) {
	id := ID("blog", "0002_post_slug")

	if got := id.String(); got != "blog:0002_post_slug" {
		t.Errorf("String() = %q, want %q", got, "blog:0002_post_slug")
	}
	if got := id.Literal(); got != `("blog", "0002_post_slug")` {
		t.Errorf("Literal() = %q", got)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b RecordID
		want int
	}{
		{ID("a", "0001"), ID("a", "0001"), 0},
		{ID("a", "0001"), ID("a", "0002"), -1},
		{ID("b", "0001"), ID("a", "0009"), 1},
		{ID("a", "0009"), ID("b", "0001"), -1},
	}
	for _, tt := range tests {
		if got := Compare(tt.a, tt.b); got != tt.want {
			t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSort(t *testing.T) {
	ids := []RecordID{ID("b", "0001"), ID("a", "0002"), ID("a", "0001")}
	Sort(ids)
	want := []RecordID{ID("a", "0001"), ID("a", "0002"), ID("b", "0001")}
	if !slices.Equal(ids, want) {
		t.Errorf("Sort() = %v, want %v", ids, want)
	}
}

func TestRecordIsSquash(t *testing.T) {
	if (Record{ID: ID("a", "0001")}).IsSquash() {
		t.Error("record without replaces should not be a squash")
	}
	r := Record{ID: ID("a", "0003_squashed"), Replaces: []RecordID{ID("a", "0001")}}
	if !r.IsSquash() {
		t.Error("record with replaces should be a squash")
	}
}

func TestGroups(t *testing.T) {
	g := NewGroups("shop", "blog")

	if !g.Has("blog") || !g.Has("shop") {
		t.Error("Has() missing configured label")
	}
	if g.Has("auth") {
		t.Error("Has() reported unconfigured label")
	}
	if !g.Contains(ID("shop", "0001")) {
		t.Error("Contains() should match on app label")
	}
	if got := g.Names(); !slices.Equal(got, []string{"blog", "shop"}) {
		t.Errorf("Names() = %v", got)
	}
	if len(NewGroups().Names()) != 0 {
		t.Error("empty groups should have no names")
	}
}
