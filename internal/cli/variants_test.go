package cli

import (
	"testing"
)

func TestCollectVariantsAll(t *testing.T) {
	rows := collectVariants("")
	if len(rows) < 40 {
		t.Fatalf("collectVariants(\"\") returned %d rows, want at least 40", len(rows))
	}

	for _, r := range rows {
		if r.Key == "" {
			t.Error("variant row has empty key")
		}
		if r.Family == "" {
			t.Errorf("variant %s has empty family", r.Key)
		}
		if r.Archetype == "" {
			t.Errorf("variant %s has empty archetype", r.Key)
		}
	}
}

func TestCollectVariantsFamilyFilter(t *testing.T) {
	all := collectVariants("")
	family := all[0].Family

	rows := collectVariants(family)
	if len(rows) == 0 {
		t.Fatalf("collectVariants(%q) returned no rows", family)
	}
	if len(rows) >= len(all) {
		t.Errorf("filter should narrow the catalog: %d >= %d", len(rows), len(all))
	}
	for _, r := range rows {
		if r.Family != family {
			t.Errorf("variant %s has family %q, want %q", r.Key, r.Family, family)
		}
	}
}

func TestCollectVariantsUnknownFamily(t *testing.T) {
	if rows := collectVariants("does-not-exist"); len(rows) != 0 {
		t.Errorf("collectVariants(unknown) = %d rows, want 0", len(rows))
	}
}

func TestVariantListModelNavigation(t *testing.T) {
	rows := collectVariants("")
	m := NewVariantListModel(rows)

	if m.Cursor != 0 {
		t.Errorf("initial cursor = %d, want 0", m.Cursor)
	}
	if m.Height != 15 {
		t.Errorf("initial height = %d, want 15", m.Height)
	}
}
