package variant

import "testing"

func TestLookup(t *testing.T) {
	d, ok := Lookup("mobile.landscape.title-desc-biz-textcta")
	if !ok {
		t.Fatal("expected variant to exist")
	}
	if d.Key != "mobile.landscape.title-desc-biz-textcta" {
		t.Errorf("Key = %q", d.Key)
	}
	if d.Archetype() != ArchetypeGridBody {
		t.Errorf("Archetype() = %q, want grid-body", d.Archetype())
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("no.such.variant"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestRegistrySize(t *testing.T) {
	if n := Count(); n < 40 {
		t.Errorf("registry has %d variants, want at least 40", n)
	}
}

func TestDescriptorsWellFormed(t *testing.T) {
	for _, key := range Keys() {
		d, _ := Lookup(key)
		t.Run(key, func(t *testing.T) {
			if d.Key != key {
				t.Errorf("Key mismatch: %q registered under %q", d.Key, key)
			}
			if d.Family == "" {
				t.Error("missing family")
			}
			// Body and panel are mutually exclusive primary-layout drivers.
			if d.Body != nil && d.Panel != nil {
				t.Error("descriptor has both body and panel")
			}
			if d.Body == nil && d.Panel == nil {
				t.Error("descriptor has neither body nor panel")
			}
			if d.Panel != nil && len(d.Panel.Slots) == 0 {
				t.Error("panel with no slots")
			}
			if d.Body != nil {
				if len(d.Body.Columns) == 0 || len(d.Body.Rows) == 0 {
					t.Error("body with empty grid")
				}
				for i, row := range d.Body.Rows {
					if len(row) != len(d.Body.Columns) {
						t.Errorf("row %d has %d cells, want %d", i, len(row), len(d.Body.Columns))
					}
				}
			}
		})
	}
}

func TestAccepts(t *testing.T) {
	d, _ := Lookup("video.feed.card")
	if d.Accepts(map[Format]bool{FormatDisplay: true}) {
		t.Error("video variant should not accept a display-only record")
	}
	if !d.Accepts(map[Format]bool{FormatVideo: true}) {
		t.Error("video variant should accept a video record")
	}

	agnostic, _ := Lookup("promo.inbox.row")
	if !agnostic.Accepts(map[Format]bool{}) {
		t.Error("format-agnostic variant should accept an empty record")
	}
}

func TestByFamily(t *testing.T) {
	rows := ByFamily(FamilyPromoInbox)
	if len(rows) != 3 {
		t.Fatalf("promo-inbox family has %d variants, want 3", len(rows))
	}
	for _, d := range rows {
		if d.Archetype() != ArchetypePromoListRow {
			t.Errorf("%s: archetype = %q, want promotional-list-row", d.Key, d.Archetype())
		}
	}
}

func TestLockHintsOrderIsStable(t *testing.T) {
	d, _ := Lookup("sheet.light.logo-title-desc-cta")
	want := []string{"Add a headline", "Add a square logo", "Add a landscape image"}
	if len(d.LockHints) != len(want) {
		t.Fatalf("lock hints = %v", d.LockHints)
	}
	for i := range want {
		if d.LockHints[i] != want[i] {
			t.Errorf("hint %d = %q, want %q", i, d.LockHints[i], want[i])
		}
	}
}
