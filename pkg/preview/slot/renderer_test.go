package slot

import (
	"reflect"
	"strings"
	"testing"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/variant"
)

func resolved() *creative.Resolved {
	return &creative.Resolved{
		Title:          "Great Deal",
		LongHeadline:   "The greatest deal of the season",
		Description:    "Save big today",
		BusinessName:   "example.com",
		CTAText:        "Shop Now",
		LogoURL:        "https://cdn.example.com/logo.png",
		MediaURL:       "https://cdn.example.com/wide.png",
		SquareMediaURL: "https://cdn.example.com/square.png",
	}
}

func TestRenderTextSlots(t *testing.T) {
	rc := resolved()

	tests := []struct {
		slot     variant.Slot
		wantText string
	}{
		{variant.SlotTitle, "Great Deal"},
		{variant.SlotTitleXL, "Great Deal"},
		{variant.SlotLongHeadline, "The greatest deal of the season"},
		{variant.SlotDesc, "Save big today"},
		{variant.SlotBiz, "example.com"},
		{variant.SlotPromoSubject, "Great Deal"},
		{variant.SlotFeedTitle, "Great Deal"},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			n, ok := Render(tt.slot, rc, Params{})
			if !ok {
				t.Fatal("slot omitted")
			}
			if n.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", n.Text, tt.wantText)
			}
			if n.Style.FontSizePx == 0 {
				t.Error("text slot missing fitted font size")
			}
		})
	}
}

func TestRenderEmptyTextOmits(t *testing.T) {
	rc := &creative.Resolved{}

	for _, s := range []variant.Slot{variant.SlotTitle, variant.SlotDesc, variant.SlotLongHeadline, variant.SlotCTAText} {
		if _, ok := Render(s, rc, Params{}); ok {
			t.Errorf("%s: rendered despite empty content", s)
		}
	}
}

func TestRenderLogoPlaceholder(t *testing.T) {
	rc := &creative.Resolved{}

	n, ok := Render(variant.SlotLogo, rc, Params{})
	if !ok {
		t.Fatal("logo slot should render a placeholder, not be omitted")
	}
	if n.Kind != node.KindPlaceholder || n.Label != "Logo" {
		t.Errorf("got %+v, want labelled placeholder", n)
	}
}

func TestRenderLogoTitleRow(t *testing.T) {
	n, ok := Render(variant.SlotLogoTitle, resolved(), Params{})
	if !ok {
		t.Fatal("logo-title omitted")
	}
	if n.Kind != node.KindBox {
		t.Fatalf("Kind = %v, want box row", n.Kind)
	}
	var hasLogo, hasTitle bool
	node.Walk(n, func(c *node.Node) bool {
		if c.Kind == node.KindImage && c.Src == "https://cdn.example.com/logo.png" {
			hasLogo = true
		}
		if c.Text == "Great Deal" {
			hasTitle = true
		}
		return true
	})
	if !hasLogo || !hasTitle {
		t.Errorf("row missing logo (%v) or title (%v)", hasLogo, hasTitle)
	}
}

func TestRenderThumbPrefersSquare(t *testing.T) {
	n, ok := Render(variant.SlotThumb, resolved(), Params{})
	if !ok {
		t.Fatal("thumb omitted")
	}
	if n.Src != "https://cdn.example.com/square.png" {
		t.Errorf("Src = %q, want square image", n.Src)
	}
}

func TestTypographyScalesLongText(t *testing.T) {
	rc := resolved()
	short, _ := Render(variant.SlotDesc, rc, Params{})

	rc.Description = strings.Repeat("x", 95)
	long, _ := Render(variant.SlotDesc, rc, Params{})

	if long.Style.FontSizePx >= short.Style.FontSizePx {
		t.Errorf("long description size %d not smaller than short %d",
			long.Style.FontSizePx, short.Style.FontSizePx)
	}
}

func TestStylePatchApplied(t *testing.T) {
	d := &variant.Descriptor{
		Styles: map[variant.Slot]*node.Patch{
			variant.SlotDesc: {MaxLines: node.Int(1), Color: node.Str("#ff0000")},
		},
	}

	n, ok := Render(variant.SlotDesc, resolved(), Params{Descriptor: d})
	if !ok {
		t.Fatal("desc omitted")
	}
	if n.Style.MaxLines != 1 {
		t.Errorf("MaxLines = %d, want patched 1", n.Style.MaxLines)
	}
	if n.Style.Color != "#ff0000" {
		t.Errorf("Color = %q, want patched", n.Style.Color)
	}
}

func TestPlayableSlotBranches(t *testing.T) {
	t.Run("player when playback URL exists", func(t *testing.T) {
		rc := resolved()
		rc.VideoPlaybackURL = "https://www.youtube.com/embed/abc123"
		n, ok := Render(variant.SlotFeedThumb, rc, Params{})
		if !ok || n.Kind != node.KindPlayer {
			t.Fatalf("got %+v, want player node", n)
		}
		if n.Src != rc.VideoPlaybackURL {
			t.Errorf("Src = %q", n.Src)
		}
	})

	t.Run("cover with play badge without playback URL", func(t *testing.T) {
		rc := resolved()
		n, ok := Render(variant.SlotFeedThumb, rc, Params{})
		if !ok || n.Kind != node.KindBox {
			t.Fatalf("got %+v, want cover box", n)
		}
		hasBadge := false
		node.Walk(n, func(c *node.Node) bool {
			if c.Kind == node.KindBadge {
				hasBadge = true
			}
			return true
		})
		if !hasBadge {
			t.Error("cover missing play badge")
		}
	})

	t.Run("nothing without playback or cover", func(t *testing.T) {
		rc := &creative.Resolved{}
		if _, ok := Render(variant.SlotFeedThumb, rc, Params{}); ok {
			t.Error("expected omission")
		}
	})

	t.Run("view-only replaces player with cover", func(t *testing.T) {
		rc := resolved()
		rc.VideoPlaybackURL = "https://www.youtube.com/embed/abc123"
		n, ok := Render(variant.SlotFeedThumb, rc, Params{ViewOnly: true})
		if !ok || n.Kind == node.KindPlayer {
			t.Fatalf("got %+v, want static cover in view-only mode", n)
		}
	})
}

func TestRenderAdBiz(t *testing.T) {
	n, ok := Render(variant.SlotAdBiz, resolved(), Params{})
	if !ok {
		t.Fatal("ad-biz omitted")
	}
	if n.Text != "Ad · example.com" {
		t.Errorf("Text = %q", n.Text)
	}
}

func TestRenderUnknownSlot(t *testing.T) {
	if _, ok := Render(variant.Slot("bogus"), resolved(), Params{}); ok {
		t.Error("unknown slot should be omitted")
	}
	if Known(variant.Slot("bogus")) {
		t.Error("Known(bogus) = true")
	}
	if !Known(variant.SlotTitle) {
		t.Error("Known(title) = false")
	}
}

func TestCTABarFallsBackToBusiness(t *testing.T) {
	rc := &creative.Resolved{BusinessName: "example.com"}
	n, ok := Render(variant.SlotCTABar, rc, Params{})
	if !ok {
		t.Fatal("cta-bar omitted")
	}
	if n.Text != "example.com" {
		t.Errorf("Text = %q, want business fallback", n.Text)
	}
}

func TestRenderDeterministic(t *testing.T) {
	rc := resolved()
	a, _ := Render(variant.SlotTitle, rc, Params{})
	b, _ := Render(variant.SlotTitle, rc, Params{})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated renders differ: %+v vs %+v", a, b)
	}
}
