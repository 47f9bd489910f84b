package node

import (
	"reflect"
	"testing"
)

func TestPatchApply(t *testing.T) {
	base := Style{FontSizePx: 14, Color: "#202124", MaxLines: 2}

	tests := []struct {
		name  string
		patch *Patch
		want  Style
	}{
		{
			name:  "nil patch leaves base unchanged",
			patch: nil,
			want:  base,
		},
		{
			name:  "empty patch leaves base unchanged",
			patch: &Patch{},
			want:  base,
		},
		{
			name:  "font size override",
			patch: &Patch{FontSizePx: Int(18)},
			want:  Style{FontSizePx: 18, Color: "#202124", MaxLines: 2},
		},
		{
			name:  "multiple overrides",
			patch: &Patch{Bold: Bool(true), MaxLines: Int(1), Align: Alignment(AlignCenter)},
			want:  Style{FontSizePx: 14, Color: "#202124", MaxLines: 1, Bold: true, Align: AlignCenter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.patch.Apply(base); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatchApplyDoesNotMutateBase(t *testing.T) {
	base := Style{FontSizePx: 14}
	patch := &Patch{FontSizePx: Int(10)}

	_ = patch.Apply(base)
	if base.FontSizePx != 14 {
		t.Errorf("base mutated: FontSizePx = %d, want 14", base.FontSizePx)
	}
}

func TestWalkOrder(t *testing.T) {
	tree := Box("root", Style{},
		Text("a", "A", Style{}),
		Box("b", Style{},
			Text("c", "C", Style{}),
		),
	)

	var visited []string
	Walk(tree, func(n *Node) bool {
		visited = append(visited, n.Slot)
		return true
	})

	want := []string{"root", "a", "b", "c"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("Walk order = %v, want %v", visited, want)
	}
}

func TestWalkEarlyStop(t *testing.T) {
	tree := Box("root", Style{},
		Text("a", "A", Style{}),
		Text("b", "B", Style{}),
	)

	count := 0
	Walk(tree, func(n *Node) bool {
		count++
		return n.Slot != "a"
	})

	if count != 2 {
		t.Errorf("visited %d nodes before stop, want 2", count)
	}
}

func TestCount(t *testing.T) {
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}

	tree := Box("root", Style{},
		Text("a", "A", Style{}),
		Box("b", Style{}, Text("c", "C", Style{})),
	)
	if got := Count(tree); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestFind(t *testing.T) {
	tree := Box("root", Style{},
		Box("media", Style{}, Image("logo", "https://cdn.example.com/logo.png", Style{})),
		Text("title", "Great Deal", Style{}),
	)

	if got := Find(tree, "logo"); got == nil || got.Src != "https://cdn.example.com/logo.png" {
		t.Errorf("Find(logo) = %+v, want logo image node", got)
	}

	if got := Find(tree, "missing"); got != nil {
		t.Errorf("Find(missing) = %+v, want nil", got)
	}
}

func TestAppendSkipsNil(t *testing.T) {
	b := Box("root", Style{})
	b.Append(nil, Text("a", "A", Style{}), nil)

	if len(b.Children) != 1 {
		t.Errorf("len(Children) = %d, want 1", len(b.Children))
	}
}
