package domain

import (
	"testing"
)

func sampleTree() *DisplayNode {
	return &DisplayNode{
		NoteID:   "root",
		Key:      "aaaaaaaaaaaa",
		Folder:   true,
		Expanded: true,
		Children: []*DisplayNode{
			{
				NoteID:   "a",
				Key:      "bbbbbbbbbbbb",
				Folder:   true,
				Expanded: true,
				Children: []*DisplayNode{{NoteID: "a1", Key: "cccccccccccc"}},
			},
			{NoteID: "b", Key: "dddddddddddd", Folder: true, Lazy: true},
		},
	}
}

func TestDisplayNodeEqualIgnoresKey(t *testing.T) {
	a := sampleTree()
	b := sampleTree()
	b.Key = "zzzzzzzzzzzz"
	b.Children[0].Children[0].Key = "yyyyyyyyyyyy"

	if !a.Equal(b) {
		t.Error("trees differing only in keys should be equal")
	}

	b.Children[1].Title = "changed"
	if a.Equal(b) {
		t.Error("trees with different titles should not be equal")
	}
}

func TestDisplayNodeEqualChildrenPresence(t *testing.T) {
	a := &DisplayNode{NoteID: "n", Folder: true, Expanded: true, Children: []*DisplayNode{}}
	b := &DisplayNode{NoteID: "n", Folder: true, Expanded: true}

	if a.Equal(b) {
		t.Error("absent and empty children lists should differ")
	}
	if !(*DisplayNode)(nil).Equal(nil) {
		t.Error("nil nodes should be equal")
	}
}

func TestDisplayNodeFlatten(t *testing.T) {
	flat := sampleTree().Flatten()

	want := []struct {
		id    string
		depth int
	}{
		{"root", 0},
		{"a", 1},
		{"a1", 2},
		{"b", 1},
	}

	if len(flat) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(flat))
	}
	for i, w := range want {
		if flat[i].Node.NoteID != w.id || flat[i].Depth != w.depth {
			t.Errorf("position %d: expected %s@%d, got %s@%d",
				i, w.id, w.depth, flat[i].Node.NoteID, flat[i].Depth)
		}
	}
}

func TestDisplayNodeCollapseAndSetChildren(t *testing.T) {
	tree := sampleTree()
	a := tree.Children[0]

	a.Collapse()
	if a.Expanded || !a.Lazy || a.Children != nil {
		t.Errorf("collapsed folder should be lazy without children: %+v", a)
	}
	if got := len(tree.Flatten()); got != 3 {
		t.Errorf("expected 3 visible nodes after collapse, got %d", got)
	}

	a.SetChildren([]*DisplayNode{{NoteID: "a1"}, {NoteID: "a2"}})
	if !a.Expanded || a.Lazy || len(a.Children) != 2 {
		t.Errorf("expanded folder should carry children: %+v", a)
	}
}
