package models

import (
	"reflect"
	"testing"
)

func sampleList() ComponentList {
	return ComponentList{
		NewComponent("header", JSONMap{"title": "Jane"}),
		NewComponent("text", JSONMap{"content": "Hello"}),
		NewComponent("skills", JSONMap{"skills": []interface{}{"Go"}}),
	}
}

func ids(cl ComponentList) []string {
	out := make([]string, len(cl))
	for i := range cl {
		out[i] = cl[i].ID
	}
	return out
}

func TestInsertGrowsListWithFreshID(t *testing.T) {
	list := sampleList()
	comp := NewComponent("button", nil)

	grown := list.Insert(comp, 1)
	if len(grown) != len(list)+1 {
		t.Fatalf("expected %d components, got %d", len(list)+1, len(grown))
	}
	if grown[1].ID != comp.ID {
		t.Fatalf("expected insert at index 1, got %q there", grown[1].Type)
	}
	for _, existing := range list {
		if existing.ID == comp.ID {
			t.Fatal("new component reused an existing id")
		}
	}
	if len(list) != 3 {
		t.Fatal("Insert mutated the receiver")
	}
}

func TestInsertOutOfRangeAppends(t *testing.T) {
	list := sampleList()

	for _, at := range []int{-1, 99} {
		grown := list.Insert(NewComponent("divider", nil), at)
		if grown[len(grown)-1].Type != "divider" {
			t.Fatalf("index %d: expected append, got order %v", at, ids(grown))
		}
	}
}

func TestReorderIsAStableMove(t *testing.T) {
	list := sampleList()
	before := ids(list)

	moved := list.Reorder(0, 2)
	if got, want := ids(moved), []string{before[1], before[2], before[0]}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Same id multiset, only positions change.
	seen := map[string]bool{}
	for _, id := range ids(moved) {
		seen[id] = true
	}
	for _, id := range before {
		if !seen[id] {
			t.Fatalf("id %q lost in reorder", id)
		}
	}
	if !reflect.DeepEqual(ids(list), before) {
		t.Fatal("Reorder mutated the receiver")
	}
}

func TestReorderOutOfRangeIsUnchanged(t *testing.T) {
	list := sampleList()
	for _, c := range [][2]int{{-1, 0}, {0, 3}, {5, 1}} {
		if got := list.Reorder(c[0], c[1]); !reflect.DeepEqual(ids(got), ids(list)) {
			t.Fatalf("Reorder(%d, %d) changed the list", c[0], c[1])
		}
	}
}

func TestDuplicateClonesEverythingExceptID(t *testing.T) {
	list := sampleList()

	result := list.Duplicate(0)
	if len(result) != 4 {
		t.Fatalf("expected 4 components, got %d", len(result))
	}
	original, clone := result[0], result[1]
	if clone.ID == original.ID {
		t.Fatal("duplicate kept the original id")
	}
	if clone.Type != original.Type || !reflect.DeepEqual(clone.Data, original.Data) {
		t.Fatalf("duplicate differs beyond id: %+v vs %+v", clone, original)
	}

	// The clone must not share payload state with the original.
	clone.Data["title"] = "changed"
	if original.Data["title"] == "changed" {
		t.Fatal("duplicate shares Data with the original")
	}
}

func TestRemoveLeavesOtherIDsUntouched(t *testing.T) {
	list := sampleList()
	before := ids(list)

	result := list.Remove(1)
	if got, want := ids(result), []string{before[0], before[2]}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUpdateShallowMergesAndPreservesID(t *testing.T) {
	list := sampleList()
	target := list[1]

	result := list.Update(target.ID, JSONMap{"content": "hello"})
	updated := result[1]
	if updated.ID != target.ID {
		t.Fatal("Update changed the component id")
	}
	if updated.Data["content"] != "hello" {
		t.Fatalf("patch not applied: %v", updated.Data)
	}
	if list[1].Data["content"] != "Hello" {
		t.Fatal("Update mutated the receiver")
	}
}

func TestUpdateMissingIDIsNoop(t *testing.T) {
	list := sampleList()

	result := list.Update("nope", JSONMap{"content": "lost"})
	if !reflect.DeepEqual(result, list) {
		t.Fatal("update against a missing id must change nothing")
	}
}

func TestPaletteNormalizedFillsOnlyEmptyTokens(t *testing.T) {
	p := DesignPalette{PrimaryColor: "#000000"}

	got := p.Normalized()
	if got.PrimaryColor != "#000000" {
		t.Fatalf("explicit token overwritten: %q", got.PrimaryColor)
	}
	if got.FontFamily != DefaultPalette().FontFamily {
		t.Fatalf("empty token not defaulted: %q", got.FontFamily)
	}
}
