package profile

import "testing"

func TestAddTag_New(t *testing.T) {
	set := AddTag([]string{"Go"}, "SQL")
	if len(set) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(set))
	}
	if set[1] != "SQL" {
		t.Fatalf("expected SQL appended, got %q", set[1])
	}
}

func TestAddTag_AlreadyPresent(t *testing.T) {
	set := AddTag([]string{"Go", "SQL"}, "Go")
	if len(set) != 2 {
		t.Fatalf("expected size unchanged, got %d", len(set))
	}
}

func TestAddTag_Blank(t *testing.T) {
	set := AddTag([]string{"Go"}, "   ")
	if len(set) != 1 {
		t.Fatalf("expected blank value ignored, got %v", set)
	}
}

func TestRemoveTag_Present(t *testing.T) {
	set := RemoveTag([]string{"Go", "SQL", "Git"}, "SQL")
	if len(set) != 2 {
		t.Fatalf("expected size to shrink by 1, got %d", len(set))
	}
	for _, v := range set {
		if v == "SQL" {
			t.Fatalf("SQL still present after remove")
		}
	}
}

func TestRemoveTag_Absent(t *testing.T) {
	set := RemoveTag([]string{"Go", "SQL"}, "Rust")
	if len(set) != 2 {
		t.Fatalf("expected size unchanged, got %d", len(set))
	}
}

func TestDedupeTags(t *testing.T) {
	set := DedupeTags([]string{"Go", " Go", "", "SQL", "Go"})
	if len(set) != 2 {
		t.Fatalf("expected 2 tags, got %v", set)
	}
	if set[0] != "Go" || set[1] != "SQL" {
		t.Fatalf("expected first-seen order preserved, got %v", set)
	}
}
