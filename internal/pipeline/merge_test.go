package pipeline

import (
	"errors"
	"fmt"
	"testing"
)

func src(id string, similarity float32) Source {
	return Source{ID: id, Title: "t-" + id, Content: "c-" + id, Similarity: similarity}
}

func TestMergeOutcomes_DedupeAndSort(t *testing.T) {
	outcomes := []RetrievalOutcome{
		{Query: "q1", Sources: []Source{src("a", 0.9), src("b", 0.7)}},
		{Query: "q2", Sources: []Source{src("b", 0.95), src("c", 0.8)}},
	}

	merged, allFailed := MergeOutcomes(outcomes)
	if allFailed {
		t.Fatal("MergeOutcomes() allFailed = true, want false")
	}

	// "b" keeps its first-seen copy (similarity 0.7 from q1), so the order
	// is a, c, b.
	wantIDs := []string{"a", "c", "b"}
	if len(merged) != len(wantIDs) {
		t.Fatalf("MergeOutcomes() returned %d sources, want %d", len(merged), len(wantIDs))
	}
	for i, want := range wantIDs {
		if merged[i].ID != want {
			t.Errorf("merged[%d].ID = %q, want %q", i, merged[i].ID, want)
		}
	}
	if merged[2].Similarity != 0.7 {
		t.Errorf("duplicate kept similarity %v, want first-seen 0.7", merged[2].Similarity)
	}
}

func TestMergeOutcomes_StableForEqualScores(t *testing.T) {
	outcomes := []RetrievalOutcome{
		{Query: "q1", Sources: []Source{src("a", 0.8), src("b", 0.8), src("c", 0.8)}},
	}

	merged, _ := MergeOutcomes(outcomes)
	for i, want := range []string{"a", "b", "c"} {
		if merged[i].ID != want {
			t.Errorf("merged[%d].ID = %q, want %q (insertion order preserved on ties)", i, merged[i].ID, want)
		}
	}
}

func TestMergeOutcomes_CapsAtTwenty(t *testing.T) {
	sources := make([]Source, 0, 30)
	for i := 0; i < 30; i++ {
		sources = append(sources, src(fmt.Sprintf("s%02d", i), float32(30-i)/30))
	}
	merged, _ := MergeOutcomes([]RetrievalOutcome{{Query: "q", Sources: sources}})

	if len(merged) != 20 {
		t.Fatalf("MergeOutcomes() returned %d sources, want 20", len(merged))
	}
	if merged[0].ID != "s00" {
		t.Errorf("merged[0].ID = %q, want highest-similarity source", merged[0].ID)
	}
}

func TestMergeOutcomes_PartialFailure(t *testing.T) {
	outcomes := []RetrievalOutcome{
		{Query: "q1", Err: errors.New("timeout")},
		{Query: "q2", Sources: []Source{src("a", 0.9)}},
	}

	merged, allFailed := MergeOutcomes(outcomes)
	if allFailed {
		t.Fatal("MergeOutcomes() allFailed = true with one healthy branch")
	}
	if len(merged) != 1 || merged[0].ID != "a" {
		t.Errorf("MergeOutcomes() = %v, want the healthy branch's source", merged)
	}
}

func TestMergeOutcomes_AllFailed(t *testing.T) {
	outcomes := []RetrievalOutcome{
		{Query: "q1", Err: errors.New("timeout")},
		{Query: "q2", Err: errors.New("unavailable")},
	}

	merged, allFailed := MergeOutcomes(outcomes)
	if !allFailed {
		t.Fatal("MergeOutcomes() allFailed = false, want true")
	}
	if merged != nil {
		t.Errorf("MergeOutcomes() = %v, want nil", merged)
	}
}

func TestMergeOutcomes_Empty(t *testing.T) {
	merged, allFailed := MergeOutcomes(nil)
	if allFailed {
		t.Error("MergeOutcomes(nil) allFailed = true, want false")
	}
	if len(merged) != 0 {
		t.Errorf("MergeOutcomes(nil) = %v, want empty", merged)
	}
}
