package pipeline

import "sort"

// mergeLimit caps the merged ranking fed to the reranker.
const mergeLimit = 20

// MergeOutcomes flattens the settled retrieval outcomes into a deduplicated
// ranking sorted descending by similarity, truncated to the top 20. Dedupe is
// first-seen-wins in outcome order (the expanded-query order, not arrival
// order), which keeps the output deterministic across runs. The second return
// is true when every branch failed.
func MergeOutcomes(outcomes []RetrievalOutcome) ([]Source, bool) {
	allFailed := len(outcomes) > 0
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			allFailed = false
			break
		}
	}
	if allFailed {
		return nil, true
	}

	seen := make(map[string]struct{})
	merged := make([]Source, 0)
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		for _, src := range outcome.Sources {
			if _, dup := seen[src.ID]; dup {
				continue
			}
			seen[src.ID] = struct{}{}
			merged = append(merged, src)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Similarity > merged[j].Similarity
	})

	if len(merged) > mergeLimit {
		merged = merged[:mergeLimit]
	}
	return merged, false
}
