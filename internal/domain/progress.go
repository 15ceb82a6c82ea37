package domain

// AcquisitionProgress is the resumable checkpoint written after every
// successful page fetch and deleted when the acquisition run completes.
//
// Resume is category-granular: restarting mid-category re-fetches that
// category's queries from the start, so CompletedCount can overcount
// until final deduplication. That is intentional; the final catalog is
// always deduplicated by (source, id).
type AcquisitionProgress struct {
	CompletedCount        int           `json:"completedCount"`
	LastCompletedCategory Category      `json:"lastCompletedCategory"`
	AccumulatedImages     []ImageRecord `json:"accumulatedImages"`
}

// CategoryDone reports whether c was fully processed in an earlier run,
// given the fixed category order. Categories at or before
// LastCompletedCategory are done.
func (p *AcquisitionProgress) CategoryDone(c Category) bool {
	if p == nil || p.LastCompletedCategory == "" {
		return false
	}
	for _, cat := range Categories() {
		if cat == c {
			return true // c comes at or before the last completed one
		}
		if cat == p.LastCompletedCategory {
			return false
		}
	}
	return false
}
