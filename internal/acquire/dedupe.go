package acquire

import "github.com/loftlist/seedkit/internal/domain"

// Dedupe collapses records sharing a (source, id) key, keeping the
// last-seen record in the first-seen position. Raw ids are not unique
// across providers, so the key is always source-qualified.
//
// Dedupe is idempotent: Dedupe(Dedupe(x)) == Dedupe(x).
func Dedupe(records []domain.ImageRecord) []domain.ImageRecord {
	out := make([]domain.ImageRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		key := rec.Key()
		if i, seen := index[key]; seen {
			out[i] = rec // last write wins
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}
	return out
}
