package model

// History is the ordered sequence of scan records, newest first. Index 0 is
// always the previous cycle's record; use the accessors rather than indexing
// so the ordering contract stays in one place.
type History []ScanRecord

// Latest returns the most recent record, if any.
func (h History) Latest() (ScanRecord, bool) {
	if len(h) == 0 {
		return ScanRecord{}, false
	}
	return h[0], true
}

// Recent returns up to k of the newest records, newest first.
func (h History) Recent(k int) []ScanRecord {
	if k < 0 {
		k = 0
	}
	if k > len(h) {
		k = len(h)
	}
	return h[:k]
}
