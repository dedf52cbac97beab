package census

// Totals holds the four monotonically increasing counters of a census run.
// Counts are exact integers; percentages are derived only at render time.
// Each worker owns its own Totals and the partials are merged at the end.
type Totals struct {
	RawPlayable      uint64 `json:"raw_playable"`
	RawDead          uint64 `json:"raw_dead"`
	WeightedPlayable uint64 `json:"weighted_playable"`
	WeightedDead     uint64 `json:"weighted_dead"`
}

// Merge adds the other totals field-wise. Merging is commutative and
// associative, so worker partials may combine in any order.
func (t *Totals) Merge(o Totals) {
	t.RawPlayable += o.RawPlayable
	t.RawDead += o.RawDead
	t.WeightedPlayable += o.WeightedPlayable
	t.WeightedDead += o.WeightedDead
}

// RawTotal returns the total number of distinct hands counted.
func (t Totals) RawTotal() uint64 {
	return t.RawPlayable + t.RawDead
}

// WeightedTotal returns the total number of physical draws counted.
func (t Totals) WeightedTotal() uint64 {
	return t.WeightedPlayable + t.WeightedDead
}
