package monitor

// Tally keeps running statistics over a series. Its size does not depend on
// how many values are added.
type Tally struct {
	min   float64
	max   float64
	sum   float64
	last  float64
	count int
}

// TallyStats summarizes the values added to a Tally.
type TallyStats struct {
	Min   float64
	Max   float64
	Avg   float64
	Last  float64
	Count int
}

// Add records one value.
func (t *Tally) Add(value float64) {
	if t.count == 0 || value < t.min {
		t.min = value
	}
	if t.count == 0 || value > t.max {
		t.max = value
	}
	t.sum += value
	t.last = value
	t.count++
}

// Stats returns min/max/avg/last, or false when nothing was added.
func (t *Tally) Stats() (TallyStats, bool) {
	if t.count == 0 {
		return TallyStats{}, false
	}
	return TallyStats{
		Min:   t.min,
		Max:   t.max,
		Avg:   t.sum / float64(t.count),
		Last:  t.last,
		Count: t.count,
	}, true
}
