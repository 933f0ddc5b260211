package vitals

import (
	"sort"
	"sync"

	"github.com/RichardoC/senior-care/internal/models"
)

// Readings is an append-only list of blood-pressure readings owned by one session.
// Storage keeps submission order; date ordering is applied on read.
type Readings struct {
	mu    sync.Mutex
	items []models.Reading
}

func (r *Readings) Add(reading models.Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, reading)
}

// Clear drops every reading.
func (r *Readings) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

func (r *Readings) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sorted returns a copy ordered by date. Readings sharing a date keep their
// submission order.
func (r *Readings) Sorted() []models.Reading {
	r.mu.Lock()
	out := make([]models.Reading, len(r.items))
	copy(out, r.items)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// Latest returns the most recent reading by date, or false when empty.
func (r *Readings) Latest() (models.Reading, bool) {
	sorted := r.Sorted()
	if len(sorted) == 0 {
		return models.Reading{}, false
	}
	return sorted[len(sorted)-1], true
}

// Series is the date-ordered data behind the dashboard line chart.
type Series struct {
	Dates     []string `json:"dates"`
	Systolic  []int    `json:"systolic"`
	Diastolic []int    `json:"diastolic"`
}

func (r *Readings) Chart() Series {
	sorted := r.Sorted()
	s := Series{
		Dates:     make([]string, 0, len(sorted)),
		Systolic:  make([]int, 0, len(sorted)),
		Diastolic: make([]int, 0, len(sorted)),
	}
	for _, reading := range sorted {
		s.Dates = append(s.Dates, reading.Day())
		s.Systolic = append(s.Systolic, reading.Systolic)
		s.Diastolic = append(s.Diastolic, reading.Diastolic)
	}
	return s
}
