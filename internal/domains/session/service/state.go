package service

import (
	"context"
	"sync"
	"time"

	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model/dto"
)

// state is one customer's in-flight booking. All fields are guarded by mu;
// generation tokens keep stale availability fetches from overwriting a later
// date choice.
type state struct {
	mu sync.Mutex

	id       string
	step     model.Step
	date     string
	timeSlot string

	lines     []model.Line
	loading   bool
	loadError string

	snapshot     []model.SnapshotLine
	snapshotDate string
	snapshotTime string

	generation  uint64
	cancelFetch context.CancelFunc

	confirming bool

	lastAccess time.Time
}

func newState(id string) *state {
	return &state{
		id:         id,
		step:       model.StepSelection,
		lastAccess: time.Now(),
	}
}

func (st *state) touch() {
	st.lastAccess = time.Now()
}

func (st *state) touchedBefore(cutoff time.Time) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	return st.lastAccess.Before(cutoff)
}

// discard cancels any in-flight availability fetch. Its result is dropped by
// the generation check even if the fetch cannot be interrupted.
func (st *state) discard() {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.generation++

	if st.cancelFetch != nil {
		st.cancelFetch()
		st.cancelFetch = nil
	}
}

func (st *state) view(slots []string) dto.SessionResponse {
	res := dto.SessionResponse{
		ID:        st.id,
		Step:      st.step,
		Date:      st.date,
		Time:      st.timeSlot,
		Loading:   st.loading,
		LoadError: st.loadError,
		Slots:     slots,
		Lines:     dto.NewSessionLines(st.lines),
	}

	if st.step != model.StepSelection {
		res.Snapshot = dto.NewSnapshotLines(st.snapshot)

		for _, line := range st.snapshot {
			res.TotalCost += line.LineTotal
		}

		return res
	}

	for _, line := range st.lines {
		res.TotalCost += line.UnitPrice * float64(line.Count)
	}

	return res
}
