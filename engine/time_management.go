package engine

import (
	"time"
)

// TimeHandler tracks the wall-clock budget for one Move call. The search
// polls it - there is no cancellation token - so the abort granularity is
// "next poll", and the decision is purely deadline-driven.
type TimeHandler struct {
	deadline time.Time
}

func (th *TimeHandler) Start(timeLimitMs int) {
	th.deadline = time.Now().Add(time.Duration(timeLimitMs) * time.Millisecond)
}

// Expired reports whether the budget is used up.
func (th *TimeHandler) Expired() bool {
	return !time.Now().Before(th.deadline)
}
