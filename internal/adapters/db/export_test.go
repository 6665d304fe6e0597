package db

import "time"

var (
	ListRecentQuery = listRecentQuery
	QueryExecMode   = queryExecMode
)

func (r *JournalRepository) SetClock(now func() time.Time) {
	r.now = now
}
