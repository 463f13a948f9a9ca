package cross_package

import (
	"database/sql"
	"math/rand/v2"
	"time"
)

// Event is something that happened at a point in time.
type Event struct {
	Started *time.Time
	Stopped *struct {
		At       time.Time
		Duration time.Duration
	}
	Stored *struct {
		ConnectionString sql.NullString
		Timeout          sql.NullInt64
	}
	Sampled *struct {
		Seed   *rand.PCG
		Chosen []int
	}
}
