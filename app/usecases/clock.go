package usecases

import "time"

// Clock abstracts "today" so date rules (past check-in, today-only check-in)
// are testable.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// dateOnly reduces a timestamp to its calendar day, anchored in UTC. Stay
// dates arrive as UTC midnights while the clock reads host-local time, so
// comparing instants would shift days on any non-UTC host.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
