package dnssec

import "time"

// nowUnix reads the wall clock. Isolated in its own function so Clock.Now's
// override path is the only thing under test for date-window behaviour.
func nowUnix() int64 {
	return time.Now().Unix()
}
