// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. All date-window logic takes "now" from a
// Clock so tests can run against fixed dates.
type Clock interface {
	Now() time.Time
}
