// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package disksample

import (
	"time"

	"github.com/golang/geo/r2"
)

// MeasureAndPlace clears buf, refills it in place with count points and returns how long
// the sampling took. The capacity of buf is reused, so a buffer preallocated to count
// never grows. The clock starts after the clear, so only the sampling is timed.
func MeasureAndPlace(strategy Strategy, buf *[]r2.Point, count int, center r2.Point, radius float64, rng Source) time.Duration {
	*buf = (*buf)[:0]

	start := time.Now()
	if count > 0 {
		*buf = AppendPoints(*buf, strategy, count, center, radius, rng)
	}
	return time.Since(start)
}
