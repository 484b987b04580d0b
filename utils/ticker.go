package utils

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	goutils "go.viam.com/utils"

	"go.viam.com/pathfollow/logging"
)

// SlowLogger starts a goroutine that warns every few seconds until the returned function is
// called or ctx is done.
func SlowLogger(ctx context.Context, c clock.Clock, msg, fieldName, fieldVal string, logger logging.Logger) func() {
	slowTicker := c.Ticker(2 * time.Second)
	firstTick := true

	ctxWithCancel, cancel := context.WithCancel(ctx)
	startTime := c.Now()
	goutils.PanicCapturingGo(func() {
		for {
			select {
			case <-slowTicker.C:
				elapsed := c.Since(startTime).Round(time.Second).String()
				logger.Warnw(msg, fieldName, fieldVal, "time_elapsed", elapsed)
				if firstTick {
					slowTicker.Reset(3 * time.Second)
					firstTick = false
				} else {
					slowTicker.Reset(5 * time.Second)
				}
			case <-ctxWithCancel.Done():
				return
			}
		}
	})
	return func() { slowTicker.Stop(); cancel() }
}
