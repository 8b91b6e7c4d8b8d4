package fridge

import (
	"context"
	"log"
	"time"
)

// Monitor runs a periodic read-only health loop: it refreshes the
// freshness gauges and logs one status line per tick. It shares no
// mutable state with the operation path beyond RLock queries. Cancel the
// context to stop it.
func (e *Engine) Monitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultMonitorInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			rec := e.Recommend()
			n := e.itemCount()
			itemsGauge.Set(float64(n))
			expiredGauge.Set(float64(len(rec.Expired)))
			log.Printf("fridge event=monitor items=%d expired=%d expiring_soon=%d",
				n, len(rec.Expired), len(rec.ExpiringSoon))
		}
	}
}
