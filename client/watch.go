package client

import (
	"context"
	"log"
)

// Watch runs one sync pass immediately, then another on every transition
// from offline to online reported by signals. It returns when ctx is
// cancelled or signals is closed. The initial state is assumed online, so
// a stream that only ever reports online triggers no extra passes.
func (s *Session) Watch(ctx context.Context, signals <-chan bool) {
	s.syncAndLog(ctx)

	online := true
	for {
		select {
		case <-ctx.Done():
			return
		case v, ok := <-signals:
			if !ok {
				return
			}
			if v && !online {
				s.syncAndLog(ctx)
			}
			online = v
		}
	}
}

func (s *Session) syncAndLog(ctx context.Context) {
	result, err := s.SyncPending(ctx)
	if err != nil {
		log.Printf("sync pass: %v", err)
		return
	}
	if len(result.Synced) > 0 || len(result.Remaining) > 0 {
		log.Printf("sync pass: %d synced, %d remaining", len(result.Synced), len(result.Remaining))
	}
}
