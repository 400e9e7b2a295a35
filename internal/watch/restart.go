package watch

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/andyrewlee/termgrid/internal/logging"
	"github.com/andyrewlee/termgrid/internal/safego"
)

// RestartPolicy bounds how a failing worker is retried.
type RestartPolicy struct {
	Backoff     time.Duration
	MaxBackoff  time.Duration
	MaxRestarts int // 0 = unlimited
}

// DefaultRestartPolicy retries with backoff from 200ms up to 3s.
func DefaultRestartPolicy() RestartPolicy {
	return RestartPolicy{Backoff: 200 * time.Millisecond, MaxBackoff: 3 * time.Second}
}

// ErrTooManyRestarts is returned when a worker keeps failing.
var ErrTooManyRestarts = errors.New("too many restarts")

// Supervise runs fn until it returns nil or ctx is done, restarting it with
// exponential backoff after errors and panics. It blocks.
func Supervise(ctx context.Context, name string, policy RestartPolicy, fn func(context.Context) error) error {
	if policy.MaxBackoff < policy.Backoff {
		policy.MaxBackoff = policy.Backoff
	}
	backoff := policy.Backoff
	restarts := 0
	for {
		err := safego.RunErr(name, func() error { return fn(ctx) })
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}
		logging.Warn("%s failed: %v", name, err)

		restarts++
		if policy.MaxRestarts > 0 && restarts > policy.MaxRestarts {
			logging.Error("%s exceeded max restarts (%d)", name, policy.MaxRestarts)
			return errors.Join(ErrTooManyRestarts, err)
		}
		if backoff > 0 {
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			backoff *= 2
			if backoff > policy.MaxBackoff {
				backoff = policy.MaxBackoff
			}
		}
	}
}

// Follow tails path into dst under Supervise, rebuilding the follower after
// each failure. A rebuilt follower resumes at the previous offset. onUpdate
// may be nil.
func Follow(ctx context.Context, path string, dst io.Writer, policy RestartPolicy, onUpdate func(int)) error {
	var offset int64
	return Supervise(ctx, "watch.follow", policy, func(ctx context.Context) error {
		f, err := NewFollower(path, dst)
		if err != nil {
			return err
		}
		defer f.Close()
		f.OnUpdate = onUpdate
		f.offset = offset
		err = f.Run(ctx)
		offset = f.Offset()
		return err
	})
}
