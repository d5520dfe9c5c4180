package parsing

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskGroupCollectsFailuresByName(t *testing.T) {
	group := NewTaskGroup(context.Background())

	group.Go("ok", func(ctx context.Context) error { return nil })
	group.Go("bad", func(ctx context.Context) error { return errors.New("boom") })

	failures := group.Wait()

	assert.Len(t, failures, 1)
	assert.EqualError(t, failures["bad"], "boom")
}

func TestTaskGroupFailureDoesNotStopSiblings(t *testing.T) {
	var ran atomic.Int32
	group := NewTaskGroup(context.Background())

	group.Go("failing", func(ctx context.Context) error { return errors.New("boom") })
	for i := 0; i < 4; i++ {
		group.Go("worker", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}

	group.Wait()

	assert.Equal(t, int32(4), ran.Load())
}

func TestTaskGroupEmptyWait(t *testing.T) {
	group := NewTaskGroup(context.Background())

	assert.Empty(t, group.Wait())
}
