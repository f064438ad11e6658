package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-quest/internal/pkg/clock"
)

func TestFake_AdvanceFiresDueTimersInOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fake := clock.NewFake(start)

	var fired []string
	fake.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
	fake.AfterFunc(time.Second, func() { fired = append(fired, "first") })
	fake.AfterFunc(5*time.Second, func() { fired = append(fired, "late") })

	fake.Advance(2 * time.Second)

	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 1, fake.Pending())
	assert.Equal(t, start.Add(2*time.Second), fake.Now())
}

func TestFake_ChainedTimersInsideWindow(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))

	count := 0
	var schedule func()
	schedule = func() {
		fake.AfterFunc(time.Second, func() {
			count++
			schedule()
		})
	}
	schedule()

	fake.Advance(3 * time.Second)

	assert.Equal(t, 3, count)
	assert.Equal(t, 1, fake.Pending())
}

func TestFake_Stop(t *testing.T) {
	fake := clock.NewFake(time.Unix(0, 0))

	fired := false
	timer := fake.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	fake.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, fake.Pending())
}

func TestReal_AfterFuncCanBeStopped(t *testing.T) {
	c := clock.New()

	timer := c.AfterFunc(time.Hour, func() {})
	assert.True(t, timer.Stop())
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
