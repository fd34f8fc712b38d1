package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time { return time.Now().UTC() }

func New() Clock {
	return system{}
}

// Fake 每次调用 Now 前进固定步长，测试里用来制造确定的先后顺序
type Fake struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func NewFake(start time.Time, step time.Duration) *Fake {
	return &Fake{now: start.UTC(), step: step}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.now
	f.now = f.now.Add(f.step)
	return t
}

func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}
