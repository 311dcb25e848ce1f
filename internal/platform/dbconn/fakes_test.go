package dbconn

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var errDialFailed = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// fakeSession is an in-memory Session whose liveness tests can flip to
// simulate a driver-side close.
type fakeSession struct {
	alive   atomic.Bool
	closes  atomic.Int32
	pings   atomic.Int32
	pingErr error
}

func newFakeSession() *fakeSession {
	s := &fakeSession{}
	s.alive.Store(true)
	return s
}

func (s *fakeSession) Ping(ctx context.Context) error {
	s.pings.Add(1)
	return s.pingErr
}

func (s *fakeSession) Close() error {
	if s.alive.CompareAndSwap(true, false) {
		s.closes.Add(1)
	}
	return nil
}

func (s *fakeSession) Alive() bool {
	return s.alive.Load()
}

func (s *fakeSession) DB() *sql.DB {
	return nil
}

// fakeDriver counts connect calls and fails the first `failures` of them.
type fakeDriver struct {
	mu        sync.Mutex
	calls     int
	failures  int
	dialDelay time.Duration
	sessions  []*fakeSession
	lastOpts  Options
}

func (d *fakeDriver) Connect(ctx context.Context, url string, opts Options) (Session, error) {
	d.mu.Lock()
	d.calls++
	call := d.calls
	d.lastOpts = opts
	d.mu.Unlock()

	if d.dialDelay > 0 {
		time.Sleep(d.dialDelay)
	}
	if call <= d.failures {
		return nil, errDialFailed
	}

	sess := newFakeSession()
	d.mu.Lock()
	d.sessions = append(d.sessions, sess)
	d.mu.Unlock()
	return sess, nil
}

func (d *fakeDriver) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

func (d *fakeDriver) connectOpts() Options {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastOpts
}

// fakeTimer satisfies backoff.Timer. It records every requested delay and
// fires immediately, so retry tests observe the backoff schedule without
// sleeping.
type fakeTimer struct {
	mu     sync.Mutex
	delays []time.Duration
	c      chan time.Time
}

func newFakeTimer() *fakeTimer {
	return &fakeTimer{c: make(chan time.Time, 1)}
}

func (t *fakeTimer) Start(d time.Duration) {
	t.mu.Lock()
	t.delays = append(t.delays, d)
	t.mu.Unlock()
	t.c <- time.Time{}
}

func (t *fakeTimer) Stop() {}

func (t *fakeTimer) C() <-chan time.Time {
	return t.c
}

func (t *fakeTimer) recorded() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]time.Duration(nil), t.delays...)
}
