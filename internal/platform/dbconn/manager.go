package dbconn

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/singleflight"

	"github.com/jstrand/kanban-api/internal/redact"
)

// DefaultMaxIdleTime is how long an unused connection survives before the
// idle closer reclaims it, unless configured otherwise.
const DefaultMaxIdleTime = 30 * time.Minute

// ManagerConfig carries the dependencies and tuning for a Manager.
type ManagerConfig struct {
	// URL is the database connection string. Connect fails immediately
	// with ErrMissingURL when it is empty.
	URL string

	// Driver dials the database. Nil selects the pgx driver.
	Driver Driver

	// Options tunes the connection pool. The zero value selects the
	// profile matching the Serverless flag.
	Options Options

	// Policy bounds the retry loop. The zero value selects DefaultPolicy.
	Policy Policy

	// Serverless disables the idle closer and selects the serverless
	// pool profile by default.
	Serverless bool

	// MaxIdleTime overrides DefaultMaxIdleTime. Ignored in serverless mode.
	MaxIdleTime time.Duration

	// Logger receives connection lifecycle events. Nil uses the process
	// default logger.
	Logger *slog.Logger

	// OnStateChange, if set, is invoked on every state transition. It is
	// registered exactly once, here at construction, so repeated connects
	// can never accumulate listeners.
	OnStateChange func(State)

	// Timer overrides the backoff wait between retries. Tests inject a
	// fake to observe delays without sleeping. Nil uses a real timer.
	Timer backoff.Timer
}

// Manager owns the process-wide database session and its lifecycle:
// connect, reuse, idle-close, reconnect, and retry. Construct one at
// process start and inject it; it is safe for concurrent use.
type Manager struct {
	url        string
	driver     Driver
	opts       Options
	policy     Policy
	serverless bool
	maxIdle    time.Duration
	log        *slog.Logger
	onChange   func(State)
	timer      backoff.Timer

	flight singleflight.Group

	mu        sync.Mutex
	state     State
	session   Session
	connected bool // cached flag; reconciled against Session.Alive on every use
	idleTimer *time.Timer
}

// NewManager creates a Manager from the given configuration.
func NewManager(cfg ManagerConfig) *Manager {
	driver := cfg.Driver
	if driver == nil {
		driver = NewPgxDriver()
	}
	opts := cfg.Options
	if opts == (Options{}) {
		if cfg.Serverless {
			opts = ServerlessOptions()
		} else {
			opts = PersistentOptions()
		}
	}
	policy := cfg.Policy
	if policy == (Policy{}) {
		policy = DefaultPolicy()
	}
	maxIdle := cfg.MaxIdleTime
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdleTime
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Manager{
		url:        cfg.URL,
		driver:     driver,
		opts:       opts,
		policy:     policy,
		serverless: cfg.Serverless,
		maxIdle:    maxIdle,
		log:        log.With(slog.String("component", "dbconn")),
		onChange:   cfg.OnStateChange,
		timer:      cfg.Timer,
		state:      StateDisconnected,
	}
}

// Connect returns a live session, establishing one if necessary.
//
// Callers that arrive while an attempt is in flight join it and receive
// its outcome; at most one underlying connect sequence runs at a time.
// The attempt itself is not cancellable: it runs to completion or
// exhaustion and updates shared state even if every waiter gives up.
func (m *Manager) Connect(ctx context.Context) (Session, error) {
	if m.url == "" {
		return nil, ErrMissingURL
	}

	if sess := m.reuse(); sess != nil {
		return sess, nil
	}

	dialCtx := context.WithoutCancel(ctx)
	v, err, _ := m.flight.Do("connect", func() (any, error) {
		// A waiter that lost the race to a just-finished attempt must
		// not dial again.
		if sess := m.reuse(); sess != nil {
			return sess, nil
		}
		return m.dial(dialCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.(Session), nil
}

// reuse returns the existing session when the cached flag and the
// driver's live state agree it is usable. A divergence (cache says
// connected, driver says the session is gone) is resolved in the
// driver's favor: the stale session is discarded.
func (m *Manager) reuse() Session {
	m.mu.Lock()
	sess := m.session
	cached := m.connected
	m.mu.Unlock()

	if sess == nil || !cached {
		return nil
	}
	if sess.Alive() {
		m.armIdle()
		return sess
	}

	m.log.Warn("cached connection state diverged from driver state, discarding stale session")
	m.mu.Lock()
	if m.session == sess {
		m.session = nil
		m.connected = false
	}
	m.mu.Unlock()
	_ = sess.Close()
	m.setState(StateDisconnected)
	return nil
}

// dial runs the bounded retry loop for a fresh connection.
func (m *Manager) dial(ctx context.Context) (Session, error) {
	m.setState(StateConnecting)
	m.log.Info("connecting to database",
		slog.String("url", redact.URL(m.url)),
		slog.Bool("serverless", m.serverless))

	var (
		sess    Session
		attempt int
	)
	operation := func() error {
		attempt++
		s, err := m.driver.Connect(ctx, m.url, m.opts)
		if err != nil {
			return err
		}
		sess = s
		return nil
	}
	notify := func(err error, delay time.Duration) {
		m.log.Warn("database connection attempt failed",
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", delay),
			slog.String("error", redact.Error(err)))
	}

	if err := backoff.RetryNotifyWithTimer(operation, m.policy.backOff(), notify, m.timer); err != nil {
		m.setState(StateError)
		m.log.Error("database connection attempts exhausted",
			slog.Int("attempts", attempt),
			slog.String("error", redact.Error(err)))
		return nil, &ConnectError{Attempts: attempt, Err: err}
	}

	m.mu.Lock()
	m.session = sess
	m.connected = true
	m.mu.Unlock()
	m.setState(StateConnected)
	m.armIdle()
	m.log.Info("database connection established", slog.Int("attempts", attempt))
	return sess, nil
}

// Disconnect cancels the idle timer and closes the live session, if any.
// Calling it when already disconnected is a no-op, not an error.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	if m.idleTimer != nil {
		m.idleTimer.Stop()
		m.idleTimer = nil
	}
	sess := m.session
	m.session = nil
	m.connected = false
	m.mu.Unlock()

	if sess == nil {
		m.setState(StateDisconnected)
		return nil
	}

	m.setState(StateDisconnecting)
	err := sess.Close()
	m.setState(StateDisconnected)
	if err != nil {
		m.log.Error("failed to close database session",
			slog.String("error", redact.Error(err)))
		return err
	}
	m.log.Info("database connection closed")
	return nil
}

// State returns the manager's current connection state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connected reports whether the manager currently holds a session it
// believes to be live.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connected && m.session != nil
}

// Session returns the current session, or nil when disconnected.
func (m *Manager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// URL returns the configured connection string, unredacted. Callers must
// redact before logging.
func (m *Manager) URL() string {
	return m.url
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	if m.state == s {
		m.mu.Unlock()
		return
	}
	m.state = s
	cb := m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(s)
	}
}

// armIdle (re)schedules the idle closer. Every successful connect or
// reuse lands here, so the timer measures time since last use. Serverless
// mode never arms it.
func (m *Manager) armIdle() {
	if m.serverless {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.idleTimer != nil {
		m.idleTimer.Stop()
	}
	m.idleTimer = time.AfterFunc(m.maxIdle, m.idleClose)
}

// idleClose fires when the connection has gone unused for maxIdle.
// Firing after a disconnect is a no-op.
func (m *Manager) idleClose() {
	m.mu.Lock()
	if !m.connected || m.session == nil {
		m.mu.Unlock()
		return
	}
	sess := m.session
	m.session = nil
	m.connected = false
	m.idleTimer = nil
	m.mu.Unlock()

	m.log.Info("closing idle database connection",
		slog.Duration("max_idle_time", m.maxIdle))
	if err := sess.Close(); err != nil {
		m.log.Warn("failed to close idle database session",
			slog.String("error", redact.Error(err)))
	}
	m.setState(StateDisconnected)
}
