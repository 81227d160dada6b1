package bollywood

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned when the target PID is not running.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrEngineStopping is returned once Shutdown has begun.
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex // Protects the actors map
	stopping   atomic.Bool
	logger     *zap.Logger
}

// NewEngine creates a new actor engine. A nil logger discards output.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		actors: make(map[string]*process),
		logger: logger.Named("bollywood"),
	}
}

func (e *Engine) Logger() *zap.Logger {
	return e.logger
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
func (e *Engine) Spawn(props *Props) (*PID, error) {
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	proc.sendMessage(&messageEnvelope{Message: Started{}})
	e.logger.Debug("actor spawned", zap.Stringer("pid", pid))
	return pid, nil
}

// Send delivers a message to the actor identified by the PID. Unknown
// targets and user messages during shutdown are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	_ = e.deliver(pid, &messageEnvelope{Sender: sender, Message: message})
}

func (e *Engine) deliver(pid *PID, envelope *messageEnvelope) error {
	if pid == nil {
		return ErrActorNotFound
	}
	if e.stopping.Load() && !isSystemMessage(envelope.Message) {
		return ErrEngineStopping
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrActorNotFound, pid.ID)
	}
	if !proc.sendMessage(envelope) {
		return fmt.Errorf("bollywood: mailbox of %s rejected %T", pid.ID, envelope.Message)
	}
	return nil
}

// Ask sends a message and waits for the actor to Reply to it.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	replyCh := make(chan interface{}, 1)
	if err := e.deliver(pid, &messageEnvelope{Message: message, replyCh: replyCh}); err != nil {
		return nil, err
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case response := <-replyCh:
		return response, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: %T to %s after %s", ErrTimeout, message, pid.ID, timeout)
	}
}

// Stop requests an actor to stop. The Stopping message lets it clean up,
// and the stop channel guarantees termination even with a full mailbox.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()
	if !ok {
		return
	}

	proc.sendMessage(&messageEnvelope{Message: Stopping{}})
	proc.closeStop()
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// ActorCount reports the number of running actors.
func (e *Engine) ActorCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.actors)
}

// Shutdown stops all actors and waits for them to terminate gracefully.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		e.logger.Warn("engine already shutting down")
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	e.logger.Info("engine shutdown initiated", zap.Int("actors", len(pidsToStop)))
	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if e.ActorCount() == 0 {
			e.logger.Info("engine shutdown complete")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	remaining := make([]string, 0, len(e.actors))
	for id := range e.actors {
		remaining = append(remaining, id)
	}
	e.actors = make(map[string]*process)
	e.mu.Unlock()

	e.logger.Warn("engine shutdown timed out", zap.Strings("remaining", remaining))
}
