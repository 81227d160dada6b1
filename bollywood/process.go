// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	actor    Actor
	mailbox  chan *messageEnvelope
	props    *Props
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
	logger   *zap.Logger
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	size := props.mailboxSize
	if size <= 0 {
		size = defaultMailboxSize
	}
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, size),
		stopCh:  make(chan struct{}),
		logger:  engine.logger.With(zap.String("pid", pid.ID)),
	}
}

func (p *process) closeStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

// sendMessage enqueues without blocking. It reports false when the message
// was dropped.
func (p *process) sendMessage(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}

	select {
	case p.mailbox <- envelope:
		return true
	default:
		p.logger.Warn("mailbox full, dropping message", zap.String("type", fmt.Sprintf("%T", envelope.Message)))
		return false
	}
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("actor panicked",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
			p.stopped.Store(true)
			p.closeStop()
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
					p.closeStop()
				}
			case Stopped:
				// Delivered by the deferred cleanup only.
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope)
			}
		}
	}
}

// invokeReceive calls the actor's Receive, recovering from panics so one
// bad message does not kill the actor.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		replyCh: envelope.replyCh,
		logger:  p.logger,
	}

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("actor panicked during Receive",
				zap.String("message", fmt.Sprintf("%T", envelope.Message)),
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())))
		}
	}()
	p.actor.Receive(ctx)
}
