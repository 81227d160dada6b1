package bollywood

import "go.uber.org/zap"

// Context is what an Actor sees while processing one message.
type Context interface {
	Engine() *Engine
	Self() *PID
	// Sender is nil for messages sent from outside any actor.
	Sender() *PID
	Message() interface{}
	// Reply answers the pending Ask, if the message came from one. It is a
	// no-op otherwise, and only the first reply is delivered.
	Reply(response interface{})
	// Logger is the engine logger tagged with the actor PID.
	Logger() *zap.Logger
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
	replyCh chan interface{}
	logger  *zap.Logger
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
func (c *context) Logger() *zap.Logger  { return c.logger }

func (c *context) Reply(response interface{}) {
	if c.replyCh == nil {
		return
	}
	select {
	case c.replyCh <- response:
	default:
	}
}
