package bollywood

// Actor processes the messages of its mailbox one at a time.
type Actor interface {
	// Receive handles a single message. The context exposes the engine, the
	// actor's own PID, the sender and a way to answer an Ask.
	Receive(ctx Context)
}
