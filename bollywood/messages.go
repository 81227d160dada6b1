package bollywood

// --- System Messages ---

// Started is the first message every actor receives.
type Started struct{}

// Stopping asks the actor to clean up. No user message follows it.
type Stopping struct{}

// Stopped is the last message an actor receives before its goroutine exits.
type Stopped struct{}

// --- Message Envelope ---

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
	replyCh chan interface{} // Set only for Ask
}

func isSystemMessage(message interface{}) bool {
	switch message.(type) {
	case Started, Stopping, Stopped:
		return true
	}
	return false
}
