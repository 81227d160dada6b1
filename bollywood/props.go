package bollywood

// Producer creates a fresh Actor instance.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

// NewProps panics on a nil producer, like the rest of the wiring mistakes
// that can only happen at startup.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the buffered mailbox capacity.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}
