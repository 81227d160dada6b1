// File: game/match_actor.go
package game

import (
	"fmt"
	"time"

	"github.com/lguibr/duelpong/bollywood"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
)

// MatchActor owns a Match. Ticks, input and queries all arrive through its
// mailbox, so the Match itself never needs a lock.
type MatchActor struct {
	cfg            utils.Config
	match          *Match
	broadcasterPID *bollywood.PID
	logger         *zap.Logger
	clock          func() time.Time
	manualTicks    bool

	engine       *bollywood.Engine
	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}

	intent         Intent
	restartPending bool
	controller     string // Client id holding the paddle, "" when free
}

// MatchActorArgs holds arguments for creating the actor.
type MatchActorArgs struct {
	Config      utils.Config
	Rand        Rand
	Broadcaster *bollywood.PID // Optional; frames are dropped without one
	Logger      *zap.Logger
	Clock       func() time.Time // Defaults to time.Now
	ManualTicks bool             // Do not start the ticker; FrameTick must be sent explicitly
}

// NewMatchActorProducer creates a producer for MatchActor.
func NewMatchActorProducer(args MatchActorArgs) bollywood.Producer {
	return func() bollywood.Actor {
		logger := args.Logger
		if logger == nil {
			logger = zap.NewNop()
		}
		clock := args.Clock
		if clock == nil {
			clock = time.Now
		}
		rng := args.Rand
		if rng == nil {
			rng = NewRand(time.Now().UnixNano())
		}
		match := NewMatch(args.Config, rng)
		return &MatchActor{
			cfg:            args.Config,
			match:          match,
			broadcasterPID: args.Broadcaster,
			logger:         logger.With(zap.String("matchId", match.ID)),
			clock:          clock,
			manualTicks:    args.ManualTicks,
			stopTickerCh:   make(chan struct{}),
		}
	}
}

// Receive is the main message handler for the MatchActor.
func (a *MatchActor) Receive(ctx bollywood.Context) {
	if a.selfPID == nil {
		a.selfPID = ctx.Self()
		a.engine = ctx.Engine()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		a.logger.Info("match started", zap.Stringer("pid", a.selfPID))
		if !a.manualTicks {
			a.ticker = time.NewTicker(a.cfg.FrameDuration())
			go a.runTickerLoop()
		}

	case FrameTick:
		a.step()

	case SetIntent:
		a.intent = m.Intent

	case RequestRestart:
		a.restartPending = true

	case GetSnapshot:
		ctx.Reply(a.match.Snapshot())

	case ClaimControl:
		granted := a.controller == "" || a.controller == m.ClientID
		if granted {
			a.controller = m.ClientID
			a.logger.Info("paddle claimed", zap.String("client", m.ClientID))
		}
		ctx.Reply(granted)

	case ReleaseControl:
		if a.controller == m.ClientID {
			a.controller = ""
			a.intent = IntentNone
			a.logger.Info("paddle released", zap.String("client", m.ClientID))
		}

	case bollywood.Stopping:
		a.logger.Info("match stopping",
			zap.Int("playerScore", a.match.PlayerScore),
			zap.Int("opponentScore", a.match.OpponentScore),
			zap.Uint64("frames", a.match.Frame))
		a.stopTicker()

	case bollywood.Stopped:

	default:
		a.logger.Warn("unknown message", zap.String("type", fmt.Sprintf("%T", m)))
	}
}

func (a *MatchActor) step() {
	res := a.match.Step(Input{Intent: a.intent, Restart: a.restartPending}, a.clock())
	a.restartPending = false

	if res.GameOver != nil {
		a.logger.Info("match over",
			zap.String("result", res.GameOver.Message),
			zap.Int("playerScore", res.GameOver.PlayerScore),
			zap.Int("opponentScore", res.GameOver.OpponentScore))
	}
	if res.Restarted {
		a.logger.Info("match restarted")
	}

	if a.broadcasterPID == nil || a.engine == nil {
		return
	}
	a.engine.Send(a.broadcasterPID, FrameUpdate{
		MessageType: "frame",
		Snapshot:    a.match.Snapshot(),
		Cues:        res.Cues,
		GameOver:    res.GameOver,
		Restarted:   res.Restarted,
	}, a.selfPID)
}

// runTickerLoop sends FrameTick messages to the actor's own mailbox at the
// configured frame rate.
func (a *MatchActor) runTickerLoop() {
	engine, self := a.engine, a.selfPID
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-a.ticker.C:
			select {
			case <-a.stopTickerCh:
				return
			default:
				engine.Send(self, FrameTick{}, nil)
			}
		}
	}
}

func (a *MatchActor) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}
