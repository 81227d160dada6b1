package desktop

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/lguibr/duelpong/game"
	"go.uber.org/zap"
)

// Sound plays the synthesised tone for each cue. Playback problems are
// logged and never surface to the game loop.
type Sound struct {
	ctx     *audio.Context
	players map[game.Cue]*audio.Player
	logger  *zap.Logger
}

// NewSound pre-renders every tone. ebiten allows one audio context per
// process, so call it once.
func NewSound(logger *zap.Logger) *Sound {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Sound{
		ctx:     audio.NewContext(sampleRate),
		players: make(map[game.Cue]*audio.Player, len(toneTable)),
		logger:  logger.Named("sound"),
	}
	for cue, tone := range toneTable {
		s.players[cue] = s.ctx.NewPlayerFromBytes(Synthesize(tone))
	}
	return s
}

// Play starts the tone for each cue, restarting it if it is already playing.
func (s *Sound) Play(cues []game.Cue) {
	if s == nil {
		return
	}
	for _, cue := range cues {
		player, ok := s.players[cue]
		if !ok {
			s.logger.Debug("no tone for cue", zap.String("cue", string(cue)))
			continue
		}
		if err := player.Rewind(); err != nil {
			s.logger.Warn("rewind failed", zap.String("cue", string(cue)), zap.Error(err))
			continue
		}
		player.Play()
	}
}
