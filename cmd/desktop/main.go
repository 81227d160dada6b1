// Command desktop plays duelpong against the AI in a local window.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/duelpong/desktop"
	"github.com/lguibr/duelpong/game"
	"github.com/lguibr/duelpong/utils"
	"go.uber.org/zap"
)

func main() {
	cfg, err := utils.LoadEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	match := game.NewMatch(cfg, game.NewRand(time.Now().UnixNano()))
	g := desktop.New(match, desktop.NewSound(logger), logger)

	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle("duelpong")
	ebiten.SetTPS(cfg.FrameRate)

	logger.Info("starting desktop match", zap.String("match", match.ID), zap.Int("tps", cfg.FrameRate))
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game loop exited", zap.Error(err))
		os.Exit(1)
	}
}
