package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"crystalviz/internal/config"
	"crystalviz/internal/game"
	"crystalviz/internal/logutil"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		logutil.Errorf("%v", err)
		return
	}

	g, err := game.New(settings)
	if err != nil {
		logutil.Errorf("startup: %v", err)
		return
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Crystal Field Visualizer")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logutil.Errorf("run: %v", err)
	}
}
