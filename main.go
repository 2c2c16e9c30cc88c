package main

import (
	"log"

	"git.lost.host/meutraa/eotk/internal/audio"
	"git.lost.host/meutraa/eotk/internal/config"
	"git.lost.host/meutraa/eotk/internal/input"
	"git.lost.host/meutraa/eotk/internal/manager"
	"git.lost.host/meutraa/eotk/internal/parser"
	"git.lost.host/meutraa/eotk/internal/render"
	"git.lost.host/meutraa/eotk/internal/score"
	"git.lost.host/meutraa/eotk/internal/theme"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg := config.Load()

	var handler input.Handler
	if cfg.Device != "" {
		handler = input.NewDevice(cfg.Device)
	} else {
		handler = input.NewTerminal()
	}
	if err := handler.Init(); nil != err {
		return err
	}
	defer handler.Deinit()

	player := audio.NewPlayer()
	if err := player.Init(); nil != err {
		return err
	}
	defer player.Deinit()

	tracker := &score.DefaultTracker{Path: cfg.ScoresPath}
	if err := tracker.Init(); nil != err {
		return err
	}
	defer tracker.Deinit()

	var view render.Renderer = &render.DefaultRenderer{Theme: &theme.DefaultTheme{}}
	if err := view.Init(); nil != err {
		return err
	}
	defer func() {
		if err := view.Deinit(); nil != err {
			log.Println("unable to restore terminal:", err)
		}
	}()

	m, err := manager.New(cfg, handler, view, player, tracker, &parser.DefaultParser{})
	if nil != err {
		return err
	}
	return m.Run()
}
