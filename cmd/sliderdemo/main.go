//go:build js || wasm

package main

import (
	"context"
	_ "embed"
	"fmt"

	"go.uber.org/zap"

	"github.com/vcrobe/nojs-nouislider/components/pages"
	"github.com/vcrobe/nojs-nouislider/config"
	"github.com/vcrobe/nojs-nouislider/console"
	"github.com/vcrobe/nojs-nouislider/dialogs"
	"github.com/vcrobe/nojs-nouislider/logging"
	"github.com/vcrobe/nojs-nouislider/nouislider"
	"github.com/vcrobe/nojs-nouislider/router"
	"github.com/vcrobe/nojs-nouislider/runtime"
)

//go:embed config.yaml
var configYAML []byte

func main() {
	cc, err := config.Load(configYAML, dialogs.Notifier{})
	if err != nil {
		console.Error("Failed to load config:", err.Error())
		return
	}

	logger, err := logging.NewLogger(cc.LogLevel)
	if err != nil {
		dialogs.Alert(fmt.Sprintf("Failed to create logger: %v", err))
		return
	}
	logger = logger.Named("sliderdemo")

	logger.Infow("Config values",
		"logLevel", cc.LogLevel,
		"numeric", cc.Numeric,
		"dates", cc.Dates,
		"pips", cc.Pips)

	if err := run(cc, logger); err != nil {
		logger.Errorw("Failed to start", "error", err)
		dialogs.Alert("Slider demo failed to start: " + err.Error())
		return
	}

	// Keep the Go program running
	select {}
}

func run(cc *config.CanonicalConfig, logger *zap.SugaredLogger) error {
	// the page may still be loading the widget script
	err := nouislider.WaitLoaded(context.Background(), nouislider.LibraryLoaded, nouislider.DefaultLoadPolicy(), logger)
	if err != nil {
		return err
	}
	binding := nouislider.Browser()

	engine := router.NewEngine(logger)
	engine.Handle("/", func(map[string]string) runtime.Component {
		return &pages.NumericPage{Options: cc.NumericOptions(), Binding: binding, Logger: logger}
	})
	engine.Handle("/dates", func(map[string]string) runtime.Component {
		return &pages.DatePage{
			From:       cc.Dates.From,
			To:         cc.Dates.To,
			Count:      cc.Dates.Count,
			Seed:       cc.Dates.Seed,
			ShowEvents: cc.Dates.ShowEvents,
			Binding:    binding,
			Logger:     logger,
		}
	})
	engine.Handle("/pips", func(map[string]string) runtime.Component {
		return &pages.PipsPage{Options: cc.PipsOptions(), Binding: binding, Logger: logger}
	})
	engine.HandleNotFound(func(params map[string]string) runtime.Component {
		return &pages.NotFound{Path: params["path"]}
	})

	shell := router.NewAppShell("noUiSlider", []router.NavLink{
		{Path: "/", Label: "Numeric"},
		{Path: "/dates", Label: "Dates"},
		{Path: "/pips", Label: "Pips"},
	})

	renderer := runtime.NewRenderer(engine, "#app", logger)
	renderer.SetCurrentComponent(shell)
	shell.SetRenderer(renderer)
	renderer.RenderRoot()

	onRouteChange := func(page runtime.Component, path string) {
		shell.SetPage(page, path)
	}

	if err := engine.Start(onRouteChange); err != nil {
		return fmt.Errorf("start router: %w", err)
	}
	return nil
}
