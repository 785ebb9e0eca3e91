package main

import (
	"context"
	"time"

	"envlogger-go/config"
	"envlogger-go/indicator"
	"envlogger-go/logger"
	"envlogger-go/platform"
	"envlogger-go/serialcmd"
)

// device selects the embedded config.
// Override with: -ldflags "-X main.device=<id>".
var device = "envlogger"

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot:", device)

	cfg, err := config.Lookup(device)
	if err != nil {
		println("[config]", err.Error(), "- using defaults")
	}

	devs, err := platform.Setup(cfg)
	if err != nil {
		println("[platform] setup failed:", err.Error())
		return
	}

	ctrl := logger.New(logger.Config{
		Probe:      devs.Probe,
		Env:        devs.Env,
		Reader:     serialcmd.New(devs.Port, cfg.MaxLine),
		Ind:        indicator.New(devs.Strip, cfg.Bright, cfg.Dim),
		Out:        devs.Port,
		RetryDelay: time.Duration(cfg.RetryMs) * time.Millisecond,
		IdleSleep:  time.Duration(cfg.IdleSleepMs) * time.Millisecond,
	})
	_ = ctrl.Run(context.Background())
}
