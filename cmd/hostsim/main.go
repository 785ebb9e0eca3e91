//go:build !rp2040

// Command hostsim runs the logger loop on the host, speaking the serial
// protocol on stdin/stdout with scripted sensor values. Indicator changes go
// to stderr. Useful for exercising the protocol without hardware:
//
//	$ go run ./cmd/hostsim
//	id?
//	Arduino, BME280 & DS18B20 logger
//	?
//	1503	21.3	21.5	45.2	101325
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"envlogger-go/config"
	"envlogger-go/indicator"
	"envlogger-go/logger"
	"envlogger-go/platform"
	"envlogger-go/serialcmd"
)

func main() {
	cfg := config.Defaults()
	devs, err := platform.Setup(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "setup:", err)
		os.Exit(1)
	}

	devs.Port.SetOutput(os.Stdout)
	devs.Strip.OnSet = func(r, g, b uint8) {
		fmt.Fprintf(os.Stderr, "[led] r=%d g=%d b=%d\n", r, g, b)
	}

	// Feed stdin lines into the simulated port.
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			devs.Port.Inject(append(sc.Bytes(), '\n'))
		}
		os.Exit(0)
	}()

	ctrl := logger.New(logger.Config{
		Probe:      devs.Probe,
		Env:        devs.Env,
		Reader:     serialcmd.New(devs.Port, cfg.MaxLine),
		Ind:        indicator.New(devs.Strip, cfg.Bright, cfg.Dim),
		Out:        devs.Port,
		RetryDelay: time.Duration(cfg.RetryMs) * time.Millisecond,
		IdleSleep:  5 * time.Millisecond, // don't spin a host core
	})
	_ = ctrl.Run(context.Background())
}
