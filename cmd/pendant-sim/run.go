package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/e7canasta/pendant-core/capture"
	"github.com/e7canasta/pendant-core/device"
	"github.com/e7canasta/pendant-core/transport"
)

func newRunCmd() *cobra.Command {
	var (
		cfgPath   string
		listen    string
		photoSize int
		tick      time.Duration
		failNext  int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulated device until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := device.LoadConfig(cfgPath)
			if err != nil {
				return err
			}

			log := logrus.New()
			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
			}
			log.SetLevel(level)

			sink := transport.NewWSSink(cfg.TransportMax, log)
			mux := http.NewServeMux()
			mux.Handle("/stream", sink)
			srv := &http.Server{Addr: listen, Handler: mux}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.WithError(err).Fatal("websocket server failed")
				}
			}()

			cam := capture.NewSimCamera(photoSize)
			cam.FailNext = failNext
			deps := device.Deps{
				Camera: cam,
				Sink:   sink,
				Gauge:  &simGauge{},
				LED:    consoleLED{},
			}
			if cfg.AudioEnabled {
				deps.Mic = capture.NewSimMicrophone(cfg.AudioFrameSize)
			}
			dev, err := device.New(cfg, deps, log)
			if err != nil {
				return err
			}
			dev.StartCapture()

			color.Green("pendant-sim listening on ws://%s/stream", listen)
			color.Cyan("transport max %d bytes, photo %d bytes, tick %s",
				cfg.TransportMax, photoSize, tick)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			ticker := time.NewTicker(tick)
			defer ticker.Stop()
			for {
				select {
				case <-stop:
					srv.Close()
					printSummary(dev)
					return nil
				case now := <-ticker.C:
					dev.Tick(now)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (optional)")
	cmd.Flags().StringVarP(&listen, "listen", "l", "127.0.0.1:8750", "websocket listen address")
	cmd.Flags().IntVar(&photoSize, "photo-size", 50_000, "simulated photo size in bytes")
	cmd.Flags().DurationVar(&tick, "tick", 10*time.Millisecond, "scheduler pass interval")
	cmd.Flags().IntVar(&failNext, "fail-captures", 0, "fail the first N captures, exercising the retry path")
	return cmd
}

func printSummary(dev *device.Device) {
	st := dev.Snapshot()
	fmt.Println()
	color.Yellow("photos captured %d, failed %d", st.PhotosCaptured, st.PhotosFailed)
	color.Yellow("audio frames out %d, bytes dropped %d", st.AudioFramesOut, st.AudioDropped)
	color.Yellow("cycles %d/%d, executions %d, exec time %s",
		st.Scheduler.Cycles, st.Scheduler.Capacity,
		st.Scheduler.TotalExecuted, st.Scheduler.TotalTime)
}

// simGauge drains two points per read from a full charge.
type simGauge struct {
	reads int
}

func (g *simGauge) Read() (int, device.ChargeState, error) {
	pct := 100 - 2*g.reads
	if pct < 0 {
		pct = 0
	}
	g.reads++
	return pct, device.Discharging, nil
}

// consoleLED is the terminal stand-in for the status indicator.
type consoleLED struct{}

func (consoleLED) SetLevel(uint8) {}
