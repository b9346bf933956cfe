package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/e7canasta/pendant-core/device"
	"github.com/e7canasta/pendant-core/wire"
)

func newConfigCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and derived wire sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := device.LoadConfig(cfgPath)
			if err != nil {
				return err
			}

			color.Cyan("effective configuration")
			fmt.Printf("  transport_max        %d\n", cfg.TransportMax)
			fmt.Printf("  cycle_capacity       %d\n", cfg.CycleCapacity)
			fmt.Printf("  photo_interval       %s\n", cfg.PhotoInterval)
			fmt.Printf("  photo_retry_interval %s\n", cfg.PhotoRetryInterval)
			fmt.Printf("  photo_retry_max      %d\n", cfg.PhotoRetryMax)
			fmt.Printf("  audio_enabled        %v\n", cfg.AudioEnabled)
			fmt.Printf("  audio_frame_size     %d\n", cfg.AudioFrameSize)
			fmt.Printf("  audio_ring_size      %d\n", cfg.AudioRingSize)
			fmt.Printf("  conn_check_interval  %s\n", cfg.ConnCheckInterval)
			fmt.Printf("  battery_interval     %s\n", cfg.BatteryInterval)
			fmt.Printf("  log_level            %s\n", cfg.LogLevel)

			color.Cyan("derived wire sizes")
			fmt.Printf("  chunk payload        %d\n", wire.UsableChunk(cfg.TransportMax))
			fmt.Printf("  sub-chunk payload    %d\n", wire.UsableSubChunk(cfg.TransportMax))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "config file (optional)")
	return cmd
}
