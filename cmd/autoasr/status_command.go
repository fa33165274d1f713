package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoasr/internal/scanner"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration and the items a scan would process",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, [][]string{
				{"Config file", ctx.configPath},
				{"Media directory", cfg.Paths.MediaDir},
				{"Backend", cfg.Transcription.Backend},
				{"Model", cfg.Transcription.Model},
				{"Segmentation", onOff(cfg.VAD.Enabled)},
				{"VAD threshold", fmt.Sprintf("%.2f", cfg.VAD.Threshold)},
				{"Min segment", fmt.Sprintf("%.1fs", cfg.VAD.MinSegmentSeconds)},
			}))

			s, err := scanner.New(scanner.Options{Config: cfg})
			if err != nil {
				return err
			}
			items, err := s.Pending(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(out, "Nothing pending; all media is transcribed.")
				return nil
			}

			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{item.DisplayName(), formatTrack(item.Track), item.TranscriptPath()})
			}
			fmt.Fprintf(out, "%d pending tracks:\n", len(items))
			fmt.Fprintln(out, renderTable([]string{"Source", "Track", "Transcript"}, rows, 2))
			return nil
		},
	}
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
