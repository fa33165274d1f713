package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"autoasr/internal/journal"
	"autoasr/internal/scanlog"
	"autoasr/internal/scanner"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var wholeFile bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Transcribe every pending media file under the configured directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if wholeFile {
				cfg.VAD.Enabled = false
			}

			logger, closeLog, err := ctx.newLogger()
			if err != nil {
				return err
			}
			defer func() {
				_ = closeLog()
			}()

			var store scanner.Journal
			if strings.TrimSpace(cfg.Paths.JournalPath) != "" {
				journalStore, err := journal.Open(cfg.Paths.JournalPath)
				if err != nil {
					return err
				}
				defer journalStore.Close()
				store = journalStore
			}

			stream := scanlog.NewStream()
			s, err := scanner.New(scanner.Options{
				Config:  cfg,
				Logger:  logger,
				Stream:  stream,
				Journal: store,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := isatty.IsTerminal(os.Stdout.Fd())
			done := make(chan struct{})
			go func() {
				defer close(done)
				for {
					entry, ok, err := stream.Next(cmd.Context())
					if err != nil || !ok {
						return
					}
					fmt.Fprintln(out, renderEntry(entry, colorize))
				}
			}()

			report, scanErr := s.Scan(cmd.Context())
			<-done
			if scanErr != nil {
				return scanErr
			}
			fmt.Fprintf(out, "Scan finished: %d succeeded, %d failed\n",
				report.SucceededCount(), report.FailedCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&wholeFile, "whole-file", false, "Skip segmentation and transcribe each file in one request")
	return cmd
}

func renderEntry(entry scanlog.Entry, colorize bool) string {
	if !colorize {
		return entry.Message
	}
	switch entry.Level {
	case scanlog.LevelSuccess:
		return text.FgGreen.Sprint(entry.Message)
	case scanlog.LevelError:
		return text.FgRed.Sprint(entry.Message)
	default:
		return entry.Message
	}
}
