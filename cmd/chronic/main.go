// Command chronic parses natural-language date expressions from the
// command line and can serve the parse API over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	chronic "github.com/musicmunky/chronic"
	"github.com/musicmunky/chronic/internal/profile"
	"github.com/musicmunky/chronic/server"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chronic",
		Short:         "Natural language date and time parsing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	root.AddCommand(newParseCmd(), newServeCmd())
	return root
}

func loadProfile(cmd *cobra.Command) (*profile.Profile, error) {
	p, err := profile.Load(configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("context") {
		p.Context, _ = flags.GetString("context")
	}
	if flags.Changed("timezone") {
		p.Timezone, _ = flags.GetString("timezone")
	}
	if flags.Changed("span") {
		span, _ := flags.GetBool("span")
		p.Guess = !span
	}
	if flags.Changed("ambiguous-time-range") {
		p.AmbiguousTimeRange, _ = flags.GetInt("ambiguous-time-range")
	}
	if flags.Changed("endian") {
		p.EndianPrecedence, _ = flags.GetString("endian")
	}
	if flags.Changed("year-bias") {
		p.YearBias, _ = flags.GetInt("year-bias")
	}
	if flags.Changed("debug") {
		p.Debug, _ = flags.GetBool("debug")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func addParseFlags(cmd *cobra.Command) {
	cmd.Flags().String("context", "future", "disambiguation direction: past, future or none")
	cmd.Flags().String("timezone", "", "calendar timezone (IANA name or offset)")
	cmd.Flags().Bool("span", false, "print the matched span instead of a single instant")
	cmd.Flags().Int("ambiguous-time-range", 6, "AM window bound for bare clock times, -1 to disable")
	cmd.Flags().String("endian", "middle", "slashed date order preference: middle or little")
	cmd.Flags().Int("year-bias", 50, "two-digit year pivot offset")
	cmd.Flags().Bool("debug", false, "log the parse trace")
}

func newParseCmd() *cobra.Command {
	var nowFlag string
	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse a date expression and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd)
			if err != nil {
				return err
			}
			opts, err := p.ParserOptions()
			if err != nil {
				return err
			}
			if nowFlag != "" {
				now, err := time.Parse(time.RFC3339, nowFlag)
				if err != nil {
					return fmt.Errorf("--now must be RFC 3339: %w", err)
				}
				opts.Now = now
			}

			parser, err := chronic.New(opts)
			if err != nil {
				return err
			}
			if p.Debug {
				parser = parser.WithLogger(newLogger(p))
			}

			text := strings.Join(args, " ")
			if opts.Guess {
				instant, ok := parser.Guess(text)
				if !ok {
					return fmt.Errorf("no date or time found in %q", text)
				}
				fmt.Fprintln(cmd.OutOrStdout(), instant.Format(time.RFC3339))
				return nil
			}
			span, ok := parser.Parse(text)
			if !ok {
				return fmt.Errorf("no date or time found in %q", text)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s .. %s\n",
				span.Begin.Format(time.RFC3339), span.End.Format(time.RFC3339))
			return nil
		},
	}
	addParseFlags(cmd)
	cmd.Flags().StringVar(&nowFlag, "now", "", "reference instant (RFC 3339), default wall clock")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parse API over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := loadProfile(cmd)
			if err != nil {
				return err
			}
			if flags := cmd.Flags(); flags.Changed("port") {
				p.Port, _ = flags.GetInt("port")
			}
			logger := newLogger(p)
			logger.Info("starting server", "addr", p.Addr, "port", p.Port, "mode", p.Mode)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.New(p, logger).Start(ctx)
		},
	}
	addParseFlags(cmd)
	cmd.Flags().Int("port", 8231, "listen port")
	return cmd
}

func newLogger(p *profile.Profile) *slog.Logger {
	level := slog.LevelInfo
	if p.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
