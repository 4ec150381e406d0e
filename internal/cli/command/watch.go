package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/makeboot-go/internal/cli/output"
	"github.com/yndnr/makeboot-go/internal/core/service"
	"github.com/yndnr/makeboot-go/internal/infra/shutdown"
)

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Rebuild the boot sector whenever a token file changes",
		ArgsUsage: "TOKENFILE",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Minimum time between rebuilds",
				Value: service.DefaultRebuildInterval,
			},
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Time allowed for cleanup after a signal",
				Value: 5 * time.Second,
			},
		},
		Action: watchAction,
	}
}

func watchAction(c *cli.Context) error {
	tokenFile := c.Args().First()
	if tokenFile == "" {
		return fmt.Errorf("token file required")
	}

	asm := GetAssembler(c)
	log := GetLogger(c)
	f, format := formatter(c)

	onBuild := func(result *service.AssembleResult, err error) {
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "error: %v\n", err)
			return
		}
		if format == output.FormatTable {
			fmt.Fprintf(c.App.Writer, "Boot sector written to %s (%s)\n", result.Path, result.BuildID)
			return
		}
		if err := f.Format(c.App.Writer, result); err != nil {
			log.Warn("format build result", "error", err)
		}
	}

	h := shutdown.NewHandler(c.Duration("shutdown-timeout"))
	h.OnShutdown(func(context.Context) error {
		log.Info("watch stopped", "file", tokenFile)
		return nil
	})

	log.Info("watching token file", "file", tokenFile)
	return h.Run(c.Context, func(ctx context.Context) error {
		return asm.Watch(ctx, tokenFile, c.String("out-file"), service.WatchOptions{
			Interval: c.Duration("interval"),
			OnBuild:  onBuild,
		})
	})
}
