package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/makeboot-go/internal/cli/config"
	"github.com/yndnr/makeboot-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "init",
				Usage:     "Write the default configuration file",
				ArgsUsage: "[PATH]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configPath(c *cli.Context) string {
	if path := c.String("config"); path != "" {
		return path
	}
	return config.DefaultConfigPath()
}

func configShow(c *cli.Context) error {
	cfg := GetConfig(c)

	f, format := formatter(c)
	if format != output.FormatTable {
		return f.Format(c.App.Writer, cfg)
	}

	fmt.Fprintf(c.App.Writer, "Config file: %s\n\n", configPath(c))
	table := &output.Table{}
	table.SetHeaders("KEY", "VALUE")
	table.AddRow("image.name", cfg.Image.Name)
	table.AddRow("image.mkdir", fmt.Sprintf("%t", cfg.Image.Mkdir))
	table.AddRow("output.format", cfg.Output.Format)
	table.AddRow("log.level", cfg.Log.Level)
	table.AddRow("log.format", cfg.Log.Format)
	return table.Render(c.App.Writer)
}

func configInit(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = configPath(c)
	}
	if GetStore(c).Exists(path) && !c.Bool("force") {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.Save(config.Default(), path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	_, err := fmt.Fprintf(c.App.Writer, "Configuration written to %s\n", path)
	return err
}
