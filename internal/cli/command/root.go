package command

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/makeboot-go/internal/cli/config"
	"github.com/yndnr/makeboot-go/internal/cli/output"
	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/core/service"
	"github.com/yndnr/makeboot-go/internal/infra/buildinfo"
	"github.com/yndnr/makeboot-go/internal/storage"
	"github.com/yndnr/makeboot-go/internal/telemetry/logger"
)

// Metadata keys set by the Before hook.
const (
	metaConfig    = "config"
	metaStore     = "store"
	metaAssembler = "assembler"
	metaLogger    = "logger"
)

const usageText = `makeboot [global options] <byte> [<byte> ...]
   makeboot [global options] command [command options] [arguments...]

   Each <byte> is two hexadecimal digits. The bytes are padded with zeros
   to 510 bytes and followed by the 0x55 0xAA boot signature. Options go
   before the first byte; use -- to end options explicitly.

   Example: makeboot EB FE 90`

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "makeboot",
		Usage:     "Assemble hex byte tokens into a 512-byte boot sector",
		UsageText: usageText,
		Version:   buildinfo.String(),
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			InspectCommand(),
			VerifyCommand(),
			DumpCommand(),
			ExportCommand(),
			WatchCommand(),
			ConfigCommand(),
		},
		Before:       setup,
		Action:       assembleAction,
		OnUsageError: tokenUsageError,
		// Every argument that is not a subcommand is a byte token, so
		// "h" must not dispatch to a help command. --help still works.
		HideHelpCommand: true,
	}
}

// tokenUsageError reports a token-shaped unknown flag such as "-1" as the
// invalid byte token it is, instead of a flag parsing failure.
func tokenUsageError(_ *cli.Context, err error, isSubcommand bool) error {
	name, ok := strings.CutPrefix(err.Error(), "flag provided but not defined: ")
	if isSubcommand || !ok || utf8.RuneCountInString(name) != domain.ByteTokenLength {
		return err
	}
	if _, perr := domain.ParseToken(name); perr != nil {
		return perr
	}
	return err
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "out-file",
			Aliases: []string{"f"},
			Usage:   "Boot sector image to write (default from config, else boot.bin)",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "Read byte tokens from `FILE` before the command-line tokens",
		},
		&cli.BoolFlag{
			Name:  "mkdir",
			Usage: "Create missing parent directories of the output file",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file (default ~/.makeboot/config.yaml)",
			EnvVars: []string{"MAKEBOOT_CONFIG"},
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

// flagOverrides maps explicitly set flags onto config keys.
func flagOverrides(c *cli.Context) map[string]any {
	overrides := make(map[string]any)
	if c.IsSet("output") {
		overrides["output.format"] = c.String("output")
	}
	if c.IsSet("mkdir") {
		overrides["image.mkdir"] = c.Bool("mkdir")
	}
	if c.IsSet("log-level") {
		overrides["log.level"] = c.String("log-level")
	}
	if c.IsSet("log-format") {
		overrides["log.format"] = c.String("log-format")
	}
	if c.Bool("verbose") {
		overrides["log.level"] = "debug"
	}
	return overrides
}

// setup loads configuration and wires the services used by every command.
func setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"), flagOverrides(c))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if _, err := output.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: c.App.ErrWriter,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	store := storage.NewImageStore()
	store.CreateDirs = cfg.Image.Mkdir

	asm := service.NewAssembler(store,
		service.WithDefaultName(cfg.Image.Name),
		service.WithLogger(log),
	)

	c.App.Metadata[metaConfig] = cfg
	c.App.Metadata[metaStore] = store
	c.App.Metadata[metaAssembler] = asm
	c.App.Metadata[metaLogger] = log

	log.Debug("configuration loaded",
		"image", cfg.Image.Name,
		"output", cfg.Output.Format,
		"log_level", cfg.Log.Level,
	)
	return nil
}

// GetConfig retrieves the loaded configuration from context.
func GetConfig(c *cli.Context) *config.CLIConfig {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.CLIConfig); ok {
		return cfg
	}
	return config.Default()
}

// GetStore retrieves the image store from context.
func GetStore(c *cli.Context) *storage.ImageStore {
	if s, ok := c.App.Metadata[metaStore].(*storage.ImageStore); ok {
		return s
	}
	return storage.NewImageStore()
}

// GetAssembler retrieves the assembler from context.
func GetAssembler(c *cli.Context) *service.Assembler {
	if a, ok := c.App.Metadata[metaAssembler].(*service.Assembler); ok {
		return a
	}
	return service.NewAssembler(GetStore(c), service.WithDefaultName(GetConfig(c).Image.Name))
}

// GetLogger retrieves the logger from context.
func GetLogger(c *cli.Context) logger.Logger {
	if l, ok := c.App.Metadata[metaLogger].(logger.Logger); ok {
		return l
	}
	return logger.Nop()
}

// formatter returns the formatter for the configured output format.
func formatter(c *cli.Context) (output.Formatter, output.Format) {
	format, err := output.ParseFormat(GetConfig(c).Output.Format)
	if err != nil {
		format = output.FormatTable
	}
	return output.NewFormatter(format), format
}
