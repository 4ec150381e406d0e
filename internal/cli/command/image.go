package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/makeboot-go/internal/cli/output"
	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/core/service"
	"github.com/yndnr/makeboot-go/internal/storage"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the layout of a boot sector image",
		ArgsUsage: "IMAGE",
		Action:    inspectAction,
	}
}

// VerifyCommand returns the verify command.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check that an image is a bootable sector",
		ArgsUsage: "IMAGE",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Report only through the exit status",
			},
		},
		Action: verifyAction,
	}
}

// DumpCommand returns the dump command.
func DumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print a canonical hex+ASCII listing of an image",
		ArgsUsage: "IMAGE",
		Action:    dumpAction,
	}
}

// ExportCommand returns the export command.
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Convert an image to Intel HEX loaded at 0x7C00",
		ArgsUsage: "IMAGE [OUT]",
		Description: "OUT defaults to IMAGE with a .hex extension. " +
			"Use - to write the records to standard output.",
		Action: exportAction,
	}
}

func requireImageArg(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		return "", fmt.Errorf("image path required")
	}
	return path, nil
}

func inspectAction(c *cli.Context) error {
	path, err := requireImageArg(c)
	if err != nil {
		return err
	}

	report, err := service.Inspect(GetStore(c), path)
	if err != nil {
		return err
	}

	f, _ := formatter(c)
	return f.Format(c.App.Writer, report)
}

func verifyAction(c *cli.Context) error {
	path, err := requireImageArg(c)
	if err != nil {
		return err
	}

	report, err := service.Verify(GetStore(c), path)
	if err != nil || c.Bool("quiet") {
		return err
	}

	_, werr := fmt.Fprintf(c.App.Writer, "%s: bootable (%d payload bytes, %d free)\n",
		report.Path, report.PayloadBytes, report.FreeBytes)
	return werr
}

func dumpAction(c *cli.Context) error {
	path, err := requireImageArg(c)
	if err != nil {
		return err
	}

	image, err := GetStore(c).Read(path)
	if err != nil {
		return err
	}
	return output.Hexdump(c.App.Writer, image)
}

func exportAction(c *cli.Context) error {
	path, err := requireImageArg(c)
	if err != nil {
		return err
	}

	store := GetStore(c)
	image, err := store.Read(path)
	if err != nil {
		return err
	}

	out := c.Args().Get(1)
	if out == "-" {
		return storage.ExportIntelHex(c.App.Writer, image, domain.LoadAddress, storage.DefaultHexLineLength)
	}
	if out == "" {
		out = hexPath(path)
	}

	if err := store.WriteIntelHex(out, image); err != nil {
		return err
	}
	GetLogger(c).Info("intel hex exported", "image", path, "path", out)
	_, err = fmt.Fprintf(c.App.Writer, "Intel HEX written to %s\n", out)
	return err
}

// hexPath replaces the extension of path with .hex.
func hexPath(path string) string {
	ext := filepath.Ext(path)
	if ext == ".hex" {
		return path + ".hex"
	}
	return strings.TrimSuffix(path, ext) + ".hex"
}
