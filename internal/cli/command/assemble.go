package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/makeboot-go/internal/cli/output"
	"github.com/yndnr/makeboot-go/internal/core/domain"
	"github.com/yndnr/makeboot-go/internal/core/service"
)

// assembleAction is the root action: it writes a boot sector built from
// the --from file tokens followed by the argument tokens.
func assembleAction(c *cli.Context) error {
	tokens, err := collectTokens(c)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		_ = cli.ShowAppHelp(c)
		return domain.ErrUsage
	}

	result, err := GetAssembler(c).Assemble(c.Context, tokens, c.String("out-file"))
	if err != nil {
		return err
	}
	return printAssembleResult(c, result)
}

func collectTokens(c *cli.Context) ([]string, error) {
	var tokens []string
	if from := c.String("from"); from != "" {
		fileTokens, err := service.ReadTokenFile(from)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, fileTokens...)
	}
	return append(tokens, c.Args().Slice()...), nil
}

func printAssembleResult(c *cli.Context, result *service.AssembleResult) error {
	f, format := formatter(c)
	if format == output.FormatTable {
		_, err := fmt.Fprintf(c.App.Writer, "Boot sector written to %s\n", result.Path)
		return err
	}
	return f.Format(c.App.Writer, result)
}
