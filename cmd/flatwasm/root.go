package main

import (
	"fmt"

	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flatwasm/flatwasm/internal/version"
)

type rootCommand struct {
	gs        *globalState
	fromFlags config
}

func newRootCommand(gs *globalState) *cobra.Command {
	c := &rootCommand{gs: gs, fromFlags: defaultConfig()}

	cmd := &cobra.Command{
		Use:   "flatwasm",
		Short: "lowers structured WebAssembly control flow to flat operations",
		Long: `flatwasm verifies the function bodies of a module with an operand-type stack and lowers
their structured control flow (blocks, branches and try_table) to labels, jumps and
explicit stack unwinding.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	cmd.PersistentFlags().AddFlagSet(rootFlagSet(&c.fromFlags))

	cmd.AddCommand(
		getLowerCmd(gs),
		getOpcodesCmd(gs),
		getVersionCmd(gs),
	)
	return cmd
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	conf, err := consolidate(cmd.Flags(), c.fromFlags, c.gs.lookupEnv)
	if err != nil {
		return err
	}
	c.gs.config = conf

	if conf.NoColor {
		c.gs.stdOut = colorable.NewNonColorable(c.gs.stdOut)
	}
	c.setupLogger()
	c.gs.logger.WithField("version", version.GetFlatwasmVersion()).Debug("flatwasm started")
	return nil
}

func (c *rootCommand) setupLogger() {
	logger := c.gs.logger
	level, _ := logrus.ParseLevel(c.gs.config.LogLevel) // validated by consolidate
	logger.SetLevel(level)

	switch c.gs.config.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !c.gs.config.NoColor && c.gs.stdErrTTY,
			DisableColors: c.gs.config.NoColor,
		})
	}
}

func getVersionCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the version of flatwasm",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(gs.stdOut, version.GetFlatwasmVersion())
			return err
		},
	}
}
