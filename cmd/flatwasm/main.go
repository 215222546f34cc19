package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	gs := &globalState{
		ctx:       context.Background(),
		fs:        afero.NewOsFs(),
		args:      os.Args[1:],
		lookupEnv: os.LookupEnv,
		stdOut:    colorable.NewColorableStdout(),
		stdErr:    colorable.NewColorableStderr(),
		stdOutTTY: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		stdErrTTY: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
	doMain(gs, os.Exit)
}

// globalState holds everything the commands access outside of their flags, so that
// they can run against an in-memory filesystem and buffers in tests.
type globalState struct {
	ctx       context.Context
	fs        afero.Fs
	args      []string
	lookupEnv func(key string) (string, bool)

	stdOut, stdErr       io.Writer
	stdOutTTY, stdErrTTY bool

	logger *logrus.Logger
	config config
}

// doMain is separated out for the purpose of unit testing.
func doMain(gs *globalState, exit func(code int)) {
	gs.logger = &logrus.Logger{
		Out:       gs.stdErr,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	root := newRootCommand(gs)
	root.SetArgs(gs.args)
	root.SetOut(gs.stdOut)
	root.SetErr(gs.stdErr)
	if err := root.ExecuteContext(gs.ctx); err != nil {
		gs.logger.Error(err)
		exit(1)
		return
	}
	exit(0)
}
