package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flatwasm/flatwasm/internal/fixture"
	"github.com/flatwasm/flatwasm/internal/flatir"
)

func getLowerCmd(gs *globalState) *cobra.Command {
	var functions []uint

	cmd := &cobra.Command{
		Use:   "lower <fixture.yaml>",
		Short: "verifies and lowers the functions of a module fixture",
		Long: `Verifies and lowers the functions of a module described in YAML, then prints
the lowered operations of each function.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLower(cmd, gs, args[0], functions)
		},
	}
	cmd.Flags().UintSliceVarP(&functions, "function", "f", nil,
		"function indexes to print, all functions by default. Every function is verified regardless")
	return cmd
}

func runLower(cmd *cobra.Command, gs *globalState, path string, functions []uint) error {
	logger := gs.logger.WithField("fixture", path)

	m, err := fixture.Load(gs.fs, path)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"imports":   len(m.ImportedFunctions),
		"functions": len(m.Functions),
	}).Debug("loaded fixture")

	start := time.Now()
	results, err := flatir.CompileModule(cmd.Context(), m, flatir.WithParallelism(gs.config.Parallelism))
	if err != nil {
		return err
	}

	var operations int
	for _, r := range results {
		operations += len(r.Operations)
	}
	logger.WithFields(logrus.Fields{
		"functions":  len(results),
		"operations": operations,
		"elapsed":    time.Since(start),
	}).Info("lowered module")

	selected := make(map[uint32]bool, len(functions))
	for _, idx := range functions {
		if idx < uint(len(m.ImportedFunctions)) || idx >= uint(len(m.ImportedFunctions)+len(results)) {
			return fmt.Errorf("function %d is not defined in %s", idx, path)
		}
		selected[uint32(idx)] = true
	}

	p := newPrinter(gs.stdOut, !gs.config.NoColor && gs.stdOutTTY)
	first := true
	for i, r := range results {
		funcIndex := uint32(len(m.ImportedFunctions) + i)
		if len(selected) > 0 && !selected[funcIndex] {
			continue
		}
		if !first {
			if _, err = fmt.Fprintln(gs.stdOut); err != nil {
				return err
			}
		}
		first = false
		if err = p.printFunction(funcIndex, r); err != nil {
			return err
		}
	}
	return nil
}

// printer writes lowered functions in the layout of flatir.Disassemble, colored by operation category.
type printer struct {
	w io.Writer

	header, label, control, exception, wasm *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:         w,
		header:    color.New(color.Bold),
		label:     color.New(color.FgCyan),
		control:   color.New(color.FgYellow),
		exception: color.New(color.FgMagenta),
		wasm:      color.New(color.Reset),
	}
	for _, c := range []*color.Color{p.header, p.label, p.control, p.exception, p.wasm} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) printFunction(funcIndex uint32, r *flatir.CompilationResult) error {
	if _, err := p.header.Fprintf(p.w, "function[%d] %s:\n", funcIndex, r.Signature); err != nil {
		return err
	}
	for _, op := range r.Operations {
		var err error
		if op.Kind == flatir.OperationKindLabel {
			_, err = p.label.Fprintln(p.w, op.String())
		} else {
			_, err = p.colorOf(op.Kind).Fprintf(p.w, "\t%s\n", op)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) colorOf(k flatir.OperationKind) *color.Color {
	switch k {
	case flatir.OperationKindWasm:
		return p.wasm
	case flatir.OperationKindTryCatchBlock,
		flatir.OperationKindCatchStart,
		flatir.OperationKindCatchCompareTag,
		flatir.OperationKindCatchUnboxParams,
		flatir.OperationKindCatchRegisterException,
		flatir.OperationKindCatchEnd:
		return p.exception
	default:
		return p.control
	}
}
