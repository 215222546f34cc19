package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flatwasm/flatwasm/internal/wasm"
)

func getOpcodesCmd(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes [substring]",
		Short: "lists the instructions accepted in fixture bodies",
		Long: `Lists the encoded opcode and the text name of every instruction accepted in fixture
bodies, optionally only those whose name contains the given substring.

Prefixed opcodes are printed as prefix<<16 | sub-opcode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var filter string
			if len(args) == 1 {
				filter = args[0]
			}
			for _, op := range wasm.Opcodes() {
				name := wasm.InstructionName(op)
				if !strings.Contains(name, filter) {
					continue
				}
				if _, err := fmt.Fprintf(gs.stdOut, "0x%06x %s\n", uint32(op), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
