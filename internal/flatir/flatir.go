// Package flatir lowers structured WebAssembly function bodies into flat, label-addressed operations.
//
// Lowering verifies the operand types of every reachable instruction, adjusts the operand stack on
// branches with OperationKindDropKeep, desugars tail calls into a call followed by a return, and
// encodes try_table into regions declared by OperationKindTryCatchBlock and handlers dispatching on tags.
// The result is meant to be translated as-is by a code generator.
package flatir
