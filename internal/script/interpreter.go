// Package script runs command scripts against a forward.Registry.
//
// A script is a sequence of whitespace-separated commands:
//
//	A > B    add the rule A -> B
//	A ?      print Get(A)
//	? A      print GetReverse(A)
//	REV A    print Reverse(A)
//	DEL A    remove every rule under prefix A
//	RULES    print every rule as "A > B"
//	CLEAR    drop every rule
//
// Text between a pair of "$$" markers is a comment. Each printed number goes
// on its own line. Execution stops at the first error, which carries the
// line and column of the failing command.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/forward"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
)

// Interpreter executes commands against a registry and writes results to out.
type Interpreter struct {
	reg *forward.Registry
	out *bufio.Writer
	log zerolog.Logger
}

// NewInterpreter creates an interpreter for reg writing results to out.
func NewInterpreter(reg *forward.Registry, out io.Writer, logger zerolog.Logger) *Interpreter {
	return &Interpreter{
		reg: reg,
		out: bufio.NewWriter(out),
		log: logger,
	}
}

// Run reads the whole script from r and executes it. It returns the number
// of commands executed successfully.
func (it *Interpreter) Run(r io.Reader) (int, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("failed to read script: %w", err)
	}
	return it.RunString(string(src))
}

// RunString executes the script src.
func (it *Interpreter) RunString(src string) (int, error) {
	p := NewParser(NewLexer(src))
	executed := 0
	for {
		cmd, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			it.log.Error().Err(err).Int("executed", executed).Msg("Script parse failed")
			return executed, errors.Join(err, it.out.Flush())
		}
		if err := it.Exec(cmd); err != nil {
			it.log.Error().Err(err).Int("executed", executed).Msg("Script command failed")
			return executed, errors.Join(err, it.out.Flush())
		}
		executed++
	}
	if err := it.out.Flush(); err != nil {
		return executed, fmt.Errorf("failed to write output: %w", err)
	}
	it.log.Debug().Int("executed", executed).Msg("Script finished")
	return executed, nil
}

// Exec executes a single command. Output is buffered until Run returns or
// Flush is called.
func (it *Interpreter) Exec(cmd Command) error {
	it.log.Debug().Stringer("op", cmd.Op).Strs("args", cmd.Args).Stringer("pos", cmd.Pos).Msg("Executing")

	var (
		res *phnum.Numbers
		err error
	)
	switch cmd.Op {
	case OpAdd:
		err = it.reg.Add(cmd.Args[0], cmd.Args[1])
	case OpGet:
		res = it.reg.Get(cmd.Args[0])
	case OpGetReverse:
		res, err = it.reg.GetReverse(cmd.Args[0])
	case OpReverse:
		res, err = it.reg.Reverse(cmd.Args[0])
	case OpRemove:
		it.reg.Remove(cmd.Args[0])
	case OpRules:
		for _, rule := range it.reg.Rules() {
			if _, err := fmt.Fprintln(it.out, rule); err != nil {
				return &Error{Pos: cmd.Pos, Err: err}
			}
		}
	case OpClear:
		it.reg.Clear()
	default:
		err = fmt.Errorf("unknown command %s", cmd.Op)
	}
	if err != nil {
		return &Error{Pos: cmd.Pos, Err: fmt.Errorf("%s: %w", cmd.Op, err)}
	}
	if res == nil {
		return nil
	}
	defer res.Release()
	for _, num := range res.Values() {
		if _, err := fmt.Fprintln(it.out, num); err != nil {
			return &Error{Pos: cmd.Pos, Err: err}
		}
	}
	return nil
}

// Flush writes any buffered output.
func (it *Interpreter) Flush() error {
	return it.out.Flush()
}
