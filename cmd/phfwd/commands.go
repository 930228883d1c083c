package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/phnum"
	"github.com/kumarlokesh/sysd/exercises/phone-forward/internal/script"
)

func runScript(e *env, args []string) error {
	in := e.in
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	it := script.NewInterpreter(e.reg, e.out, e.log)
	n, err := it.Run(in)
	if err != nil {
		return err
	}
	e.log.Info().Int("commands", n).Int("rules", e.reg.Len()).Msg("Script completed")
	return nil
}

func runGet(e *env, args []string) error {
	return printNumbers(e.out, e.reg.Get(args[0]), nil)
}

func runReverse(e *env, args []string) error {
	res, err := e.reg.Reverse(args[0])
	return printNumbers(e.out, res, err)
}

func runGetReverse(e *env, args []string) error {
	res, err := e.reg.GetReverse(args[0])
	return printNumbers(e.out, res, err)
}

func runRules(e *env, _ []string) error {
	for _, r := range e.reg.Rules() {
		if _, err := fmt.Fprintln(e.out, r); err != nil {
			return err
		}
	}
	return nil
}

func runDump(e *env, _ []string) error {
	return e.reg.Dump(e.out)
}

func printNumbers(w io.Writer, res *phnum.Numbers, err error) error {
	if err != nil {
		return err
	}
	defer res.Release()
	for i := 0; i < res.Count(); i++ {
		num, _ := res.At(i)
		if _, err := fmt.Fprintln(w, num); err != nil {
			return err
		}
	}
	return nil
}
