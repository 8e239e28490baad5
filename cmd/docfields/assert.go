package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/eval"
)

func assert(cfg *AssertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Assert.Parse(cc, args)
	if err != nil {
		cfg.Assert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: assert requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	failed := false
	for _, arg := range payloadArgs(args[1:]) {
		root, err := getPayloadFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		ok, err := eval.Assert(root, src)
		if err != nil {
			return fmt.Errorf("error evaluating against %s: %w", arg, err)
		}
		if !ok {
			failed = true
			fmt.Fprintf(cc.Out, "%s: assertion failed\n", arg)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
