package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for i, arg := range payloadArgs(args) {
		root, err := getPayloadFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		if err := encode.Encode(root, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
