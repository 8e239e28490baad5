package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields/encode"
	"github.com/docfields/docfields/fieldpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a field path", cli.ErrUsage)
	}
	p, err := fieldpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for i, arg := range payloadArgs(args[1:]) {
		root, err := getPayloadFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		locs := root.Locate(p)
		if len(locs) == 0 {
			return fmt.Errorf("%s does not identify a section of %s", p, arg)
		}
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
		for j, n := range locs {
			if j > 0 {
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
			if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}
