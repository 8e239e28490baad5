package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/docfields/docfields"
	"github.com/docfields/docfields/spec"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		cfg.Types.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: types requires a spec file argument", cli.ErrUsage)
	}
	set, err := spec.LoadFile(args[0])
	if err != nil {
		return err
	}
	descs, err := set.Descriptors()
	if err != nil {
		return err
	}
	for _, arg := range payloadArgs(args[1:]) {
		d, fmat, err := readPayload(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		h, err := docfields.NewHandler(d, fmat.MediaType(), descs)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		for _, desc := range descs {
			if desc.Ignored() {
				continue
			}
			t, err := h.ResolveFieldType(desc)
			if err != nil {
				return fmt.Errorf("error resolving %s in %s: %w", desc.Path(), arg, err)
			}
			fmt.Fprintf(cc.Out, "%s: %s\n", desc.Path(), t)
		}
	}
	return nil
}
