package main

import (
	"os"

	"mld/pkg/linker"
	"mld/pkg/utils"
)

var version string

func main() {
	ctx := linker.NewContext()

	if err := linker.ParseArgs(ctx, version, os.Args[1:]); err != nil {
		utils.Fatal(err)
	}

	output, err := linker.DetermineOutput(ctx.Args.Output, ctx.Args.Objects)
	if err != nil {
		utils.Fatal(err)
	}

	cfg := linker.BuildConfig(&ctx.Args, output)
	plan := linker.MergeInputs(ctx.Args.Objects, ctx.Args.NameSpecs)

	if err := linker.Invoke(linker.NewExecEngine(), cfg, output, plan); err != nil {
		utils.Fatal(err)
	}
}
