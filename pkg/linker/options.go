package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/xyproto/env/v2"

	"mld/pkg/utils"
)

// ParseArgs fills ctx.Args from argv. Options may be spelled -x or --xx,
// value options accept a separate word, --opt=value, or (for -l/-L/-o) a
// joined value. Each object file and namespec is tagged with the 1-based
// index of the argv slot that introduced it; the counter is shared across
// both kinds so their interleaving survives into the merge.
//
// Extra arguments can be injected through the MLD_FLAGS environment
// variable; they are shell-split and parsed ahead of argv.
func ParseArgs(ctx *Context, version string, args []string) error {
	if extra := env.Str("MLD_FLAGS"); extra != "" {
		words, err := shellquote.Split(extra)
		if err != nil {
			return fmt.Errorf("%w: MLD_FLAGS: %v", ErrUsage, err)
		}
		args = append(words, args...)
	}

	total := len(args)

	var parseErr error
	arg := ""
	readArg := func(name string) bool {
		for _, opt := range utils.AddDashes(name) {
			if args[0] == opt {
				if len(args) == 1 {
					parseErr = fmt.Errorf(
						"%w: option %s: argument missing", ErrUsage, opt)
					return false
				}
				arg = args[1]
				args = args[2:]
				return true
			}

			prefix := opt
			if len(name) > 1 {
				prefix += "="
			}
			if rest, ok := utils.RemovePrefix(args[0], prefix); ok {
				arg = rest
				args = args[1:]
				return true
			}
		}

		return false
	}

	readFlag := func(name string) bool {
		for _, opt := range utils.AddDashes(name) {
			if args[0] == opt {
				args = args[1:]
				return true
			}
		}

		return false
	}

	for len(args) > 0 {
		// 1-based argv slot of the token about to be consumed. Real
		// positions are never 0; the merge relies on that.
		pos := total - len(args) + 1

		if readFlag("help") {
			fmt.Printf("usage: %s [options] file...\n", filepath.Base(os.Args[0]))
			os.Exit(0)
		}

		if readArg("o") || readArg("output") {
			ctx.Args.Output = arg
		} else if readFlag("v") || readFlag("version") {
			fmt.Printf("mld %s\n", version)
			os.Exit(0)
		} else if readArg("l") {
			ctx.Args.NameSpecs = append(ctx.Args.NameSpecs,
				InputItem{Kind: InputNameSpec, Value: arg, Pos: pos})
		} else if readArg("L") {
			ctx.Args.SearchDirs = append(ctx.Args.SearchDirs, arg)
		} else if readArg("soname") {
			ctx.Args.SOName = arg
		} else if readArg("sysroot") {
			ctx.Args.SysRoot = arg
		} else if readArg("dynamic-linker") {
			ctx.Args.DynamicLinker = arg
		} else if readArg("wrap") {
			ctx.Args.WrapSymbols = append(ctx.Args.WrapSymbols, arg)
		} else if readArg("portable") {
			ctx.Args.PortableSymbols = append(ctx.Args.PortableSymbols, arg)
		} else if readFlag("shared") {
			ctx.Args.Shared = true
		} else if readFlag("Bsymbolic") {
			ctx.Args.Bsymbolic = true
		} else if readFlag("no-Bsymbolic") {
			ctx.Args.Bsymbolic = false
		} else {
			if parseErr != nil {
				return parseErr
			}
			if strings.HasPrefix(args[0], "-") {
				return fmt.Errorf(
					"%w: unknown command line option: %s", ErrUsage, args[0])
			}
			ctx.Args.Objects = append(ctx.Args.Objects,
				InputItem{Kind: InputObject, Value: args[0], Pos: pos})
			args = args[1:]
		}
	}

	if len(ctx.Args.Objects) == 0 {
		return fmt.Errorf("%w: no input files", ErrUsage)
	}

	return nil
}
