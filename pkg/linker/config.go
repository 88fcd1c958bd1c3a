package linker

type OutputKind uint8

const (
	KindExecutable OutputKind = iota
	KindShared
)

// LinkConfig is the full configuration handed to the engine. It is built
// once per invocation and never written to afterwards; the engine borrows
// it only for the duration of Configure.
type LinkConfig struct {
	SOName          string
	SysRoot         string
	DynamicLinker   string
	WrapSymbols     []string
	PortableSymbols []string
	SearchDirs      []string
	Kind            OutputKind
	Bsymbolic       bool
}

// The "=" prefix makes the engine resolve these against the sysroot.
var defaultSearchDirs = []string{"=/lib", "=/usr/lib"}

// BuildConfig translates parsed options into a LinkConfig. The soname
// falls back to the resolved output path; wrap and portable symbols keep
// user order and duplicates (de-duplication is the engine's business);
// user search directories come first, the two fixed defaults strictly
// last. Pure: the same args and output always yield an identical config.
func BuildConfig(args *ContextArgs, output string) LinkConfig {
	cfg := LinkConfig{
		SOName:        args.SOName,
		SysRoot:       args.SysRoot,
		DynamicLinker: args.DynamicLinker,
		Bsymbolic:     args.Bsymbolic,
	}

	if cfg.SOName == "" {
		cfg.SOName = output
	}

	cfg.WrapSymbols = append(cfg.WrapSymbols, args.WrapSymbols...)
	cfg.PortableSymbols = append(cfg.PortableSymbols, args.PortableSymbols...)

	cfg.SearchDirs = append(cfg.SearchDirs, args.SearchDirs...)
	cfg.SearchDirs = append(cfg.SearchDirs, defaultSearchDirs...)

	if args.Shared {
		cfg.Kind = KindShared
	}

	return cfg
}
