package linker

// ContextArgs holds every option value a single invocation parses out of
// argv. All state lives here; nothing is accumulated in globals.
type ContextArgs struct {
	Output          string
	SOName          string
	SysRoot         string
	DynamicLinker   string
	Shared          bool
	Bsymbolic       bool
	WrapSymbols     []string
	PortableSymbols []string
	SearchDirs      []string
	Objects         []InputItem
	NameSpecs       []InputItem
}

type Context struct {
	Args ContextArgs
}

func NewContext() *Context {
	return &Context{
		Args: ContextArgs{
			Bsymbolic: true,
		},
	}
}
