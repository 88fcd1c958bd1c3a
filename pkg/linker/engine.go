package linker

// Engine is the external link engine. The driver's ordering and
// configuration logic only ever talks to this surface, so it can be
// exercised against a fake. Implementations must not retain the config
// or input values beyond the call that delivered them.
type Engine interface {
	Configure(cfg LinkConfig) error
	SetOutput(path string) error
	AddObject(path string) error
	AddNameSpec(name string) error
	Link() error
}
