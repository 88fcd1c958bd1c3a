package linker

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/xyproto/env/v2"
	"golang.org/x/sys/unix"
)

// ExecEngine satisfies Engine by assembling a GNU-ld compatible argument
// list and running the system linker as an external process. The binary
// defaults to ld and can be overridden with MLD_EXTLD.
//
// Inputs are probed as they are registered so that a bad path or a file
// that is neither a relocatable object nor an archive fails before any
// process is started.
type ExecEngine struct {
	ld         string
	flags      []string
	inputs     []string
	output     string
	configured bool
}

func NewExecEngine() *ExecEngine {
	return &ExecEngine{ld: env.Str("MLD_EXTLD", "ld")}
}

func (e *ExecEngine) Configure(cfg LinkConfig) error {
	flags := make([]string, 0, 8)

	if cfg.Kind == KindShared {
		// soname only means something for shared output
		flags = append(flags, "--shared", "--soname", cfg.SOName)
	}
	if cfg.Bsymbolic {
		flags = append(flags, "-Bsymbolic")
	}
	if cfg.SysRoot != "" {
		flags = append(flags, "--sysroot="+cfg.SysRoot)
	}
	if cfg.DynamicLinker != "" {
		flags = append(flags, "--dynamic-linker", cfg.DynamicLinker)
	}
	for _, dir := range cfg.SearchDirs {
		// "=/..." entries stay verbatim; ld resolves them against the
		// sysroot itself
		flags = append(flags, "-L"+dir)
	}
	for _, sym := range cfg.WrapSymbols {
		flags = append(flags, "--wrap="+sym)
	}
	for _, sym := range cfg.PortableSymbols {
		flags = append(flags, fmt.Sprintf("--defsym=%s_portable=%s", sym, sym))
	}

	e.flags = flags
	e.configured = true
	return nil
}

func (e *ExecEngine) SetOutput(path string) error {
	dir := filepath.Dir(path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("%s: %v", dir, err)
	}
	e.output = path
	return nil
}

func (e *ExecEngine) AddObject(path string) error {
	if strings.HasPrefix(path, "-") {
		return fmt.Errorf("disallowed %q", path)
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return err
	}

	file, err := NewFile(path)
	if err != nil {
		return err
	}
	switch GetFileType(file.Contents) {
	case FileTypeObject, FileTypeArchive:
	default:
		return fmt.Errorf("not an object or archive file")
	}

	e.inputs = append(e.inputs, path)
	return nil
}

func (e *ExecEngine) AddNameSpec(name string) error {
	if name == "" || strings.HasPrefix(name, "-") {
		return fmt.Errorf("disallowed namespec %q", name)
	}
	e.inputs = append(e.inputs, "-l"+name)
	return nil
}

func (e *ExecEngine) Link() error {
	if !e.configured || e.output == "" {
		return fmt.Errorf("engine is not configured")
	}

	argv := append([]string{"-o", e.output}, e.flags...)
	argv = append(argv, e.inputs...)

	cmd := exec.Command(e.ld, argv...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// the linker ran and rejected the link; its stderr is the
			// diagnostic
			return fmt.Errorf("%s", strings.TrimSpace(stderr.String()))
		}
		return fmt.Errorf("failed to run %s: %v", e.ld, err)
	}

	return nil
}
