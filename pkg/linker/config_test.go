package linker

import (
	"reflect"
	"testing"
)

func TestBuildConfigSONameDefault(t *testing.T) {
	tests := []struct {
		name   string
		soname string
		output string
		want   string
	}{
		{name: "defaults to output", output: "libfoo.so", want: "libfoo.so"},
		{name: "explicit wins", soname: "bar", output: "libfoo.so", want: "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := ContextArgs{SOName: tt.soname, Bsymbolic: true}
			cfg := BuildConfig(&args, tt.output)
			if cfg.SOName != tt.want {
				t.Errorf("SOName = %q, want %q", cfg.SOName, tt.want)
			}
		})
	}
}

func TestBuildConfigSearchDirOrder(t *testing.T) {
	args := ContextArgs{SearchDirs: []string{"/a", "/b"}}
	cfg := BuildConfig(&args, "a.out")

	want := []string{"/a", "/b", "=/lib", "=/usr/lib"}
	if !reflect.DeepEqual(cfg.SearchDirs, want) {
		t.Errorf("SearchDirs = %v, want %v", cfg.SearchDirs, want)
	}
}

func TestBuildConfigFieldCopies(t *testing.T) {
	args := ContextArgs{
		SysRoot:         "/sr",
		DynamicLinker:   "/lib/ld.so",
		Shared:          true,
		Bsymbolic:       false,
		WrapSymbols:     []string{"malloc", "free", "malloc"},
		PortableSymbols: []string{"open"},
	}
	cfg := BuildConfig(&args, "out")

	if cfg.SysRoot != "/sr" || cfg.DynamicLinker != "/lib/ld.so" {
		t.Errorf("SysRoot/DynamicLinker = %q/%q", cfg.SysRoot, cfg.DynamicLinker)
	}
	if cfg.Kind != KindShared {
		t.Errorf("Kind = %v, want KindShared", cfg.Kind)
	}
	if cfg.Bsymbolic {
		t.Error("Bsymbolic = true, want false")
	}
	if !reflect.DeepEqual(cfg.WrapSymbols, []string{"malloc", "free", "malloc"}) {
		t.Errorf("WrapSymbols = %v", cfg.WrapSymbols)
	}
	if !reflect.DeepEqual(cfg.PortableSymbols, []string{"open"}) {
		t.Errorf("PortableSymbols = %v", cfg.PortableSymbols)
	}
}

func TestBuildConfigIdempotent(t *testing.T) {
	args := ContextArgs{
		SOName:      "lib.so",
		SysRoot:     "/sr",
		Shared:      true,
		Bsymbolic:   true,
		WrapSymbols: []string{"a", "b"},
		SearchDirs:  []string{"/x"},
	}

	first := BuildConfig(&args, "out")
	second := BuildConfig(&args, "out")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("two builds differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildConfigDoesNotAliasArgs(t *testing.T) {
	args := ContextArgs{
		WrapSymbols: []string{"malloc"},
		SearchDirs:  []string{"/a"},
	}
	cfg := BuildConfig(&args, "out")

	args.WrapSymbols[0] = "changed"
	args.SearchDirs[0] = "/changed"

	if cfg.WrapSymbols[0] != "malloc" {
		t.Errorf("WrapSymbols aliases the parsed options: %v", cfg.WrapSymbols)
	}
	if cfg.SearchDirs[0] != "/a" {
		t.Errorf("SearchDirs aliases the parsed options: %v", cfg.SearchDirs)
	}
}
