package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
)

func Fatal(v any) {
	fmt.Fprintf(os.Stderr, "mld: %s: %v\n", color.Danger.Sprint("fatal"), v)
	os.Exit(1)
}

func Warn(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "mld: %s: %s\n",
		color.Warn.Sprint("warning"), fmt.Sprintf(format, a...))
}

func MustNo(err error) {
	if err != nil {
		Fatal(err)
	}
}

func Read[T any](data []byte) (val T) {
	reader := bytes.NewReader(data)
	err := binary.Read(reader, binary.LittleEndian, &val)

	MustNo(err)

	return val
}

func Assert(condition bool) {
	if !condition {
		Fatal("assert failed")
	}
}

func RemovePrefix(s, prefix string) (string, bool) {
	if strings.HasPrefix(s, prefix) {
		return strings.TrimPrefix(s, prefix), true
	}
	return s, false
}

// o => -o
// soname => -soname, --soname
func AddDashes(option string) []string {
	if len(option) == 1 {
		return []string{"-" + option}
	}
	return []string{"-" + option, "--" + option}
}
