package linker

import (
	"bytes"
	"debug/elf"

	"mld/pkg/utils"
)

type FileType uint8

const (
	FileTypeUnknown FileType = iota
	FileTypeEmpty
	FileTypeObject
	FileTypeArchive
)

func CheckMagic(contents []byte) bool {
	return bytes.HasPrefix(contents, []byte("\177ELF"))
}

// GetFileType sniffs just enough of the contents to tell a relocatable
// ELF object from an ar archive. Anything deeper (sections, symbols,
// members) is the engine's job.
func GetFileType(contents []byte) FileType {
	if len(contents) == 0 {
		return FileTypeEmpty
	}

	if CheckMagic(contents) && len(contents) >= 18 {
		switch elf.Type(utils.Read[uint16](contents[16:])) {
		case elf.ET_REL:
			return FileTypeObject
		}
	}

	if bytes.HasPrefix(contents, []byte("!<arch>\n")) {
		return FileTypeArchive
	}

	return FileTypeUnknown
}
