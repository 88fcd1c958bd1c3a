package linker

import "os"

type File struct {
	Name     string
	Contents []byte
}

func NewFile(filename string) (*File, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &File{
		Name:     filename,
		Contents: contents,
	}, nil
}
