package linker

import (
	"fmt"
	"path/filepath"

	"mld/pkg/utils"
)

const defaultOutput = "a.out"

// DetermineOutput picks the output path once, before configuration.
// An explicit -o value wins unchanged. With several input files and no -o
// the fixed default in the working directory is used, with a warning.
// With exactly one input the default lands next to that input. The caller
// must have rejected empty input sets already.
func DetermineOutput(output string, objects []InputItem) (string, error) {
	utils.Assert(len(objects) > 0)

	if output != "" {
		return output, nil
	}

	if len(objects) > 1 {
		utils.Warn("use %s for the output file", defaultOutput)
		return defaultOutput, nil
	}

	abs, err := filepath.Abs(objects[0].Value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v",
			ErrOutputResolve, objects[0].Value, err)
	}

	return filepath.Join(filepath.Dir(abs), defaultOutput), nil
}
