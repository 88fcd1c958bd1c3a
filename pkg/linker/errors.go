package linker

import "errors"

// One sentinel per failure class. Callers match with errors.Is; the
// wrapped text carries the offending path or flag.
var (
	ErrUsage           = errors.New("usage error")
	ErrConfig          = errors.New("cannot configure the linker")
	ErrOutputResolve   = errors.New("cannot determine the output file")
	ErrFileOpen        = errors.New("cannot open the output file")
	ErrInputResolution = errors.New("cannot resolve input")
	ErrLink            = errors.New("link failed")
)
