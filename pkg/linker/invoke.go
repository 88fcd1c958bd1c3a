package linker

import "fmt"

// Invoke drives one link attempt: configure, set the output, register
// every planned input in order, then link. Each step is gated on the one
// before it; the first failure is returned with the offending item and
// nothing further is attempted.
func Invoke(e Engine, cfg LinkConfig, output string, plan []InputItem) error {
	if err := e.Configure(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	if err := e.SetOutput(output); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFileOpen, output, err)
	}

	for _, item := range plan {
		switch item.Kind {
		case InputObject:
			if err := e.AddObject(item.Value); err != nil {
				return fmt.Errorf("%w: %s: %v",
					ErrInputResolution, item.Value, err)
			}
		case InputNameSpec:
			if err := e.AddNameSpec(item.Value); err != nil {
				return fmt.Errorf("%w: -l%s: %v",
					ErrInputResolution, item.Value, err)
			}
		}
	}

	if err := e.Link(); err != nil {
		return fmt.Errorf("%w: %v", ErrLink, err)
	}

	return nil
}
