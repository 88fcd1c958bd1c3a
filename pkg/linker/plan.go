package linker

type InputKind uint8

const (
	InputObject InputKind = iota
	InputNameSpec
)

// InputItem is one link input together with the 1-based argv position it
// was parsed at. Position 0 never names a real item; the merge uses it as
// the "no more items of this kind" sentinel.
type InputItem struct {
	Kind  InputKind
	Value string
	Pos   int
}

// MergeInputs interleaves positional object files and -l namespecs back
// into command-line order. Both lists arrive sorted by position because
// the parser appends as it consumes argv, so a two-cursor merge on the
// position tag reconstructs the original sequence.
func MergeInputs(objects, specs []InputItem) []InputItem {
	plan := make([]InputItem, 0, len(objects)+len(specs))

	oi, si := 0, 0
	for {
		objPos, specPos := 0, 0
		if oi < len(objects) {
			objPos = objects[oi].Pos
		}
		if si < len(specs) {
			specPos = specs[si].Pos
		}

		if objPos != 0 && (specPos == 0 || objPos < specPos) {
			plan = append(plan, objects[oi])
			oi++
		} else if specPos != 0 && (objPos == 0 || specPos < objPos) {
			plan = append(plan, specs[si])
			si++
		} else {
			// Both heads report 0. Either both lists are exhausted, or a
			// stray zero position slipped in; stop rather than spin.
			break
		}
	}

	return plan
}
