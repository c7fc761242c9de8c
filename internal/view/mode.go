package view

// Mode is the presentation used for the collection.
type Mode int

const (
	ModeList Mode = iota
	ModeCards
	ModeGrid
)

var modeNames = []string{"list", "cards", "grid"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return modeNames[0]
	}
	return modeNames[m]
}

// Next cycles list → cards → grid → list.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(modeNames))
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeList, false
}
