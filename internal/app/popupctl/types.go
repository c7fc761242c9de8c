package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Confirm
	TextInput
	MemberFilter
	Stats
	Error
)

// Priority defines which popup takes precedence (highest priority first).
var Priority = []Type{
	Error,
	Help,
	Confirm,
	TextInput,
	MemberFilter,
	Stats,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Stats,
	MemberFilter,
	TextInput,
	Confirm,
	Help,
	Error,
}

// InputMode represents the type of text input being collected.
type InputMode int

const (
	// InputNone indicates no text input is active.
	InputNone InputMode = iota
	// InputImportPath asks for the backup file to import.
	InputImportPath
)
