package menu

type Action int

const (
	ActionNone Action = iota
	ActionResume
	ActionSave
	ActionQuit
)
