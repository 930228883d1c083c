package script

import "fmt"

// Op identifies a script command.
type Op int

const (
	OpAdd        Op = iota // A > B
	OpGet                  // A ?
	OpGetReverse           // ? A
	OpReverse              // REV A
	OpRemove               // DEL A
	OpRules                // RULES
	OpClear                // CLEAR
)

var opNames = [...]string{
	OpAdd:        "add",
	OpGet:        "get",
	OpGetReverse: "getreverse",
	OpReverse:    "reverse",
	OpRemove:     "remove",
	OpRules:      "rules",
	OpClear:      "clear",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is a single parsed script command.
type Command struct {
	Op Op
	// Args holds the phone numbers in source order: two for OpAdd, none for
	// OpRules and OpClear, one otherwise.
	Args []string
	// Pos is the position of the command's first token.
	Pos Position
}

// Error is a script failure located at a token.
type Error struct {
	Pos Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
