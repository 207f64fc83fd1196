// SPDX-License-Identifier: Unlicense OR MIT

package key

// Command is the meaning of a key press independent of the key
// bindings. Commands are delivered to widgets as events.
type Command uint8

const (
	CommandNone Command = iota
	// Escape closes pop-ups and cancels operations.
	Escape
	// Activate triggers the focused widget, as by a click.
	Activate
	// Enter confirms an entry.
	Enter
	// Tab moves navigation focus forward, or backward with shift.
	Tab
	Left
	Right
	Up
	Down
	Home
	End
	PageUp
	PageDown
	DelBack
	Delete
	SelectAll
	Deselect
	Cut
	Copy
	Paste
	Undo
	Redo
)

// IsArrow reports whether c moves in a direction.
func (c Command) IsArrow() bool {
	return c >= Left && c <= Down
}

func (Command) ImplementsEvent() {}

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case Escape:
		return "Escape"
	case Activate:
		return "Activate"
	case Enter:
		return "Enter"
	case Tab:
		return "Tab"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Home:
		return "Home"
	case End:
		return "End"
	case PageUp:
		return "PageUp"
	case PageDown:
		return "PageDown"
	case DelBack:
		return "DelBack"
	case Delete:
		return "Delete"
	case SelectAll:
		return "SelectAll"
	case Deselect:
		return "Deselect"
	case Cut:
		return "Cut"
	case Copy:
		return "Copy"
	case Paste:
		return "Paste"
	case Undo:
		return "Undo"
	case Redo:
		return "Redo"
	default:
		panic("invalid Command")
	}
}

type binding struct {
	mods Modifiers
	name Name
}

// Shortcuts maps key presses to commands.
type Shortcuts struct {
	m map[binding]Command
}

// DefaultShortcuts returns the standard bindings. Shift does not
// change the unmodified bindings.
func DefaultShortcuts() *Shortcuts {
	s := &Shortcuts{m: make(map[binding]Command)}
	for name, c := range map[Name]Command{
		NameEscape:         Escape,
		NameSpace:          Activate,
		NameReturn:         Enter,
		NameEnter:          Enter,
		NameTab:            Tab,
		NameLeftArrow:      Left,
		NameRightArrow:     Right,
		NameUpArrow:        Up,
		NameDownArrow:      Down,
		NameHome:           Home,
		NameEnd:            End,
		NamePageUp:         PageUp,
		NamePageDown:       PageDown,
		NameDeleteBackward: DelBack,
		NameDeleteForward:  Delete,
	} {
		s.Bind(0, name, c)
		s.Bind(ModShift, name, c)
	}
	for name, c := range map[Name]Command{
		"A": SelectAll,
		"X": Cut,
		"C": Copy,
		"V": Paste,
		"Z": Undo,
		"Y": Redo,
	} {
		s.Bind(ModShortcut, name, c)
	}
	s.Bind(ModShortcut|ModShift, "A", Deselect)
	s.Bind(ModShortcut|ModShift, "Z", Redo)
	return s
}

// Bind maps the press of name with exactly mods to c. Binding
// CommandNone removes the binding.
func (s *Shortcuts) Bind(mods Modifiers, name Name, c Command) {
	if s.m == nil {
		s.m = make(map[binding]Command)
	}
	b := binding{mods: mods, name: name}
	if c == CommandNone {
		delete(s.m, b)
		return
	}
	s.m[b] = c
}

// Get returns the command bound to e, if any. Releases map to no
// command.
func (s *Shortcuts) Get(e Event) (Command, bool) {
	if e.State != Press {
		return CommandNone, false
	}
	c, ok := s.m[binding{mods: e.Modifiers, name: e.Name}]
	return c, ok
}
