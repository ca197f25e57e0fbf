package core

// Action is a semantic intent decoded from a key press.
type Action uint8

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionSelect         // Space: flip, drop, tap
	ActionConfirm        // Enter
	ActionBack           // B, Esc
	ActionRestart        // R
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P
	ActionChoice1        // 1
	ActionChoice2        // 2
	ActionChoice3        // 3
	ActionChoice4        // 4
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSelect:  "Select",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionChoice1: "Choice1",
	ActionChoice2: "Choice2",
	ActionChoice3: "Choice3",
	ActionChoice4: "Choice4",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions triggered during one tick.
type InputFrame struct {
	mask uint32
}

// NewInputFrame returns a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.mask |= 1 << a
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.mask&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.mask == 0
}

// Clear forgets every action.
func (f *InputFrame) Clear() {
	f.mask = 0
}

// Choice returns the zero-based index of the numbered choice key pressed,
// or -1 when none was.
func (f InputFrame) Choice() int {
	for i, a := range []Action{ActionChoice1, ActionChoice2, ActionChoice3, ActionChoice4} {
		if f.Has(a) {
			return i
		}
	}
	return -1
}
