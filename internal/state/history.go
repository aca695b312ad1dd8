package state

// History holds the committed display list and the redo stack. A command is
// in at most one of the two at any time.
type History struct {
	displayList []DisplayCommand
	redoStack   []DisplayCommand
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push appends cmd to the display list and discards the redo stack.
func (h *History) Push(cmd DisplayCommand) {
	h.displayList = append(h.displayList, cmd)
	h.redoStack = nil
}

// Undo moves the newest command onto the redo stack. It returns false when
// there is nothing to undo.
func (h *History) Undo() (DisplayCommand, bool) {
	if len(h.displayList) == 0 {
		return nil, false
	}
	last := len(h.displayList) - 1
	cmd := h.displayList[last]
	h.displayList[last] = nil
	h.displayList = h.displayList[:last]
	h.redoStack = append(h.redoStack, cmd)
	return cmd, true
}

// Redo moves the most recently undone command back onto the display list.
// It returns false when there is nothing to redo.
func (h *History) Redo() (DisplayCommand, bool) {
	if len(h.redoStack) == 0 {
		return nil, false
	}
	last := len(h.redoStack) - 1
	cmd := h.redoStack[last]
	h.redoStack[last] = nil
	h.redoStack = h.redoStack[:last]
	h.displayList = append(h.displayList, cmd)
	return cmd, true
}

// Clear empties both stacks.
func (h *History) Clear() {
	h.displayList = nil
	h.redoStack = nil
}

func (h *History) CanUndo() bool { return len(h.displayList) > 0 }

func (h *History) CanRedo() bool { return len(h.redoStack) > 0 }

// Len returns the number of committed commands.
func (h *History) Len() int { return len(h.displayList) }

// Commands returns a copy of the display list, oldest first.
func (h *History) Commands() []DisplayCommand {
	out := make([]DisplayCommand, len(h.displayList))
	copy(out, h.displayList)
	return out
}

// RedoCommands returns a copy of the redo stack, bottom first.
func (h *History) RedoCommands() []DisplayCommand {
	out := make([]DisplayCommand, len(h.redoStack))
	copy(out, h.redoStack)
	return out
}
