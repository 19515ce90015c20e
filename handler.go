package karou

// EventHandler is a registered onClick body. closure is the scope that was
// active at registration; it is shared, not copied, so the handler sees
// bindings made there after it was registered.
type EventHandler struct {
	elementID string
	body      *BlockStatement
	closure   *Environment
}

func (h *EventHandler) Call(interpreter *Interpreter) error {
	return interpreter.execBlock(h.body, NewEnvironment(h.closure))
}

func (h *EventHandler) String() string {
	return `<onClick "` + h.elementID + `">`
}
