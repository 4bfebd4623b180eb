package components

// InteractionState is the pointer or focus status of an element.
type InteractionState int

const (
	InteractionStateDefault InteractionState = iota
	InteractionStateHovered
	InteractionStatePressed
	InteractionStateFocused
	InteractionStateDisabled
)

var interactionStateNames = [...]string{
	InteractionStateDefault:  "default",
	InteractionStateHovered:  "hovered",
	InteractionStatePressed:  "pressed",
	InteractionStateFocused:  "focused",
	InteractionStateDisabled: "disabled",
}

func (s InteractionState) String() string {
	if s < 0 || int(s) >= len(interactionStateNames) {
		return "unknown"
	}
	return interactionStateNames[s]
}

// InteractionStates lists every state in declaration order.
func InteractionStates() []InteractionState {
	return []InteractionState{
		InteractionStateDefault,
		InteractionStateHovered,
		InteractionStatePressed,
		InteractionStateFocused,
		InteractionStateDisabled,
	}
}

// InteractionSource is supplied by the host loop and answers which state an
// element is in right now. Pseudo-state styles registered on a Div (hover,
// active) are resolved through it.
type InteractionSource interface {
	StateOf(id string) InteractionState
}

// InteractionMap is a static InteractionSource keyed by element ID.
type InteractionMap map[string]InteractionState

// StateOf implements InteractionSource.
func (m InteractionMap) StateOf(id string) InteractionState {
	return m[id]
}
