// Package action carries requests from a component up to the app.
package action

// Action is a request raised by a component, named for logging.
type Action interface {
	ActionType() string
}

// Msg wraps an Action with the name of the component that raised it.
type Msg struct {
	Source string // "search", "charts", "similar", "help"
	Action Action
}
