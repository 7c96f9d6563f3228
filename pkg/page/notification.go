package page

// Level is the severity of a Notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Directive asks the client to do something after showing a notification.
type Directive string

const (
	DirectiveNone       Directive = ""
	DirectivePrint      Directive = "print"
	DirectiveReloadForm Directive = "reload-form"
)

// Notification is the toast shown after an action.
type Notification struct {
	Action    Action    `json:"action"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	Directive Directive `json:"directive,omitempty"`
}

func (n Notification) String() string {
	return string(n.Level) + ": " + n.Message
}
