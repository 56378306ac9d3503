package types

type Command string

const (
	EndpointCommand Command = "endpoint"
	CreateCommand   Command = "create"
	ReadCommand     Command = "read"
	UpdateCommand   Command = "update"
	ListCommand     Command = "list"
	DeleteCommand   Command = "delete"
	GroupCommand    Command = "group"
	UnknownCommand  Command = "unknown"
)

func (c Command) String() string {
	switch c {
	case EndpointCommand, CreateCommand, ReadCommand, UpdateCommand,
		ListCommand, DeleteCommand, GroupCommand:
		return string(c)
	default:
		return "unknown"
	}
}

// BindsEntity reports whether the command needs the entity introspected.
func (c Command) BindsEntity() bool {
	switch c {
	case CreateCommand, ReadCommand, UpdateCommand, ListCommand, DeleteCommand:
		return true
	default:
		return false
	}
}

// SingleResource reports whether the route addresses one entity by identifier.
func (c Command) SingleResource() bool {
	switch c {
	case ReadCommand, UpdateCommand, DeleteCommand:
		return true
	default:
		return false
	}
}
