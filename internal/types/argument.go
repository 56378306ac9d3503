package types

// Argument is one parsed invocation. Field names follow the long flag names
// (--data-context binds DataContext) so descriptors can address them.
type Argument struct {
	Command Command

	Name        string
	Entity      string
	Method      string
	Url         string
	Group       string
	DataContext string
	Permission  string
	Namespace   string
	Output      string

	// Computed after binding, never read from flags.
	EntityName     string
	EntityPlural   string
	EntityFullName string
	Imports        []string
}

func (a *Argument) HasEntity() bool {
	return a.EntityName != ""
}
