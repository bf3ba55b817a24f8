package routes

var (
	BearerAuth = []map[string][]string{
		{"bearer": {}},
	}
)

type Tag string

const (
	TagAuth     Tag = "auth"
	TagHealth   Tag = "health"
	TagMachines Tag = "machines"
)

func (t Tag) String() string { return string(t) }

func AllTags() []string {
	return []string{
		TagAuth.String(),
		TagHealth.String(),
		TagMachines.String(),
	}
}
