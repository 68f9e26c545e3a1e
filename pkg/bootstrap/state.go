package bootstrap

// State is a position in the bootstrap state machine.
type State int

const (
	Unconnected State = iota
	AdminConnected
	DatabaseEnsured
	SchemaReady
	Failed
)

// Step names the operation a bootstrap was performing. It is reported in
// errors and log records.
type Step string

const (
	StepConnectAdmin   Step = "connect-admin"
	StepCheckDatabase  Step = "check-database"
	StepCreateDatabase Step = "create-database"
	StepCloseAdmin     Step = "close-admin"
	StepConnectScoped  Step = "connect-scoped"
	StepCreateTable    Step = "create-table"
	StepCloseScoped    Step = "close-scoped"
)

func (s State) String() string {
	switch s {
	case Unconnected:
		return "unconnected"
	case AdminConnected:
		return "admin-connected"
	case DatabaseEnsured:
		return "database-ensured"
	case SchemaReady:
		return "schema-ready"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
