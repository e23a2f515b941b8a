package store

// Store is an interface for managing teams and everything scoped under
// them. Every method takes the db.Handler to run on so callers can compose
// several calls into one transaction.
type Store interface {
	TeamStore
	MemberStore
	JoinRequestStore
	EventStore
	ResponseStore
	MemoStore
}
