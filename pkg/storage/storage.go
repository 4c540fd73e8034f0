package storage

// ApiStore defines the complete set of non-privileged operations needed by the
// API. Components should depend on the granular interfaces (AccountStore,
// CategoryStore, TransactionStore) instead of this one where they can.
type ApiStore interface {
	AccountStore
	CategoryStore
	TransactionStore
}

// Storage defines the root interface for the entire data layer. Only wiring
// code (cmd/) should reference it directly.
type Storage interface {
	ApiStore
	AuditStore
}
