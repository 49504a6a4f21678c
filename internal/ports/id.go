package ports

// IDGenerator produces record identifiers unique across the log's lifetime.
type IDGenerator interface {
	NewID() string
}
