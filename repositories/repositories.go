package repositories

// Repositories struct holds all repository interfaces
type Repositories struct {
	Audit AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		Audit: NewAuditRepository(DefaultAuditCapacity),
	}
}
