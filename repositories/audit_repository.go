package repositories

import (
	"sync"

	"github.com/blogem/editpilot/models"
)

// DefaultAuditCapacity is the number of records kept by the audit log
const DefaultAuditCapacity = 50

// AuditRepository holds the most recent processed requests, newest first
type AuditRepository interface {
	Create(record models.AuditRecord)
	List() []models.AuditRecord
}

type memoryAuditRepository struct {
	mu       sync.Mutex
	capacity int
	records  []models.AuditRecord
}

// NewAuditRepository creates an in-memory audit log bounded to capacity records.
// A non-positive capacity falls back to DefaultAuditCapacity.
func NewAuditRepository(capacity int) AuditRepository {
	if capacity <= 0 {
		capacity = DefaultAuditCapacity
	}
	return &memoryAuditRepository{
		capacity: capacity,
		records:  make([]models.AuditRecord, 0, capacity+1),
	}
}

// Create inserts a record at the front and evicts the oldest beyond capacity
func (r *memoryAuditRepository) Create(record models.AuditRecord) {
	record = record.Clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, models.AuditRecord{})
	copy(r.records[1:], r.records)
	r.records[0] = record

	if len(r.records) > r.capacity {
		r.records[len(r.records)-1] = models.AuditRecord{}
		r.records = r.records[:r.capacity]
	}
}

// List returns a snapshot of the records, newest first
func (r *memoryAuditRepository) List() []models.AuditRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.AuditRecord, len(r.records))
	for i, record := range r.records {
		out[i] = record.Clone()
	}
	return out
}
