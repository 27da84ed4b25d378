package file

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator implements usecase.IDGenerator. Each import run gets one ID,
// attached as batch_id to its log lines and returned in the ImportResult, so
// runs sort by start time.
type ULIDGenerator struct{}

// NewULIDGenerator returns a generator for import batch IDs.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a fresh 26 character batch ID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
