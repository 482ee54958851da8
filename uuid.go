package collections

import (
	"github.com/google/uuid"
)

// UUID identifies a container or a harness run in log records and reports.
type UUID uuid.UUID

// NilUUID is the zero UUID.
var NilUUID UUID

// NewUUID returns a random (version 4) UUID. Reading the random source is retried a few
// times before giving up with a panic.
func NewUUID() UUID {
	const attempts = 3
	var err error
	for range attempts {
		var u uuid.UUID
		if u, err = uuid.NewRandom(); err == nil {
			return UUID(u)
		}
	}
	panic(err)
}

// ParseUUID accepts the forms understood by uuid.Parse.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return NilUUID, err
	}
	return UUID(u), nil
}

func (id UUID) IsNil() bool {
	return id == NilUUID
}

func (id UUID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText lets UUIDs appear as strings in JSON reports.
func (id UUID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

func (id *UUID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}
