package id

import (
	"github.com/google/uuid"

	"github.com/quentel/tally/internal/ports"
)

type UUIDGenerator struct{}

var _ ports.IDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
