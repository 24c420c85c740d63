package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/google/uuid"
)

// IDGenerator produces account identifiers. Uniqueness is probabilistic;
// the store still rejects a value it has already seen.
type IDGenerator func() (string, error)

// Names accepted by IDGeneratorByName.
const (
	IDStrategyUUIDv7 = "uuid7"
	IDStrategyUUIDv4 = "uuid4"
	IDStrategyLegacy = "legacy"
)

// UUIDv7 returns time-ordered UUIDs, so ids sort roughly by creation time.
func UUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// UUIDv4 returns random UUIDs.
func UUIDv4() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Legacy mimics ids written by the browser version: a base-36 millisecond
// timestamp followed by a random hex suffix.
func Legacy() (string, error) {
	suffix, err := common.MakeRandHexString(6)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix, nil
}

// IDGeneratorByName resolves a configured strategy name.
func IDGeneratorByName(name string) (IDGenerator, error) {
	switch name {
	case IDStrategyUUIDv7, "":
		return UUIDv7, nil
	case IDStrategyUUIDv4:
		return UUIDv4, nil
	case IDStrategyLegacy:
		return Legacy, nil
	default:
		return nil, fmt.Errorf("%w: unknown id strategy %q", common.ErrorInvalidConfig, name)
	}
}
