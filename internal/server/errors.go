package server

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/reconkit/phone-recon/constants"
	"github.com/reconkit/phone-recon/internal/common"
)

// toStatus maps layer errors onto gRPC status codes. Anything unrecognized
// is an internal error; repositories already logged the cause.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return common.NotFoundError(err.Error())
	case errors.Is(err, common.ErrInvalidInput), errors.Is(err, common.ErrMapping):
		return common.InvalidArgumentError(err.Error())
	default:
		return common.InternalError(err.Error())
	}
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func parseUUIDs(field string, raws []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raws))
	for _, raw := range raws {
		id, err := parseUUID(field, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

// canonicalSource folds an optional source label onto the known chat apps.
// Empty input stays empty, anything unrecognized is rejected.
func canonicalSource(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	src, ok := constants.CanonicalSource(raw)
	if !ok {
		return "", common.InvalidArgumentErrorf("source %q is not recognized", raw)
	}
	return string(src), nil
}
