package gateway

import (
	"context"
	"errors"
)

// unsupportedMessage is the fixed failure text for sandboxed environments.
const unsupportedMessage = "command execution is not supported in this environment"

// unsupportedGateway backs sandboxed or browser-like environments where
// spawning processes is categorically disallowed. Every command
// short-circuits with a fixed result; no resolution or spawning is ever
// attempted.
type unsupportedGateway struct{}

func (unsupportedGateway) Execute(ctx context.Context, cmd Command) Result {
	return failure(unsupportedMessage, 0)
}

func (unsupportedGateway) CheckAvailability(ctx context.Context) bool { return false }

func (unsupportedGateway) Version(ctx context.Context) (string, error) {
	return "", errors.New(unsupportedMessage)
}

func (unsupportedGateway) IsAuthenticated(ctx context.Context) bool { return false }

func (unsupportedGateway) InFlight() int { return 0 }

func (unsupportedGateway) CancelAll() {}
