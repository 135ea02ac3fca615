package threeds

import (
	"errors"
	"fmt"
)

// ErrNotInitialized is returned when a transaction or context is requested
// before the engine has been initialized for this session.
var ErrNotInitialized = errors.New("3DS engine is not initialized")

// ErrNoDirectoryServer is returned when a transaction is requested before
// scheme resolution has pinned a directory server.
var ErrNoDirectoryServer = errors.New("no directory server resolved for this session")

// InvalidDataError reports malformed engine or gateway data, e.g. a key that
// is not an EC P-256 JWK.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

// SchemeError reports a card code no scheme can be resolved for.
type SchemeError struct {
	CardCode string
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("unsupported card code: [%s]", e.CardCode)
}
