package client

import (
	"errors"

	clienterrors "github.com/mycelian/shopsearch/client/internal/errors"
	"github.com/mycelian/shopsearch/client/internal/types"
)

// ErrEmptyBaseURL is returned by New when no base URL is given.
var ErrEmptyBaseURL = errors.New("baseURL cannot be empty")

// ErrNotCatalog is returned by SearchResponse.Catalog for replies that are not
// a product listing.
var ErrNotCatalog = types.ErrNotCatalog

// Error is the classified error returned for failed exchanges.
type Error = clienterrors.ClassifiedError

// IsTransport reports whether err means no response was received.
func IsTransport(err error) bool { return clienterrors.Is(err, clienterrors.Transport) }

// IsDecode reports whether err means the response body was not valid JSON.
func IsDecode(err error) bool { return clienterrors.Is(err, clienterrors.Decode) }
