package db

import "errors"

// ErrNoDatabase is returned by New when no connection string is configured.
var ErrNoDatabase = errors.New("database not configured")
