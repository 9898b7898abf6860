package domain

import "errors"

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, negative amount).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("dados inválidos")

// ErrConflict is returned when a uniqueness rule is violated — in this
// system, registering an email that already exists.
// Handlers should map this to HTTP 400.
var ErrConflict = errors.New("conflito")

// ErrAuth is returned for every authentication failure: bad login
// credentials, missing token, malformed token, bad signature, expiry.
// Handlers should map this to HTTP 401.
var ErrAuth = errors.New("não autorizado")

// ErrNotFound is returned by repo functions when the requested record does
// not exist. It never reaches the HTTP surface directly — the login path
// converts it to ErrAuth so callers cannot probe which emails exist.
var ErrNotFound = errors.New("não encontrado")
