package service

import "errors"

// ErrInvalidCredentials covers unknown username, missing password hash and
// wrong password alike, so callers cannot tell the cases apart.
var ErrInvalidCredentials = errors.New("invalid username or password")
