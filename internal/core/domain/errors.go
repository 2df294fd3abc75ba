package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNetworkFailure = errors.New("network failure")
var ErrSessionExpired = errors.New("session expired")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrTaskNotFound = errors.New("task not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrNotificationNotFound = errors.New("notification not found")

// ErrKeyNotFound is returned by storage tiers when a key is absent.
var ErrKeyNotFound = errors.New("key not found")
