package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use
// case.
var ErrPersistence = errors.New("user use case persistence error")
