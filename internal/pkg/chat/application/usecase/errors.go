package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use
// case. It carries no business-logic claim, which makes it the only error
// category callers may retry transparently.
var ErrPersistence = errors.New("chat use case persistence error")
