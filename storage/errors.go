package storage

import "errors"

var ErrSubmissionNotFound = errors.New("submission not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("submission with the same id already exists")
