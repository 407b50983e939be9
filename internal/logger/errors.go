package logger

import "errors"

var (
	// ErrServiceNameIsEmpty error if the config log.serviceName is empty.
	ErrServiceNameIsEmpty = errors.New("toml config log.serviceName can not be empty")
)
