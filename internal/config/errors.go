package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration has
	// no usable database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAppConfigs is returned when token signing settings are
	// missing or incomplete.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidAdapterConfigs is returned when the client has no usable
	// server address or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")
)
