package service

import "errors"

var (
	// ErrNotFound is returned by the local data service when the deck or
	// card does not exist locally.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a create names an id that is
	// already taken by a local deck or card.
	ErrAlreadyExists = errors.New("record already exists")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoUser is returned when a sync cycle runs before a user is set.
	ErrNoUser = errors.New("no user set for synchronisation")

	// ErrOffline is reported through the error callback when a cycle is
	// requested while the network monitor reports offline.
	ErrOffline = errors.New("network is offline")

	// ErrTransientSync matches every *SyncError of kind SyncErrorTransient.
	ErrTransientSync = errors.New("transient sync error")
	// ErrPermanentSync matches every *SyncError of kind SyncErrorPermanent.
	ErrPermanentSync = errors.New("permanent sync error")
)
