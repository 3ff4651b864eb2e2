package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any mutation when a request is malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a referenced transaction or wallet is absent or owned by another user.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientBalance is returned when an expense would drive a wallet below zero.
	ErrInsufficientBalance = errors.New("wallet does not have enough balance")
	// ErrAttachmentFailed is returned when a transaction's receipt could not be resolved.
	ErrAttachmentFailed = errors.New("failed to upload receipt")
	// ErrUploadFailed is returned by the attachment resolver when object storage rejects an upload.
	ErrUploadFailed = errors.New("upload failed")
	// ErrStoreFailed wraps errors of the underlying store.
	ErrStoreFailed = errors.New("store operation failed")
)

var kinds = []error{
	ErrInvalidInput,
	ErrNotFound,
	ErrInsufficientBalance,
	ErrAttachmentFailed,
	ErrUploadFailed,
	ErrStoreFailed,
	ErrUserAlreadyExists,
	ErrUserDoesNotExist,
	ErrInvalidCredentials,
}

func storeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreFailed, err)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func notFound(what string, id fmt.Stringer) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, what, id)
}

// classify returns err unchanged if it already carries a known kind,
// otherwise it is reported as a store failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return err
		}
	}
	return storeErr(err)
}
