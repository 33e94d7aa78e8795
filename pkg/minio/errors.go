package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucketName)}
}

func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", objectName)}
}

// IsCode reports whether err is a StorageError with the given code.
func IsCode(err error, code string) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr) && storageErr.Code == code
}

// handleMinIOError maps a minio-go error to a StorageError. It returns a nil
// error interface for a nil err.
func handleMinIOError(err error, operation, bucketName, objectName string) error {
	if err == nil {
		return nil
	}
	var storageErr *StorageError
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		storageErr = NewBucketNotFoundError(bucketName)
	case "NoSuchKey":
		storageErr = NewObjectNotFoundError(objectName)
	case "AccessDenied":
		storageErr = &StorageError{Code: ErrCodePermission, Message: "access denied"}
	case "":
		storageErr = NewConnectionError(nil)
	default:
		storageErr = &StorageError{Code: ErrCodeConnection, Message: fmt.Sprintf("operation failed: %s", resp.Code)}
	}
	storageErr.Operation = operation
	storageErr.Cause = err
	return storageErr
}
