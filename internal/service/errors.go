package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrClientNotFound is returned when a client is not found
	ErrClientNotFound = errors.New("client not found")

	// ErrEmployeeNotFound is returned when an employee is not found
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrDocumentNotFound is returned when an uploaded document is not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrNoFile is returned when an import request carries no file payload
	ErrNoFile = errors.New("no file provided")

	// ErrUnsupportedFileType is returned when an uploaded document is
	// neither a PDF nor a CSV
	ErrUnsupportedFileType = errors.New("unsupported file type: expected pdf or csv")
)
