package commands

import "time"

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// OperationRecorder observes the outcome of every engine operation.
type OperationRecorder interface {
	ObserveOperation(operation string, err error, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, error, time.Duration) {}

const (
	OperationCreate  = "create"
	OperationConfirm = "confirm"
	OperationCancel  = "cancel"
)
