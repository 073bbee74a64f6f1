package factory

import "context"

type ChangeOp string

const (
	OpRegistered  ChangeOp = "registered"
	OpRemoved     ChangeOp = "removed"
	OpBaseChanged ChangeOp = "base_changed"
)

// Change describes one mutation of a factory.
type Change struct {
	Op    ChangeOp `json:"op"`
	Key   string   `json:"key,omitempty"`
	Class string   `json:"class,omitempty"`
	Base  string   `json:"base"`
}

type Notifier interface {
	Notify(ctx context.Context, change Change) error
}

type NotifierFunc func(ctx context.Context, change Change) error

func (fn NotifierFunc) Notify(ctx context.Context, change Change) error {
	return fn(ctx, change)
}
