package error_notificator

import "context"

type Notificator interface {
	// Notify — reports an operational problem to the operator chat.
	Notify(ctx context.Context, err error, details string) error
}
