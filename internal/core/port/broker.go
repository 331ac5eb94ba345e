package port

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/core/domain"
)

//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock

// BrokerPort publishes one JSON message per call. Implementations own their
// connection for the duration of the call only.
type BrokerPort interface {
	Publish(ctx context.Context, event domain.Event) error
}
