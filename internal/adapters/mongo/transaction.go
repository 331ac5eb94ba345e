package mongo

import (
	"context"

	"github.com/rafaelleal24/eshop/internal/core/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionManager struct {
	client *mongo.Client
}

func NewTransactionManager(client *mongo.Client) *TransactionManager {
	return &TransactionManager{client: client}
}

// WithTransaction runs fn in a session transaction. The driver retries fn on
// transient transaction errors, so fn must be safe to run more than once.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := tm.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (any, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		logger.Debug(ctx, "transaction aborted", map[string]any{
			"error": err.Error(),
		})
	}

	return err
}
