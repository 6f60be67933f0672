package transaction

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/mongo"
)

type mongoTransactionManager struct {
	Client *mongo.Client
}

func NewMongoTransactionManager(client *mongo.Client) contracts.TransactionManager {
	return &mongoTransactionManager{Client: client}
}

func (m *mongoTransactionManager) WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	session, err := m.Client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}
