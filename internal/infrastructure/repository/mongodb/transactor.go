package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PurpleArcher2/discounts-app/internal/domain/contract"
)

// MongoTransactor runs multi-document operations inside a session
// transaction, so approval's three-step effect commits or aborts as a unit.
// Requires a replica-set deployment, which is what transactions need on
// MongoDB anyway.
type MongoTransactor struct {
	client *mongo.Client
}

func NewMongoTransactor(client *mongo.Client) *MongoTransactor {
	return &MongoTransactor{client: client}
}

var _ contract.ITransactor = (*MongoTransactor)(nil)

func (t *MongoTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	return err
}
