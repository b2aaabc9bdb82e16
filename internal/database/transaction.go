package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// Transactor runs a unit of work that spans several collections.
//
// fn must use the ctx it receives for every store call so the calls join
// the transaction.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// NewTransactor returns a multi-document transaction runner when enabled
// (requires a replica set), or a runner that executes fn directly.
func NewTransactor(client *mongo.Client, enabled bool) Transactor {
	if !enabled {
		return directRunner{}
	}
	return &mongoTransactor{client: client}
}

type mongoTransactor struct {
	client *mongo.Client
}

func (t *mongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// directRunner gives no atomicity: writes already applied stay applied when fn fails.
type directRunner struct{}

func (directRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
