package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/repository"
)

// mongoTransactionManager implements repository.TransactionManager on a
// driver session. The session travels inside the context handed to the
// callback, so every repository call made with that context joins the
// same transaction.
type mongoTransactionManager struct {
	db *mongo.Database
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database) repository.TransactionManager {
	return &mongoTransactionManager{db: db}
}

// Execute runs fn inside one multi-document transaction. The driver
// commits when fn returns nil, aborts when it errors, and retries
// transient conflicts; on retry fn re-reads the current state, so a
// guard that failed once fails consistently.
func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, repos repository.RepositoryFactory) error) error {
	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start mongo session")
	}
	defer session.EndSession(ctx)

	factory := &mongoRepositoryFactory{db: tm.db}

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc, factory)
	})

	return err
}

// mongoRepositoryFactory hands out repositories for use inside a
// transaction. The instances are ordinary collection repositories; the
// session binding comes from the context the callback received.
type mongoRepositoryFactory struct {
	db *mongo.Database
}

func (f *mongoRepositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.db)
}

func (f *mongoRepositoryFactory) DeliveryRepo() repository.DeliveryRepository {
	return NewDeliveryRepository(f.db)
}

func (f *mongoRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.db)
}
