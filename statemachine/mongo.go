package statemachine

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercehub/easy-checkout-api/models"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) (*mongo.Client, error) {
	if client != nil {
		return client, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoDBURL)

	var err error
	client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %s", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		client = nil
		return nil, fmt.Errorf("error pinging mongodb: %s", err)
	}

	return client, nil
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// NewMongoStore returns a transaction store backed by the given database. An
// unreachable database fails here, not on first use.
func NewMongoStore(mongoDBURL, databaseName, collectionName string) (*MongoStore, error) {
	mongoClient, err := getMongoClient(mongoDBURL)
	if err != nil {
		return nil, err
	}

	return &MongoStore{
		db:             mongoClient.Database(databaseName),
		CollectionName: collectionName,
	}, nil
}

// MongoStore is a TransitionHandler recording transitions on transaction
// documents in MongoDB
type MongoStore struct {
	db             MongoDatabaseInterface
	CollectionName string
}

// Transition moves the transaction into the state the named action targets.
// The move is validated against the transaction's current state first, so an
// illegal transition never reaches the database.
func (m *MongoStore) Transition(entityName, transactionID, actionName string) error {
	target, err := TargetState(actionName)
	if err != nil {
		return err
	}

	collection := m.db.Collection(m.CollectionName)

	var resource models.TransactionResourceDB
	err = collection.FindOne(context.Background(), bson.M{"_id": transactionID}).Decode(&resource)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("transaction [%s] not found", transactionID)
		}
		return fmt.Errorf("error getting transaction [%s]: [%s]", transactionID, err)
	}

	current := models.TransactionState(resource.State)
	if !current.CanTransitionTo(target) {
		return fmt.Errorf("illegal %s transition [%s] from state [%s]", entityName, actionName, resource.State)
	}

	_, err = collection.UpdateOne(
		context.Background(),
		bson.M{"_id": transactionID},
		bson.M{"$set": bson.M{"state": string(target)}},
	)
	if err != nil {
		return fmt.Errorf("error recording %s transition [%s] on transaction [%s]: [%s]", entityName, actionName, transactionID, err)
	}

	log.Info("transaction state transition recorded", log.Data{
		"transaction_id": transactionID,
		"action":         actionName,
		"state":          string(target),
	})

	return nil
}

// UpdatePaymentDetails merges provider bookkeeping fields into the
// transaction document
func (m *MongoStore) UpdatePaymentDetails(transactionID string, fields map[string]interface{}) error {
	set := bson.M{}
	for key, value := range fields {
		set["easy_payment_details."+key] = value
	}

	_, err := m.db.Collection(m.CollectionName).UpdateOne(
		context.Background(),
		bson.M{"_id": transactionID},
		bson.M{"$set": set},
	)
	if err != nil {
		return fmt.Errorf("error updating payment details on transaction [%s]: [%s]", transactionID, err)
	}

	return nil
}
