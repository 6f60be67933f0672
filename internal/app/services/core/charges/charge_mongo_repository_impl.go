package charges

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChargeMongoRepository struct {
	Collection *mongo.Collection
}

func NewChargeMongoRepository(db *mongo.Client, dbName string) contracts.ChargeRepository {
	return &ChargeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCharges),
	}
}

func (r *ChargeMongoRepository) CreateCharge(ctx context.Context, charge *models.Charge) (string, error) {
	result, err := r.Collection.InsertOne(ctx, charge)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ChargeMongoRepository) FindByID(ctx context.Context, chargeID string) (*models.Charge, error) {
	objectID, err := primitive.ObjectIDFromHex(chargeID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var charge models.Charge
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&charge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &charge, nil
}

func (r *ChargeMongoRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.find(ctx, bson.M{"customerId": objectID})
}

// FindPendingByCustomerID returns the customer's pending charges, oldest dueDate first.
func (r *ChargeMongoRepository) FindPendingByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.find(ctx, bson.M{"customerId": objectID, "status": constvars.ChargeStatusPending})
}

func (r *ChargeMongoRepository) FindByCustomerIDsInRange(ctx context.Context, customerIDs []primitive.ObjectID, start, end *time.Time) ([]models.Charge, error) {
	if len(customerIDs) == 0 {
		return []models.Charge{}, nil
	}

	filter := bson.M{"customerId": bson.M{"$in": customerIDs}}
	if start != nil || end != nil {
		dueDate := bson.M{}
		if start != nil {
			dueDate["$gte"] = *start
		}
		if end != nil {
			dueDate["$lte"] = *end
		}
		filter["dueDate"] = dueDate
	}
	return r.find(ctx, filter)
}

func (r *ChargeMongoRepository) UpdateStatus(ctx context.Context, chargeID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(chargeID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ChargeMongoRepository) DeleteByID(ctx context.Context, chargeID string) error {
	objectID, err := primitive.ObjectIDFromHex(chargeID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *ChargeMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Charge, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	charges := []models.Charge{}
	if err = cursor.All(ctx, &charges); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return charges, nil
}
