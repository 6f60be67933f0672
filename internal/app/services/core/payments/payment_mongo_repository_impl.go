package payments

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

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID, sortDirection int) ([]models.Payment, error) {
	if len(customerIDs) == 0 {
		return []models.Payment{}, nil
	}
	if sortDirection != -1 {
		sortDirection = 1
	}
	return r.find(ctx, bson.M{"customerId": bson.M{"$in": customerIDs}}, sortDirection)
}

func (r *PaymentMongoRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.find(ctx, bson.M{"customerId": objectID}, 1)
}

// FindPaidByCustomerIDsInRange returns paid payments whose paymentDate falls
// within [start, end]. A nil bound leaves that side open.
func (r *PaymentMongoRepository) FindPaidByCustomerIDsInRange(ctx context.Context, customerIDs []primitive.ObjectID, start, end *time.Time) ([]models.Payment, error) {
	if len(customerIDs) == 0 {
		return []models.Payment{}, nil
	}

	filter := bson.M{
		"customerId": bson.M{"$in": customerIDs},
		"status":     constvars.PaymentStatusPaid,
	}
	if dateRange := rangeFilter(start, end); dateRange != nil {
		filter["paymentDate"] = dateRange
	}
	return r.find(ctx, filter, 1)
}

func (r *PaymentMongoRepository) FindByID(ctx context.Context, paymentID string) (*models.Payment, error) {
	objectID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var payment models.Payment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&payment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &payment, nil
}

func (r *PaymentMongoRepository) CreatePayment(ctx context.Context, payment *models.Payment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PaymentMongoRepository) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	update := bson.M{"$set": bson.M{
		"amount":      payment.Amount,
		"paymentType": payment.PaymentType,
		"paymentDate": payment.PaymentDate,
		"status":      payment.Status,
		"updatedAt":   payment.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": payment.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PaymentMongoRepository) DeleteByID(ctx context.Context, paymentID string) error {
	objectID, err := primitive.ObjectIDFromHex(paymentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PaymentMongoRepository) find(ctx context.Context, filter bson.M, sortDirection int) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "paymentDate", Value: sortDirection}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err = cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}

func rangeFilter(start, end *time.Time) bson.M {
	if start == nil && end == nil {
		return nil
	}
	dateRange := bson.M{}
	if start != nil {
		dateRange["$gte"] = *start
	}
	if end != nil {
		dateRange["$lte"] = *end
	}
	return dateRange
}
