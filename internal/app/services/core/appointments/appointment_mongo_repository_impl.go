package appointments

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) FindByCustomerIDs(ctx context.Context, customerIDs []primitive.ObjectID) ([]models.Appointment, error) {
	if len(customerIDs) == 0 {
		return []models.Appointment{}, nil
	}
	return r.find(ctx, bson.M{"customerId": bson.M{"$in": customerIDs}})
}

func (r *AppointmentMongoRepository) FindByCustomerID(ctx context.Context, customerID string) ([]models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.find(ctx, bson.M{"customerId": objectID})
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// UpdateAppointment writes the schedule fields only; amount is fixed at creation.
func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	update := bson.M{"$set": bson.M{
		"date":        appointment.Date,
		"description": appointment.Description,
		"notes":       appointment.Notes,
		"updatedAt":   appointment.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointment.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err = cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
