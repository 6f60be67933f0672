package customers

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

type CustomerMongoRepository struct {
	Collection *mongo.Collection
}

func NewCustomerMongoRepository(db *mongo.Client, dbName string) contracts.CustomerRepository {
	return &CustomerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCustomers),
	}
}

func (r *CustomerMongoRepository) FindByDoctorID(ctx context.Context, doctorID string, sortDirection int) ([]models.Customer, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	if sortDirection != -1 {
		sortDirection = 1
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: sortDirection}})
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorObjectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return customers, nil
}

func (r *CustomerMongoRepository) FindIDsByDoctorID(ctx context.Context, doctorID string) ([]primitive.ObjectID, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	findOptions := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorObjectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		ids = append(ids, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return ids, nil
}

func (r *CustomerMongoRepository) FindBirthdaysByDoctorID(ctx context.Context, doctorID string) ([]models.CustomerBirthday, error) {
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	findOptions := options.Find().
		SetProjection(bson.M{"_id": 1, "name": 1, "birthday": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorObjectID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var birthdays []models.CustomerBirthday
	if err = cursor.All(ctx, &birthdays); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return birthdays, nil
}

// FindByPaymentType spans every doctor; it backs the monthly charge job.
func (r *CustomerMongoRepository) FindByPaymentType(ctx context.Context, paymentType string) ([]models.Customer, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"paymentType": paymentType})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var customers []models.Customer
	if err = cursor.All(ctx, &customers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return customers, nil
}

func (r *CustomerMongoRepository) FindByID(ctx context.Context, customerID string) (*models.Customer, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *CustomerMongoRepository) FindByIDAndDoctorID(ctx context.Context, customerID, doctorID string) (*models.Customer, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	doctorObjectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID, "doctorId": doctorObjectID})
}

func (r *CustomerMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindExistingEmails reports which of emails are already registered.
func (r *CustomerMongoRepository) FindExistingEmails(ctx context.Context, emails []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(emails) == 0 {
		return existing, nil
	}

	findOptions := options.Find().SetProjection(bson.M{"email": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"email": bson.M{"$in": emails}}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc struct {
			Email string `bson:"email"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		existing[doc.Email] = true
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return existing, nil
}

func (r *CustomerMongoRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (string, error) {
	result, err := r.Collection.InsertOne(ctx, customer)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CustomerMongoRepository) CreateCustomers(ctx context.Context, customers []models.Customer) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	documents := make([]interface{}, 0, len(customers))
	for i := range customers {
		documents = append(documents, customers[i])
	}

	result, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return len(result.InsertedIDs), nil
}

func (r *CustomerMongoRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	set := bson.M{
		"name":        customer.Name,
		"email":       customer.Email,
		"phone":       customer.Phone,
		"birthday":    customer.Birthday,
		"paymentType": customer.PaymentType,
		"sessionRate": customer.SessionRate,
		"monthlyRate": customer.MonthlyRate,
		"updatedAt":   customer.UpdatedAt,
	}
	if customer.Password != "" {
		set["password"] = customer.Password
	}

	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": customer.ID}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrEmailAlreadyExist(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CustomerMongoRepository) IncrementBalance(ctx context.Context, customerID string, amount float64) error {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$inc": bson.M{"balanceDue": amount}})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CustomerMongoRepository) DeleteByID(ctx context.Context, customerID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (r *CustomerMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Customer, error) {
	var customer models.Customer
	err := r.Collection.FindOne(ctx, filter).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &customer, nil
}
