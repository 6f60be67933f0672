package customers

import (
	"context"
	"errors"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/exceptions"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCustomerRepository keeps customers in a map keyed by id.
type memoryCustomerRepository struct {
	contracts.CustomerRepository
	mu        sync.Mutex
	customers map[primitive.ObjectID]models.Customer
}

func newMemoryCustomerRepository(customers ...models.Customer) *memoryCustomerRepository {
	repo := &memoryCustomerRepository{customers: map[primitive.ObjectID]models.Customer{}}
	for _, customer := range customers {
		repo.customers[customer.ID] = customer
	}
	return repo
}

func (r *memoryCustomerRepository) FindByDoctorID(ctx context.Context, doctorID string, sortDirection int) ([]models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []models.Customer
	for _, customer := range r.customers {
		if customer.DoctorID.Hex() == doctorID {
			result = append(result, customer)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if sortDirection == -1 {
			return result[i].Name > result[j].Name
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (r *memoryCustomerRepository) FindBirthdaysByDoctorID(ctx context.Context, doctorID string) ([]models.CustomerBirthday, error) {
	customers, _ := r.FindByDoctorID(ctx, doctorID, 1)
	var result []models.CustomerBirthday
	for _, customer := range customers {
		result = append(result, models.CustomerBirthday{ID: customer.ID, Name: customer.Name, Birthday: customer.Birthday})
	}
	return result, nil
}

func (r *memoryCustomerRepository) FindByIDAndDoctorID(ctx context.Context, customerID, doctorID string) (*models.Customer, error) {
	id, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok || customer.DoctorID.Hex() != doctorID {
		return nil, nil
	}
	return &customer, nil
}

func (r *memoryCustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, customer := range r.customers {
		if customer.Email == email {
			found := customer
			return &found, nil
		}
	}
	return nil, nil
}

func (r *memoryCustomerRepository) FindExistingEmails(ctx context.Context, emails []string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := map[string]bool{}
	for _, email := range emails {
		for _, customer := range r.customers {
			if customer.Email == email {
				existing[email] = true
			}
		}
	}
	return existing, nil
}

func (r *memoryCustomerRepository) CreateCustomer(ctx context.Context, customer *models.Customer) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *customer
	stored.ID = primitive.NewObjectID()
	r.customers[stored.ID] = stored
	return stored.ID.Hex(), nil
}

func (r *memoryCustomerRepository) CreateCustomers(ctx context.Context, customers []models.Customer) (int, error) {
	for i := range customers {
		if _, err := r.CreateCustomer(ctx, &customers[i]); err != nil {
			return i, err
		}
	}
	return len(customers), nil
}

func (r *memoryCustomerRepository) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.customers[customer.ID]
	if !ok {
		return errors.New("customer not found")
	}
	password := stored.Password
	balance := stored.BalanceDue
	stored = *customer
	stored.BalanceDue = balance
	if stored.Password == "" {
		stored.Password = password
	}
	r.customers[customer.ID] = stored
	return nil
}

func (r *memoryCustomerRepository) DeleteByID(ctx context.Context, customerID string) (bool, error) {
	id, err := primitive.ObjectIDFromHex(customerID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[id]; !ok {
		return false, nil
	}
	delete(r.customers, id)
	return true, nil
}

func (r *memoryCustomerRepository) get(id primitive.ObjectID) models.Customer {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.customers[id]
}

func (r *memoryCustomerRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.customers)
}

type recordingStorage struct {
	bucket     string
	objectName string
	content    []byte
	err        error
}

func (s *recordingStorage) UploadObject(ctx context.Context, bucketName, objectName string, content []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.bucket = bucketName
	s.objectName = objectName
	s.content = content
	return objectName, nil
}
