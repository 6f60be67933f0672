package billing

import (
	"context"
	"errors"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCustomerRepository struct {
	contracts.CustomerRepository
	customers []models.Customer
}

func (f *fakeCustomerRepository) FindByPaymentType(ctx context.Context, paymentType string) ([]models.Customer, error) {
	var result []models.Customer
	for _, customer := range f.customers {
		if customer.PaymentType == paymentType {
			result = append(result, customer)
		}
	}
	return result, nil
}

type fakeChargeRepository struct {
	contracts.ChargeRepository
	mu        sync.Mutex
	charges   map[primitive.ObjectID]*models.Charge
	failFor   map[primitive.ObjectID]bool
	inFlight  int
	maxFlight int
	delay     time.Duration
}

func newFakeChargeRepository() *fakeChargeRepository {
	return &fakeChargeRepository{
		charges: map[primitive.ObjectID]*models.Charge{},
		failFor: map[primitive.ObjectID]bool{},
	}
}

func (f *fakeChargeRepository) CreateCharge(ctx context.Context, charge *models.Charge) (string, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxFlight {
		f.maxFlight = f.inFlight
	}
	fail := f.failFor[charge.CustomerID]
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.inFlight--
	if fail {
		return "", errors.New("insert failed")
	}
	stored := *charge
	stored.ID = primitive.NewObjectID()
	f.charges[stored.ID] = &stored
	return stored.ID.Hex(), nil
}

func (f *fakeChargeRepository) FindPendingByCustomerID(ctx context.Context, customerID string) ([]models.Charge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []models.Charge
	for _, charge := range f.charges {
		if charge.CustomerID.Hex() == customerID && charge.Status == constvars.ChargeStatusPending {
			result = append(result, *charge)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (f *fakeChargeRepository) UpdateStatus(ctx context.Context, chargeID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, err := primitive.ObjectIDFromHex(chargeID)
	if err != nil {
		return err
	}
	charge, ok := f.charges[id]
	if !ok {
		return errors.New("charge not found")
	}
	charge.Status = status
	return nil
}

func (f *fakeChargeRepository) add(charge models.Charge) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	charge.ID = primitive.NewObjectID()
	f.charges[charge.ID] = &charge
	return charge.ID
}

func (f *fakeChargeRepository) forCustomer(customerID primitive.ObjectID) []models.Charge {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Charge
	for _, charge := range f.charges {
		if charge.CustomerID == customerID {
			result = append(result, *charge)
		}
	}
	return result
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.BillingEvent
	err    error
}

func (p *recordingPublisher) PublishBillingEvent(ctx context.Context, event *models.BillingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, *event)
	return p.err
}
