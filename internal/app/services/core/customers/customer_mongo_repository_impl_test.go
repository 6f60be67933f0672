package customers

import (
	"context"
	"errors"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestCustomerMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	doctorID := primitive.NewObjectID()

	mt.Run("find by doctor id", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		first := mtest.CreateCursorResponse(1, "practice.customers", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Ana"},
			{Key: "paymentType", Value: "per_session"},
			{Key: "doctorId", Value: doctorID},
		}, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Bruno"},
			{Key: "paymentType", Value: "monthly"},
			{Key: "doctorId", Value: doctorID},
		})
		killCursors := mtest.CreateCursorResponse(0, "practice.customers", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		customers, err := repo.FindByDoctorID(context.Background(), doctorID.Hex(), 1)

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, "Ana", customers[0].Name)
		assert.True(t, customers[1].IsMonthly())
	})

	mt.Run("find by doctor id with invalid id", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}

		_, err := repo.FindByDoctorID(context.Background(), "bad", 1)

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})

	mt.Run("find ids by doctor id", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		a, b := primitive.NewObjectID(), primitive.NewObjectID()
		first := mtest.CreateCursorResponse(1, "practice.customers", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: a}},
			bson.D{{Key: "_id", Value: b}},
		)
		killCursors := mtest.CreateCursorResponse(0, "practice.customers", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		ids, err := repo.FindIDsByDoctorID(context.Background(), doctorID.Hex())

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{a, b}, ids)
	})

	mt.Run("find by id and doctor id without match", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "practice.customers", mtest.FirstBatch))

		customer, err := repo.FindByIDAndDoctorID(context.Background(), primitive.NewObjectID().Hex(), doctorID.Hex())

		require.NoError(t, err)
		assert.Nil(t, customer)
	})

	mt.Run("find existing emails", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		first := mtest.CreateCursorResponse(1, "practice.customers", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "ana@mail.com"}},
		)
		killCursors := mtest.CreateCursorResponse(0, "practice.customers", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		existing, err := repo.FindExistingEmails(context.Background(), []string{"ana@mail.com", "bruno@mail.com"})

		require.NoError(t, err)
		assert.True(t, existing["ana@mail.com"])
		assert.False(t, existing["bruno@mail.com"])
	})

	mt.Run("find existing emails without input", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}

		existing, err := repo.FindExistingEmails(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	mt.Run("create customers", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		inserted, err := repo.CreateCustomers(context.Background(), []models.Customer{
			{ID: primitive.NewObjectID(), Name: "Ana"},
			{ID: primitive.NewObjectID(), Name: "Bruno"},
		})

		require.NoError(t, err)
		assert.Equal(t, 2, inserted)
	})

	mt.Run("increment balance", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		err := repo.IncrementBalance(context.Background(), primitive.NewObjectID().Hex(), 150)

		require.NoError(t, err)
	})

	mt.Run("delete missing customer", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		deleted, err := repo.DeleteByID(context.Background(), primitive.NewObjectID().Hex())

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	mt.Run("create customer with duplicate email", func(mt *mtest.T) {
		repo := &CustomerMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		_, err := repo.CreateCustomer(context.Background(), &models.Customer{ID: primitive.NewObjectID(), Email: "ana@mail.com"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
