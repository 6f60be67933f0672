package doctors

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

func TestDoctorMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by email returns doctor", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "practice.doctors", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Dr. Ana"},
			{Key: "email", Value: "ana@clinic.com"},
			{Key: "password", Value: "hash"},
		}))

		doctor, err := repo.FindByEmail(context.Background(), "ana@clinic.com")

		require.NoError(t, err)
		require.NotNil(t, doctor)
		assert.Equal(t, id, doctor.ID)
		assert.Equal(t, "hash", doctor.Password)
	})

	mt.Run("find by email without match returns nil", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "practice.doctors", mtest.FirstBatch))

		doctor, err := repo.FindByEmail(context.Background(), "nobody@clinic.com")

		require.NoError(t, err)
		assert.Nil(t, doctor)
	})

	mt.Run("find by invalid id", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}

		_, err := repo.FindByID(context.Background(), "not-an-id")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})

	mt.Run("create doctor", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		doctor := &models.Doctor{ID: primitive.NewObjectID(), Name: "Dr. Ana", Email: "ana@clinic.com"}
		doctorID, err := repo.CreateDoctor(context.Background(), doctor)

		require.NoError(t, err)
		assert.Equal(t, doctor.ID.Hex(), doctorID)
	})

	mt.Run("create doctor with duplicate email", func(mt *mtest.T) {
		repo := &DoctorMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := repo.CreateDoctor(context.Background(), &models.Doctor{ID: primitive.NewObjectID(), Email: "ana@clinic.com"})

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, 400, customErr.StatusCode)
	})
}
