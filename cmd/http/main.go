package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"practice-service/internal/app/config"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/delivery/http/controllers"
	"practice-service/internal/app/delivery/http/middlewares"
	"practice-service/internal/app/delivery/http/routers"
	"practice-service/internal/app/drivers/database"
	"practice-service/internal/app/drivers/logger"
	"practice-service/internal/app/drivers/messaging"
	"practice-service/internal/app/drivers/storage"
	"practice-service/internal/app/services/core/appointments"
	"practice-service/internal/app/services/core/billing"
	"practice-service/internal/app/services/core/charges"
	"practice-service/internal/app/services/core/customers"
	"practice-service/internal/app/services/core/doctors"
	"practice-service/internal/app/services/core/payments"
	"practice-service/internal/app/services/shared/jwtmanager"
	"practice-service/internal/app/services/shared/locker"
	sharedMessaging "practice-service/internal/app/services/shared/messaging"
	"practice-service/internal/app/services/shared/redis"
	sharedStorage "practice-service/internal/app/services/shared/storage"
	"practice-service/internal/app/services/shared/transaction"
	"practice-service/internal/pkg/utils"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	utils.SetExposeDevDetails(!internalConfig.IsProduction())

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	mongoDB := mongoClient.Database(driverConfig.MongoDB.DbName)
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB); err != nil {
		indexCancel()
		log.Fatalf("Error creating mongo indexes: %v", err)
	}
	indexCancel()

	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig, internalConfig.Minio.ImportBucketName)

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while releasing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	log := bootstrap.Logger

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	transactionManager := transaction.NewMongoTransactionManager(bootstrap.MongoClient)

	tokenManager, err := jwtmanager.NewJWTManager(bootstrap.InternalConfig, log)
	if err != nil {
		return err
	}

	var eventPublisher contracts.BillingEventPublisher
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = sharedMessaging.NewBillingEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.BillingQueue, log)
		if err != nil {
			return err
		}
	} else {
		eventPublisher = sharedMessaging.NewNoopPublisher(log)
	}

	var importStorage contracts.Storage
	if bootstrap.Minio != nil {
		importStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Repositories
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoClient, dbName)
	customerRepository := customers.NewCustomerMongoRepository(bootstrap.MongoClient, dbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoClient, dbName)
	paymentRepository := payments.NewPaymentMongoRepository(bootstrap.MongoClient, dbName)
	chargeRepository := charges.NewChargeMongoRepository(bootstrap.MongoClient, dbName)

	// Billing
	billingService := billing.NewBillingService(
		customerRepository,
		chargeRepository,
		eventPublisher,
		bootstrap.InternalConfig.Billing.MaxConcurrency,
		log,
	)

	// Usecases
	authUsecase := doctors.NewAuthUsecase(doctorRepository, tokenManager, log)
	customerUsecase := customers.NewCustomerUsecase(customerRepository, importStorage, bootstrap.InternalConfig.Minio.ImportBucketName, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentRepository, customerRepository, transactionManager, log)
	paymentUsecase := payments.NewPaymentUsecase(
		paymentRepository,
		customerRepository,
		chargeRepository,
		billingService,
		transactionManager,
		eventPublisher,
		log,
	)
	chargeUsecase := charges.NewChargeUsecase(chargeRepository, customerRepository, billingService, log)

	// Worker
	if bootstrap.InternalConfig.Billing.WorkerEnabled {
		worker := billing.NewWorker(log, bootstrap.InternalConfig, lockerService, billingService)
		worker.Start(context.Background())
		bootstrap.WorkerStop = worker.Stop
	}

	// Delivery
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig, tokenManager)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, &routers.Controllers{
		Auth:        controllers.NewAuthController(log, authUsecase),
		Customer:    controllers.NewCustomerController(log, customerUsecase),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase),
		Payment:     controllers.NewPaymentController(log, paymentUsecase),
		Charge:      controllers.NewChargeController(log, chargeUsecase),
	})
	return nil
}
