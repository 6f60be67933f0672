package customers

import (
	"context"
	"practice-service/internal/app/contracts"
	"practice-service/internal/app/models"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type customerUsecase struct {
	CustomerRepository contracts.CustomerRepository
	Storage            contracts.Storage
	ImportBucketName   string
	Log                *zap.Logger
}

var (
	customerUsecaseInstance contracts.CustomerUsecase
	onceCustomerUsecase     sync.Once
)

// NewCustomerUsecase builds the customer usecase. storage may be nil, in which
// case uploaded spreadsheets are imported without being archived.
func NewCustomerUsecase(
	customerRepository contracts.CustomerRepository,
	storage contracts.Storage,
	importBucketName string,
	logger *zap.Logger,
) contracts.CustomerUsecase {
	onceCustomerUsecase.Do(func() {
		customerUsecaseInstance = newCustomerUsecase(customerRepository, storage, importBucketName, logger)
	})
	return customerUsecaseInstance
}

func newCustomerUsecase(customerRepository contracts.CustomerRepository, storage contracts.Storage, importBucketName string, logger *zap.Logger) *customerUsecase {
	return &customerUsecase{
		CustomerRepository: customerRepository,
		Storage:            storage,
		ImportBucketName:   importBucketName,
		Log:                logger,
	}
}

func (uc *customerUsecase) ListCustomers(ctx context.Context, request *requests.GetCustomers) ([]models.Customer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("customerUsecase.ListCustomers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	sortDirection := 1
	if strings.EqualFold(request.OrderBy, constvars.SortDirectionDesc) {
		sortDirection = -1
	}

	customers, err := uc.CustomerRepository.FindByDoctorID(ctx, request.DoctorID, sortDirection)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 {
		return nil, exceptions.ErrNoCustomersFound(nil)
	}

	uc.Log.Info("customerUsecase.ListCustomers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(customers)),
	)
	return customers, nil
}

func (uc *customerUsecase) FindCustomerByID(ctx context.Context, doctorID, customerID string) (*models.Customer, error) {
	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, customerID, doctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}
	return customer, nil
}

func (uc *customerUsecase) ListBirthdays(ctx context.Context, doctorID string) ([]models.CustomerBirthday, error) {
	birthdays, err := uc.CustomerRepository.FindBirthdaysByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if birthdays == nil {
		birthdays = []models.CustomerBirthday{}
	}
	return birthdays, nil
}

func (uc *customerUsecase) CreateCustomer(ctx context.Context, request *requests.CreateCustomer) (*models.Customer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("customerUsecase.CreateCustomer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "name", Value: request.Name},
		utils.RequiredField{Name: "email", Value: request.Email},
		utils.RequiredField{Name: "password", Value: request.Password},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	doctorObjectID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	email := strings.TrimSpace(*request.Email)
	existing, err := uc.CustomerRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(*request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	birthday, err := parseBirthday(request.Birthday)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:     strings.TrimSpace(*request.Name),
		Email:    email,
		Password: hashedPassword,
		Birthday: birthday,
		DoctorID: doctorObjectID,
	}
	if request.Phone != nil {
		customer.Phone = *request.Phone
	}
	if request.PaymentType != nil {
		customer.PaymentType = *request.PaymentType
	}
	if request.SessionRate != nil {
		customer.SessionRate = *request.SessionRate
	}
	if request.MonthlyRate != nil {
		customer.MonthlyRate = *request.MonthlyRate
	}
	customer.ApplyDefaults()
	customer.SetCreatedAtUpdatedAt()

	customerID, err := uc.CustomerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}
	customer.ID, _ = primitive.ObjectIDFromHex(customerID)

	uc.Log.Info("customerUsecase.CreateCustomer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	return customer, nil
}

func (uc *customerUsecase) UpdateCustomer(ctx context.Context, request *requests.UpdateCustomer) (*models.Customer, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("customerUsecase.UpdateCustomer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, request.CustomerID),
	)

	missing := utils.VerifyRequiredFields(
		utils.RequiredField{Name: "name", Value: request.Name},
		utils.RequiredField{Name: "email", Value: request.Email},
	)
	if len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(missing)
	}

	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, request.CustomerID, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, exceptions.ErrCustomerNotFound(nil)
	}

	email := strings.TrimSpace(*request.Email)
	if email != customer.Email {
		owner, err := uc.CustomerRepository.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != customer.ID {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
	}

	customer.Name = strings.TrimSpace(*request.Name)
	customer.Email = email
	customer.Password = ""
	if request.Password != nil && *request.Password != "" {
		hashedPassword, err := utils.HashPassword(*request.Password)
		if err != nil {
			return nil, exceptions.ErrHashPassword(err)
		}
		customer.Password = hashedPassword
	}
	if request.Phone != nil {
		customer.Phone = *request.Phone
	}
	if request.Birthday != nil {
		birthday, err := parseBirthday(request.Birthday)
		if err != nil {
			return nil, err
		}
		customer.Birthday = birthday
	}
	if request.PaymentType != nil {
		customer.PaymentType = *request.PaymentType
	}
	if request.SessionRate != nil {
		customer.SessionRate = *request.SessionRate
	}
	if request.MonthlyRate != nil {
		customer.MonthlyRate = *request.MonthlyRate
	}
	customer.ApplyDefaults()
	customer.SetUpdatedAt()

	if err := uc.CustomerRepository.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	customer.Password = ""

	uc.Log.Info("customerUsecase.UpdateCustomer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, request.CustomerID),
	)
	return customer, nil
}

func (uc *customerUsecase) DeleteCustomer(ctx context.Context, doctorID, customerID string) error {
	requestID := utils.GetRequestID(ctx)

	customer, err := uc.CustomerRepository.FindByIDAndDoctorID(ctx, customerID, doctorID)
	if err != nil {
		return err
	}
	if customer == nil {
		return exceptions.ErrCustomerNotFound(nil)
	}

	deleted, err := uc.CustomerRepository.DeleteByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrCustomerNotFound(nil)
	}

	uc.Log.Info("customerUsecase.DeleteCustomer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCustomerIDKey, customerID),
	)
	return nil
}

func (uc *customerUsecase) ImportCustomers(ctx context.Context, request *requests.ImportCustomers) (*responses.ImportCustomers, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("customerUsecase.ImportCustomers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	if len(request.Content) == 0 {
		return nil, exceptions.ErrImportFileMissing(nil)
	}

	doctorObjectID, err := primitive.ObjectIDFromHex(request.DoctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	rows, err := parseCustomerSheet(request.Content)
	if err != nil {
		return nil, exceptions.ErrSpreadsheetRead(err)
	}

	emails := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Email != "" {
			emails = append(emails, row.Email)
		}
	}
	existing, err := uc.CustomerRepository.FindExistingEmails(ctx, emails)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing = make(map[string]bool)
	}

	result := &responses.ImportCustomers{}
	now := time.Now()
	toInsert := make([]models.Customer, 0, len(rows))
	for _, row := range rows {
		if row.PaymentType == "" {
			uc.Log.Warn("customerUsecase.ImportCustomers skipping row with unknown payment type",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("email", row.Email),
			)
			result.Skipped++
			result.SkippedRows = append(result.SkippedRows, row.Email)
			continue
		}
		if row.Email == "" || existing[row.Email] {
			result.Skipped++
			result.SkippedRows = append(result.SkippedRows, row.Email)
			continue
		}
		existing[row.Email] = true

		row.DoctorID = doctorObjectID
		row.CreatedAt = now
		row.UpdatedAt = now
		toInsert = append(toInsert, row)
	}

	inserted, err := uc.CustomerRepository.CreateCustomers(ctx, toInsert)
	if err != nil {
		return nil, err
	}
	result.Imported = inserted

	result.ArchivedFile = uc.archiveUpload(ctx, request)

	uc.Log.Info("customerUsecase.ImportCustomers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// archiveUpload keeps the raw spreadsheet in object storage. Failures are
// logged and leave the import result untouched.
func (uc *customerUsecase) archiveUpload(ctx context.Context, request *requests.ImportCustomers) string {
	if uc.Storage == nil {
		return ""
	}

	objectName := utils.GenerateFileName(constvars.ImportArchivePrefix, request.DoctorID, ".xlsx")
	key, err := uc.Storage.UploadObject(ctx, uc.ImportBucketName, objectName, request.Content, constvars.MIMESpreadsheetXLSX)
	if err != nil {
		uc.Log.Warn("customerUsecase.archiveUpload failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingBucketKey, uc.ImportBucketName),
			zap.String(constvars.LoggingObjectKey, objectName),
			zap.Error(err),
		)
		return ""
	}
	return key
}

func parseBirthday(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	birthday, err := utils.ParseFlexibleDate(*value)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	return &birthday, nil
}
