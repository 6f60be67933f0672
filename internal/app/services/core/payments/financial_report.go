package payments

import (
	"context"
	"practice-service/internal/pkg/constvars"
	"practice-service/internal/pkg/dto/requests"
	"practice-service/internal/pkg/dto/responses"
	"practice-service/internal/pkg/exceptions"
	"practice-service/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// GetFinancialReport summarizes what each of the doctor's customers owes.
// total is the outstanding balance for per-session customers and the monthly
// rate for monthly ones; the period sums cover paid payments by paymentDate
// and charges by dueDate within the requested range.
func (uc *paymentUsecase) GetFinancialReport(ctx context.Context, request *requests.FinancialReport) (*responses.FinancialReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("paymentUsecase.GetFinancialReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	start, err := utils.ParseOptionalDate(request.StartDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := utils.ParseOptionalDate(request.EndDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if end != nil {
		endOfDay := utils.EndOfDay(*end)
		end = &endOfDay
	}

	customers, err := uc.CustomerRepository.FindByDoctorID(ctx, request.DoctorID, 1)
	if err != nil {
		return nil, err
	}

	report := &responses.FinancialReport{
		StartDate: request.StartDate,
		EndDate:   request.EndDate,
		Rows:      make([]responses.FinancialReportRow, 0, len(customers)),
	}
	if len(customers) == 0 {
		return report, nil
	}

	customerIDs := make([]primitive.ObjectID, 0, len(customers))
	for _, customer := range customers {
		customerIDs = append(customerIDs, customer.ID)
	}

	payments, err := uc.PaymentRepository.FindPaidByCustomerIDsInRange(ctx, customerIDs, start, end)
	if err != nil {
		return nil, err
	}
	charges, err := uc.ChargeRepository.FindByCustomerIDsInRange(ctx, customerIDs, start, end)
	if err != nil {
		return nil, err
	}

	paid := make(map[primitive.ObjectID]decimal.Decimal, len(customers))
	for _, payment := range payments {
		paid[payment.CustomerID] = paid[payment.CustomerID].Add(decimal.NewFromFloat(payment.Amount))
	}
	charged := make(map[primitive.ObjectID]decimal.Decimal, len(customers))
	for _, charge := range charges {
		charged[charge.CustomerID] = charged[charge.CustomerID].Add(decimal.NewFromFloat(charge.Amount))
	}

	grandTotal := decimal.Zero
	for _, customer := range customers {
		total := decimal.NewFromFloat(customer.BalanceDue)
		if customer.IsMonthly() {
			total = decimal.NewFromFloat(customer.MonthlyRate)
		}
		grandTotal = grandTotal.Add(total)

		report.Rows = append(report.Rows, responses.FinancialReportRow{
			CustomerID:      customer.ID.Hex(),
			Name:            customer.Name,
			Email:           customer.Email,
			PaymentType:     customer.PaymentType,
			Total:           total.InexactFloat64(),
			PaidInPeriod:    paid[customer.ID].InexactFloat64(),
			ChargedInPeriod: charged[customer.ID].InexactFloat64(),
		})
	}
	report.GrandTotal = grandTotal.InexactFloat64()

	uc.Log.Info("paymentUsecase.GetFinancialReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("rows", len(report.Rows)),
	)
	return report, nil
}
