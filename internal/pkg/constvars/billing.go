package constvars

const (
	PaymentTypePerSession = "per_session"
	PaymentTypeMonthly    = "monthly"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
	PaymentStatusFailed  = "failed"
)

const (
	ChargeStatusPending = "pending"
	ChargeStatusPaid    = "paid"
	ChargeStatusOverdue = "overdue"
)

const (
	BillingEventChargeGenerated = "charge.generated"
	BillingEventChargePaid      = "charge.paid"
	BillingEventPaymentCreated  = "payment.created"
)

// Spreadsheet import columns and their accepted values.
const (
	ImportColumnName            = "Nome"
	ImportColumnEmail           = "Email"
	ImportColumnPhone           = "Telefone"
	ImportColumnBirthday        = "DataNascimento"
	ImportColumnPaymentType     = "TipoPagamento"
	ImportColumnSessionRate     = "ValorSessao"
	ImportColumnMonthlyRate     = "ValorMensal"
	ImportColumnBalanceDue      = "SaldoDevedor"
	ImportPaymentTypeMonthly    = "Mensal"
	ImportPaymentTypePerSession = "Por sessão"
)
