package constvars

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionCustomers    = "customers"
	MongoCollectionAppointments = "appointments"
	MongoCollectionPayments     = "payments"
	MongoCollectionCharges      = "charges"
)
