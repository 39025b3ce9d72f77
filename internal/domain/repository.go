package domain

// CustomerSeedRepository defines the interface for reading customers to register
type CustomerSeedRepository interface {
	// GetCustomerSeeds returns the seeds in source order
	GetCustomerSeeds() ([]CustomerSeed, error)
}

// OperationRepository defines the interface for reading operations to run
type OperationRepository interface {
	// GetOperations returns the requests in source order
	GetOperations() ([]OperationRequest, error)
}
