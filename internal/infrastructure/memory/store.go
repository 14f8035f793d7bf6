package memory

// Store agrupa los repositorios en memoria de un mismo proceso.
type Store struct {
	Products  *ProductStockRepository
	Audit     *AuditRepository
	Enquiries *EnquiryRepository
	Staff     *StaffRepository
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		Products:  NewProductStockRepository(),
		Audit:     NewAuditRepository(),
		Enquiries: NewEnquiryRepository(),
		Staff:     NewStaffRepository(),
	}
}
