package models

// Supplier identifiers accepted by the lookup API.
const (
	SupplierLuxior = "luxior"
	SupplierAmi3f  = "ami3f"
)

// LookupRequest is the payload of POST /api/recherche. JSON field names
// match the existing frontend contract.
type LookupRequest struct {
	Reference string `json:"reference" validate:"required,notblank"`
	Supplier  string `json:"fournisseur" validate:"required,supplier"`
}

// ProductRecord is the normalized result of one supplier lookup. Lookup
// failures are carried in Error; the record itself is always well-formed
// and serialized with a 200 status. Partial extraction is allowed: a
// record may hold a designation but no price.
type ProductRecord struct {
	Reference    string   `json:"reference"`
	Supplier     string   `json:"fournisseur"`
	Price        *float64 `json:"prix,omitempty"`
	Designation  string   `json:"designation,omitempty"`
	Availability string   `json:"disponibilite,omitempty"`
	Error        string   `json:"erreur,omitempty"`
}

// NewRecord returns an empty record bound to one lookup.
func NewRecord(reference, supplier string) ProductRecord {
	return ProductRecord{
		Reference: reference,
		Supplier:  supplier,
	}
}

// Found reports whether the lookup produced product data rather than an
// error outcome.
func (r ProductRecord) Found() bool {
	return r.Error == ""
}
