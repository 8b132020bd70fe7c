package common

import "github.com/google/uuid"

// ComputeRoot derives a deterministic UUID v5 from a domain and business key.
//
// The UUID is derived from: hash("shopcart" + domain + business_key)
// using the OID namespace.
func ComputeRoot(domain, businessKey string) uuid.UUID {
	seed := "shopcart" + domain + businessKey
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(seed))
}

// CartRoot computes a deterministic root UUID for a customer's cart.
func CartRoot(customerID string) uuid.UUID {
	return ComputeRoot("cart", customerID)
}
