// Package entities contains core business entities.
package entities

// MemberRecord is a roster row keyed by email. Teams holds team codes as an
// unordered set; codes are not validated against the role map, so a retired
// team code stays inert until the mapping catches up.
type MemberRecord struct {
	Email     string
	FirstName string
	LastName  string
	Teams     []string
}
