package services

// AdminPolicy decides whether a caller-supplied identity may perform
// admin-gated operations. This is a capability check, not an authentication
// protocol: no token, no session, no expiry.
type AdminPolicy interface {
	IsAdmin(email string) bool
}

type emailAdminPolicy struct {
	adminEmail string
}

// NewEmailAdminPolicy gates on exact string equality against the single
// configured administrator address.
func NewEmailAdminPolicy(adminEmail string) AdminPolicy {
	return &emailAdminPolicy{adminEmail: adminEmail}
}

func (p *emailAdminPolicy) IsAdmin(email string) bool {
	return email != "" && email == p.adminEmail
}
