package addrhal

// MulticastScope describes the topological reach of an IPv6 multicast
// address, derived from the low nibble of its first segment.
type MulticastScope int

const (
	// Start at 1 to avoid zero-value confusion and make unknown scopes
	// explicit.
	ScopeInterfaceLocal MulticastScope = iota + 1
	ScopeLinkLocal
	ScopeRealmLocal
	ScopeAdminLocal
	ScopeSiteLocal
	ScopeOrganizationLocal
	ScopeGlobal
)

// String returns the canonical text representation of s.
func (s MulticastScope) String() string {
	switch s {
	case ScopeInterfaceLocal:
		return "interface-local"
	case ScopeLinkLocal:
		return "link-local"
	case ScopeRealmLocal:
		return "realm-local"
	case ScopeAdminLocal:
		return "admin-local"
	case ScopeSiteLocal:
		return "site-local"
	case ScopeOrganizationLocal:
		return "organization-local"
	case ScopeGlobal:
		return "global"
	default:
		return "unknown"
	}
}
