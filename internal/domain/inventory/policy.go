package inventory

// ActorRole is the closed set of roles the visibility policy understands.
// Unknown role strings map to RoleUnauthenticated rather than failing.
type ActorRole string

const (
	RoleOwner           ActorRole = "Owner"
	RoleSales           ActorRole = "Sales"
	RoleBuyer           ActorRole = "Buyer"
	RoleUnauthenticated ActorRole = "Unauthenticated"
)

// ParseActorRole maps a raw role string to an ActorRole.
func ParseActorRole(raw string) ActorRole {
	switch ActorRole(raw) {
	case RoleOwner:
		return RoleOwner
	case RoleSales:
		return RoleSales
	case RoleBuyer:
		return RoleBuyer
	default:
		return RoleUnauthenticated
	}
}

// VisibilityMode is the role-derived scope applied to a listing query.
type VisibilityMode string

const (
	// VisibilityAll includes sold and parts-pending vehicles.
	VisibilityAll VisibilityMode = "all"

	// VisibilitySellable is the base invariant: no sales transaction and no
	// linked part whose status differs from "Installed".
	VisibilitySellable VisibilityMode = "sellable"

	// VisibilitySellableInstalled is the consumer-facing subset of sellable:
	// additionally every attached part with a non-empty status must be
	// "Installed". Vehicles with no parts qualify.
	VisibilitySellableInstalled VisibilityMode = "sellable-and-installed"
)

// VisibilityFor derives the listing visibility mode for a role. The mapping
// is total and re-derived on every call; it must never be cached across
// requests.
func VisibilityFor(role ActorRole) VisibilityMode {
	switch role {
	case RoleOwner:
		return VisibilityAll
	case RoleBuyer:
		return VisibilitySellableInstalled
	default:
		return VisibilitySellable
	}
}
