package inventory

import "testing"

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		role ActorRole
		want VisibilityMode
	}{
		{RoleOwner, VisibilityAll},
		{RoleSales, VisibilitySellable},
		{RoleBuyer, VisibilitySellableInstalled},
		{RoleUnauthenticated, VisibilitySellable},
		// The mapping must be total: an unknown role never widens visibility.
		{ActorRole("Admin"), VisibilitySellable},
		{ActorRole(""), VisibilitySellable},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := VisibilityFor(tt.role); got != tt.want {
				t.Errorf("VisibilityFor(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestParseActorRole(t *testing.T) {
	tests := []struct {
		raw  string
		want ActorRole
	}{
		{"Owner", RoleOwner},
		{"Sales", RoleSales},
		{"Buyer", RoleBuyer},
		{"owner", RoleUnauthenticated}, // case sensitive
		{"root", RoleUnauthenticated},
		{"", RoleUnauthenticated},
	}

	for _, tt := range tests {
		if got := ParseActorRole(tt.raw); got != tt.want {
			t.Errorf("ParseActorRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
