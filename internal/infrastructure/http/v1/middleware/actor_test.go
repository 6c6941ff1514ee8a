package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"dealerdesk/internal/domain/inventory"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestResolveRole(t *testing.T) {
	ownerToken := signedToken(t, testSecret, jwt.MapClaims{RoleClaim: "Owner"})
	buyerToken := signedToken(t, testSecret, jwt.MapClaims{RoleClaim: "Buyer"})
	unknownRoleToken := signedToken(t, testSecret, jwt.MapClaims{RoleClaim: "Admin"})
	noClaimToken := signedToken(t, testSecret, jwt.MapClaims{})
	wrongKeyToken := signedToken(t, []byte("other-secret"), jwt.MapClaims{RoleClaim: "Owner"})

	tests := []struct {
		name   string
		header string
		want   inventory.ActorRole
	}{
		{"no header", "", inventory.RoleUnauthenticated},
		{"not bearer", "Basic abc123", inventory.RoleUnauthenticated},
		{"garbage token", "Bearer not.a.jwt", inventory.RoleUnauthenticated},
		{"wrong signing key", "Bearer " + wrongKeyToken, inventory.RoleUnauthenticated},
		{"valid owner", "Bearer " + ownerToken, inventory.RoleOwner},
		{"valid buyer", "Bearer " + buyerToken, inventory.RoleBuyer},
		{"unknown role claim", "Bearer " + unknownRoleToken, inventory.RoleUnauthenticated},
		{"missing role claim", "Bearer " + noClaimToken, inventory.RoleUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRole(tt.header, testSecret); got != tt.want {
				t.Errorf("resolveRole() = %q, want %q", got, tt.want)
			}
		})
	}
}
