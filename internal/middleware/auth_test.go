package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crisisAlert/internal/domain"
	"crisisAlert/pkg/e"
)

const (
	testSecret = "secret"
	testIssuer = "crisis-alert"
)

func TestParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	raw, err := IssueToken(testSecret, testIssuer, domain.Actor{UserID: 7, Role: domain.RoleAdmin}, time.Minute)
	require.NoError(t, err)

	actor, err := ParseToken(testSecret, testIssuer, raw)
	require.NoError(t, err)
	assert.Equal(t, domain.Actor{UserID: 7, Role: domain.RoleAdmin}, actor)
}

func TestParseToken_Rejects(t *testing.T) {
	t.Parallel()

	good := domain.Actor{UserID: 7, Role: domain.RoleUser}
	expired, _ := IssueToken(testSecret, testIssuer, good, -time.Minute)
	wrongIssuer, _ := IssueToken(testSecret, "someone-else", good, time.Minute)
	wrongSecret, _ := IssueToken("other", testIssuer, good, time.Minute)
	noUser, _ := IssueToken(testSecret, testIssuer, domain.Actor{Role: domain.RoleUser}, time.Minute)
	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 7}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"expired":      expired,
		"wrong issuer": wrongIssuer,
		"wrong secret": wrongSecret,
		"no user":      noUser,
		"alg none":     none,
		"garbage":      "abc.def.ghi",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(testSecret, testIssuer, raw)
			assert.ErrorIs(t, err, e.ErrUnauthorized)
		})
	}
}

func TestParseToken_SubjectFallbackAndDefaultRole(t *testing.T) {
	t.Parallel()

	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "42", Issuer: testIssuer}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	actor, err := ParseToken(testSecret, testIssuer, raw)
	require.NoError(t, err)
	assert.Equal(t, int64(42), actor.UserID)
	assert.Equal(t, domain.RoleUser, actor.Role)
}

func serve(t *testing.T, h http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestAuthenticateAndRequireAdmin(t *testing.T) {
	t.Parallel()

	var seen domain.Actor
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = ActorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	auth := Authenticate(testSecret, testIssuer, discardLogger())
	adminOnly := auth(RequireAdmin(final))

	admin, _ := IssueToken(testSecret, testIssuer, domain.Actor{UserID: 1, Role: domain.RoleSuperAdmin}, time.Minute)
	user, _ := IssueToken(testSecret, testIssuer, domain.Actor{UserID: 2, Role: domain.RoleUser}, time.Minute)

	assert.Equal(t, http.StatusUnauthorized, serve(t, adminOnly, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, adminOnly, "broken").Code)
	assert.Equal(t, http.StatusForbidden, serve(t, adminOnly, user).Code)

	rr := serve(t, adminOnly, admin)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, int64(1), seen.UserID)

	rr = serve(t, auth(final), user)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, domain.RoleUser, seen.Role)
}

func TestRequireAdmin_WithoutActor(t *testing.T) {
	t.Parallel()

	h := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("must not reach handler")
	}))
	assert.Equal(t, http.StatusUnauthorized, serve(t, h, "").Code)
}
