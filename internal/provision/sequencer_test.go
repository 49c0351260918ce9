package provision

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mailprov/mailprov/internal/config"
	"github.com/mailprov/mailprov/internal/platform/mailserver"
)

func testConfig() *config.Config {
	return &config.Config{
		Domain:         "clientA.com",
		OrgDisplayName: "Client A Inc.",
		AdminEmail:     "admin@clientA.com",
		AdminPassword:  "SecurePass123!",
		QuotaBytes:     10737418240,
		ServerURL:      "http://localhost:8080",
		SuperadminUser: "admin",
	}
}

// capturedRequest is one recorded POST /principal call.
type capturedRequest struct {
	path string
	body map[string]any
}

// newCaptureServer records every request and answers each with the next
// status in statuses (the last one repeats).
func newCaptureServer(t *testing.T, statuses ...int) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var calls []capturedRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		calls = append(calls, capturedRequest{path: r.URL.Path, body: body})

		status := statuses[min(len(calls)-1, len(statuses)-1)]
		w.WriteHeader(status)
		if status >= 400 {
			_, _ = w.Write([]byte(`{"error":"request failed"}`))
		} else {
			_, _ = w.Write([]byte(`{"data":1}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestRun_HappyPath(t *testing.T) {
	srv, calls := newCaptureServer(t, http.StatusOK)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), testConfig())
	require.NoError(t, err)
	assert.Equal(t, "client-a-inc.", seq.TenantID())

	outcomes := seq.Run(context.Background())

	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.True(t, o.Succeeded, "step %s should succeed", o.Step)
	}

	require.Len(t, *calls, 3)
	for _, call := range *calls {
		assert.Equal(t, "/api/principal", call.path)
	}

	tenant := (*calls)[0].body
	assert.Equal(t, "tenant", tenant["type"])
	assert.Equal(t, "client-a-inc.", tenant["name"])
	assert.Equal(t, "Client A Inc.", tenant["description"])
	assert.Equal(t, float64(10737418240), tenant["quota"])
	assert.NotContains(t, tenant, "brandName")

	domain := (*calls)[1].body
	assert.Equal(t, "domain", domain["type"])
	assert.Equal(t, "clientA.com", domain["name"])
	assert.Equal(t, "client-a-inc.", domain["tenant"])

	admin := (*calls)[2].body
	assert.Equal(t, "individual", admin["type"])
	assert.Equal(t, "admin", admin["name"])
	assert.Equal(t, []any{"SecurePass123!"}, admin["secrets"])
	assert.Equal(t, []any{"admin@clientA.com"}, admin["emails"])
	assert.Equal(t, "client-a-inc.", admin["tenant"])
	assert.Equal(t, []any{"tenant-admin"}, admin["roles"])
}

func TestRun_ContinuesPastTenantFailure(t *testing.T) {
	// First call fails hard, the rest succeed.
	srv, calls := newCaptureServer(t, http.StatusInternalServerError, http.StatusOK, http.StatusOK)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), testConfig())
	require.NoError(t, err)

	outcomes := seq.Run(context.Background())

	require.Len(t, *calls, 3, "domain and admin steps must still be attempted")
	require.Len(t, outcomes, 3)

	assert.False(t, outcomes[0].Succeeded)
	assert.Equal(t, http.StatusInternalServerError, outcomes[0].HTTPStatus)
	assert.False(t, outcomes[0].AlreadyExists)
	assert.Contains(t, outcomes[0].Message, "status 500")

	assert.True(t, outcomes[1].Succeeded)
	assert.True(t, outcomes[2].Succeeded)
}

func TestRun_AllStepsFail(t *testing.T) {
	srv, calls := newCaptureServer(t, http.StatusBadGateway)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), testConfig())
	require.NoError(t, err)

	outcomes := seq.Run(context.Background())

	assert.Len(t, *calls, 3)
	for _, o := range outcomes {
		assert.False(t, o.Succeeded)
	}
}

func TestRun_AlreadyExistsClassification(t *testing.T) {
	srv, _ := newCaptureServer(t, http.StatusConflict, http.StatusOK, http.StatusOK)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), testConfig())
	require.NoError(t, err)

	outcomes := seq.Run(context.Background())

	require.Len(t, outcomes, 3)
	assert.False(t, outcomes[0].Succeeded)
	assert.True(t, outcomes[0].AlreadyExists)
	assert.Equal(t, http.StatusConflict, outcomes[0].HTTPStatus)
}

func TestRun_TransportFailureRecorded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), testConfig())
	require.NoError(t, err)

	outcomes := seq.Run(context.Background())

	require.Len(t, outcomes, 3)
	for _, o := range outcomes {
		assert.False(t, o.Succeeded)
		assert.Zero(t, o.HTTPStatus)
		assert.NotEmpty(t, o.Message)
	}
}

func TestNewSequencer_Branding(t *testing.T) {
	cfg := testConfig()
	cfg.BrandName = "Client A Mail"
	cfg.BrandLogoURL = "https://clienta.com/logo.svg"
	cfg.BrandTheme = "dark"

	srv, calls := newCaptureServer(t, http.StatusOK)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), cfg)
	require.NoError(t, err)
	seq.Run(context.Background())

	tenant := (*calls)[0].body
	assert.Equal(t, "Client A Mail", tenant["brandName"])
	assert.Equal(t, "https://clienta.com/logo.svg", tenant["brandLogoUrl"])
	assert.Equal(t, "dark", tenant["brandTheme"])
}

func TestNewSequencer_HashPassword(t *testing.T) {
	cfg := testConfig()
	cfg.HashPassword = true

	srv, calls := newCaptureServer(t, http.StatusOK)

	seq, err := NewSequencer(mailserver.NewClient(srv.URL, "admin", "secret"), cfg)
	require.NoError(t, err)
	seq.Run(context.Background())

	admin := (*calls)[2].body
	secrets, ok := admin["secrets"].([]any)
	require.True(t, ok)
	require.Len(t, secrets, 1)

	hashed, ok := secrets[0].(string)
	require.True(t, ok)
	assert.NotEqual(t, "SecurePass123!", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("SecurePass123!")))
}
