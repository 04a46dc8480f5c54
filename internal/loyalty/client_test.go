package loyalty

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"loyalty_admin/internal/config"
	"loyalty_admin/internal/gql"
	"loyalty_admin/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	cfg := config.Config{
		APIURL:    srv.URL,
		TokenFile: filepath.Join(t.TempDir(), "tokens.json"),
	}
	store := session.NewStore(cfg, zap.NewNop())
	return NewClient(gql.NewClient(cfg, store, zap.NewNop()), zap.NewNop())
}

func respond(t *testing.T, w http.ResponseWriter, operation string, payload any) {
	t.Helper()
	body := map[string]any{"data": map[string]any{operation: payload}}
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestLogin_Success(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "login", map[string]any{
			"__typename":   "LoginSuccess",
			"accessToken":  "AT1",
			"refreshToken": "RT1",
		})
	})

	res, err := client.Login(context.Background(), "admin@fuel.test", "pass123")
	require.NoError(t, err)
	require.NotNil(t, res.Success)
	assert.Nil(t, res.Failure)
	assert.Equal(t, "AT1", res.Success.AccessToken)
	assert.Equal(t, "RT1", res.Success.RefreshToken)
	assert.Equal(t, "admin@fuel.test", got.Variables["email"])
	assert.Equal(t, "pass123", got.Variables["password"])
}

func TestLogin_Failure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, "login", map[string]any{
			"__typename": "LoginError",
			"message":    "Invalid credentials",
			"type":       "invalid_credentials",
		})
	})

	res, err := client.Login(context.Background(), "admin@fuel.test", "wrong")
	require.NoError(t, err)
	require.NotNil(t, res.Failure)
	assert.Nil(t, res.Success)
	assert.Equal(t, "invalid_credentials", res.Failure.Type)
}

func TestHealthCheck(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, "healthCheck", "healthy")
	})

	status, err := client.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status)
}

func TestGasStations_SendsCursorAndSearch(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "gasStations", map[string]any{
			"__typename": "GasStationPagination",
			"nextCursor": "c3",
			"prevCursor": "c1",
			"total":      250,
			"items": []map[string]any{
				{"id": "gs-1", "name": "North Plaza", "latitude": "19.4", "longitude": "-99.1"},
			},
		})
	})

	next := "c2"
	res, err := client.GasStations(context.Background(), gql.Cursor{NextCursor: &next}, "plaza")
	require.NoError(t, err)

	assert.Equal(t, "c2", got.Variables["nextCursor"])
	assert.Nil(t, got.Variables["prevCursor"])
	assert.Equal(t, "plaza", got.Variables["search"])

	require.True(t, res.OK())
	assert.Equal(t, 250, res.Value.Total)
	require.Len(t, res.Value.Items, 1)
	assert.Equal(t, "North Plaza", res.Value.Items[0].Name)
	assert.Equal(t, "19.4", res.Value.Items[0].Latitude)
	assert.Equal(t, "-99.1", res.Value.Items[0].Longitude)
	assert.True(t, res.Value.HasNext())
	assert.True(t, res.Value.HasPrevious())
}

func TestUsers_EmptySearchIsStillSent(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "users", map[string]any{
			"__typename": "UserPagination",
			"total":      0,
			"items":      []any{},
		})
	})

	_, err := client.Users(context.Background(), gql.Cursor{}, "")
	require.NoError(t, err)
	require.Contains(t, got.Variables, "search")
	assert.Equal(t, "", got.Variables["search"])
}

func TestCustomerLevels_OmitsSearch(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "customerLevels", map[string]any{
			"__typename": "CustomerLevelPagination",
			"total":      0,
			"items":      []any{},
		})
	})

	_, err := client.CustomerLevels(context.Background(), gql.Cursor{})
	require.NoError(t, err)
	assert.NotContains(t, got.Variables, "search")
}

func TestProducts_ValidationVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, "products", map[string]any{
			"__typename": "InputValidationError",
			"errors": []map[string]any{
				{"field": "limit", "type": "value_error", "message": "must be below 250"},
			},
		})
	})

	res, err := client.Products(context.Background(), gql.Cursor{}, "")
	require.NoError(t, err)
	assert.False(t, res.OK())
	require.NotNil(t, res.Validation)
	assert.Equal(t, "limit", res.Validation.Errors[0].Field)
}

func TestGetBenefitByID(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "getBenefitById", map[string]any{
			"__typename": "Benefit",
			"id":         "b-9",
			"name":       "Free Coffee",
			"type":       "physical",
			"frequency":  "daily",
			"createdAt":  "2026-01-05T10:00:00Z",
		})
	})

	res, err := client.GetBenefitByID(context.Background(), "b-9")
	require.NoError(t, err)
	assert.Equal(t, "b-9", got.Variables["id"])
	require.True(t, res.OK())
	assert.Equal(t, "Free Coffee", res.Value.Name)
	assert.Equal(t, BenefitPhysical, res.Value.Type)
}

func TestGetMarginByID_GeneralVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, "getGasStationMarginById", map[string]any{
			"__typename": "GeneralError",
			"code":       404,
			"message":    "Margin not found",
		})
	})

	res, err := client.GetMarginByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, res.OK())
	require.NotNil(t, res.General)
	assert.Equal(t, 404, res.General.Code)
}

func TestAddProduct_SendsInput(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "addProduct", map[string]any{
			"__typename": "Product",
			"id":         "p-1",
			"name":       "Premium",
			"codename":   "premium",
			"isActive":   true,
		})
	})

	res, err := client.AddProduct(context.Background(), AddProductInput{Name: "Premium", Codename: "premium"})
	require.NoError(t, err)

	input, ok := got.Variables["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Premium", input["name"])
	assert.Equal(t, "premium", input["codename"])

	require.True(t, res.OK())
	assert.Equal(t, "p-1", res.Value.ID)
}

func TestUpdateUser_SendsIDAndPartialInput(t *testing.T) {
	var got capturedRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(t, w, "updateUser", map[string]any{
			"__typename": "User",
			"id":         "u-7",
			"firstName":  "Ana",
			"isActive":   false,
		})
	})

	active := false
	res, err := client.UpdateUser(context.Background(), "u-7", UpdateUserInput{IsActive: &active})
	require.NoError(t, err)

	assert.Equal(t, "u-7", got.Variables["id"])
	input, ok := got.Variables["input"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, input["isActive"])
	assert.NotContains(t, input, "firstName")

	require.True(t, res.OK())
	assert.False(t, res.Value.IsActive)
}

func TestUpdateBenefit_ValidationVariant(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, "updateBenefit", map[string]any{
			"__typename": "InputValidationError",
			"errors": []map[string]any{
				{"field": "stock", "type": "value_error", "message": "must be positive"},
			},
		})
	})

	res, err := client.UpdateBenefit(context.Background(), "b-1", UpdateBenefitInput{})
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.ErrorContains(t, res.Err(), "must be positive")
}
