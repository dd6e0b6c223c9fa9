package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golasco/golasco/internal/domain"
)

func TestClientLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "amit@example.com", req.Email)

		json.NewEncoder(w).Encode(AuthResponse{
			AccessToken: "tok-123",
			TokenType:   "bearer",
			User: &domain.Identity{
				ID:       "u1",
				FullName: "Amit Shah",
				Email:    "amit@example.com",
				Role:     domain.RoleCustomer,
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	auth, err := client.Login(context.Background(), LoginRequest{
		Email:    "amit@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", auth.AccessToken)
	require.NotNil(t, auth.User)
	assert.Equal(t, domain.RoleCustomer, auth.User.Role)
}

func TestClientLoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"detail":"Incorrect email or password"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), LoginRequest{Email: "x@y.z", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", DetailOf(err))
}

func TestClientSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok-abc")
	_, err := client.MyLeads(context.Background())
	require.NoError(t, err)
}

func TestClientListPropertiesFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties", r.URL.Path)
		assert.Equal(t, "Pune", r.URL.Query().Get("city"))
		assert.Equal(t, "apartment", r.URL.Query().Get("type"))
		assert.Equal(t, "5000000", r.URL.Query().Get("max_price"))
		fmt.Fprint(w, `[{"id":"p1","title":"2BHK in Baner","price":4500000,"status":"available"}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	properties, err := client.ListProperties(context.Background(), PropertyFilter{
		City:         "Pune",
		PropertyType: "apartment",
		MaxPrice:     5000000,
	})
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "2BHK in Baner", properties[0].Title)
	assert.Equal(t, domain.PropertyAvailable, properties[0].Status)
}

func TestClientListPropertiesNoFilter(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListProperties(context.Background(), PropertyFilter{})
	require.NoError(t, err)
}

func TestClientCreateBookingOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leads/booking/create-order", r.URL.Path)

		var req BookingOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "p1", req.PropertyID)
		assert.InDelta(t, 200000, req.Amount, 0.01)

		fmt.Fprint(w, `{"order_id":"order_9A33XWu170gUtm","amount":200000,"currency":"INR","razorpay_key":"rzp_test_key","lead_id":"lead-7"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")
	order, err := client.CreateBookingOrder(context.Background(), BookingOrderRequest{
		PropertyID: "p1",
		Amount:     200000,
	})
	require.NoError(t, err)
	assert.Equal(t, "order_9A33XWu170gUtm", order.OrderID)
	assert.Equal(t, "lead-7", order.LeadID)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "rzp_test_key", order.CheckoutKey)
}

func TestClientCreateLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/leads", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "p1", req["property_id"])
		assert.Equal(t, "site_visit", req["type"])
		assert.Equal(t, "Weekend preferred", req["message"])

		fmt.Fprint(w, `{"id":"lead-3","property_id":"p1","type":"site_visit","status":"new"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")
	lead, err := client.CreateLead(context.Background(), LeadRequest{
		PropertyID: "p1",
		Type:       domain.LeadSiteVisit,
		Message:    "Weekend preferred",
	})
	require.NoError(t, err)
	assert.Equal(t, "lead-3", lead.ID)
	assert.Equal(t, domain.LeadSiteVisit, lead.Type)
}

func TestClientVerifyBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "lead-7", req["lead_id"])
		assert.Equal(t, "order_9A33XWu170gUtm", req["razorpay_order_id"])
		assert.Equal(t, "pay_29QQoUBi66xm2f", req["razorpay_payment_id"])
		assert.NotEmpty(t, req["razorpay_signature"])
		fmt.Fprint(w, `{"status":"verified"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")
	err := client.VerifyBooking(context.Background(), BookingVerification{
		LeadID:            "lead-7",
		ProviderOrderID:   "order_9A33XWu170gUtm",
		ProviderPaymentID: "pay_29QQoUBi66xm2f",
		ProviderSignature: "sig",
	})
	require.NoError(t, err)
}

func TestClientGetDashboardPerRole(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		switch r.URL.Path {
		case "/api/dashboard/customer":
			fmt.Fprint(w, `{"total_leads":3,"completed_bookings":1,"leads":[]}`)
		case "/api/dashboard/franchise":
			fmt.Fprint(w, `{"total_properties":12,"booked_properties":4,"total_booking_amount":1800000}`)
		case "/api/dashboard/super-admin":
			fmt.Fprint(w, `{"total_users":40,"pending_users":[{"id":"u9","email":"a@b.c","role":"agent"}]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")

	dash, err := client.GetDashboard(context.Background(), domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "/api/dashboard/customer", gotPath)
	require.NotNil(t, dash.Customer)
	assert.Equal(t, 3, dash.Customer.TotalLeads)
	assert.Nil(t, dash.Franchise)

	dash, err = client.GetDashboard(context.Background(), domain.RoleFranchiseOwner)
	require.NoError(t, err)
	assert.Equal(t, "/api/dashboard/franchise", gotPath)
	require.NotNil(t, dash.Franchise)
	assert.InDelta(t, 1800000, dash.Franchise.TotalBookingAmount, 0.01)

	dash, err = client.GetDashboard(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "/api/dashboard/super-admin", gotPath)
	require.NotNil(t, dash.Admin)
	require.Len(t, dash.Admin.PendingUsers, 1)
	assert.Equal(t, domain.RoleAgent, dash.Admin.PendingUsers[0].Role)
}

func TestClientVerifyPendingUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/super-admin/users/u9/verify", r.URL.Path)
		fmt.Fprint(w, `{"id":"u9","email":"a@b.c","role":"agent","is_verified":true}`)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	client.SetToken("tok")
	identity, err := client.VerifyPendingUser(context.Background(), "u9")
	require.NoError(t, err)
	assert.True(t, identity.Verified)
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"fastapi detail", `{"detail":"Property not found"}`, "Property not found"},
		{"error field", `{"error":"boom"}`, "boom"},
		{"message field", `{"message":"try again"}`, "try again"},
		{"structured detail", `{"detail":[{"loc":["body","email"]}]}`, `[{"loc":["body","email"]}]`},
		{"raw body", `gateway timeout`, "gateway timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail([]byte(tt.body)))
		})
	}
}
