package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clubtrack/club-api/internal/api/handler/v1/request"
)

func TestCreatePaymentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     request.CreatePaymentRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  request.CreatePaymentRequest{PresenceID: 1, Amount: 25.50},
		},
		{
			name:    "zero amount",
			req:     request.CreatePaymentRequest{PresenceID: 1, Amount: 0},
			wantErr: true,
		},
		{
			name:    "negative amount",
			req:     request.CreatePaymentRequest{PresenceID: 1, Amount: -10},
			wantErr: true,
		},
		{
			name:    "missing presence",
			req:     request.CreatePaymentRequest{Amount: 25},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdatePolicyRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     request.UpdatePolicyRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  request.UpdatePolicyRequest{DiscountRate: 0.2, GuestThreshold: 3},
		},
		{
			name: "rate and threshold may both be zero",
			req:  request.UpdatePolicyRequest{DiscountRate: 0, GuestThreshold: 0},
		},
		{
			name: "rate of one is allowed",
			req:  request.UpdatePolicyRequest{DiscountRate: 1, GuestThreshold: 0},
		},
		{
			name:    "rate above one",
			req:     request.UpdatePolicyRequest{DiscountRate: 1.5},
			wantErr: true,
		},
		{
			name:    "negative rate",
			req:     request.UpdatePolicyRequest{DiscountRate: -0.1},
			wantErr: true,
		},
		{
			name:    "negative threshold",
			req:     request.UpdatePolicyRequest{GuestThreshold: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreatePresenceRequest_Validate(t *testing.T) {
	guestID := uint(2)

	tests := []struct {
		name    string
		req     request.CreatePresenceRequest
		wantErr bool
	}{
		{
			name: "member presence",
			req:  request.CreatePresenceRequest{ActivityID: 1, MemberID: 1},
		},
		{
			name: "guest presence",
			req:  request.CreatePresenceRequest{ActivityID: 1, MemberID: 1, GuestPersonID: &guestID},
		},
		{
			name:    "missing activity",
			req:     request.CreatePresenceRequest{MemberID: 1},
			wantErr: true,
		},
		{
			name:    "missing member",
			req:     request.CreatePresenceRequest{ActivityID: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateActivityRequest_Validate(t *testing.T) {
	valid := request.CreateActivityRequest{
		Description: "Spring hike",
		Date:        "2027-05-01",
		Region:      "North",
		Priority:    5,
		Price:       100,
	}
	assert.NoError(t, valid.Validate())

	badDate := valid
	badDate.Date = "01/05/2027"
	assert.Error(t, badDate.Validate())

	badPriority := valid
	badPriority.Priority = 11
	assert.Error(t, badPriority.Validate())
}
