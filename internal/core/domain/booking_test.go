package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestBookingStep_Order tests that the wizard steps are ordered
func TestBookingStep_Order(t *testing.T) {
	assert.Less(t, StepDate, StepParticipants)
	assert.Less(t, StepParticipants, StepContact)
	assert.Less(t, StepContact, StepPayment)
	assert.Less(t, StepPayment, StepConfirmation)
}

// TestBookingStep_String tests step identifiers
func TestBookingStep_String(t *testing.T) {
	assert.Equal(t, "date", StepDate.String())
	assert.Equal(t, "confirmation", StepConfirmation.String())
	assert.Equal(t, "unknown", BookingStep(99).String())
}

// TestContactInfo_Validate tests contact step validation
func TestContactInfo_Validate(t *testing.T) {
	tests := []struct {
		name    string
		contact ContactInfo
		wantErr bool
	}{
		{"complete", ContactInfo{FullName: "Ana Souza", Email: "ana@example.com"}, false},
		{"missing name", ContactInfo{Email: "ana@example.com"}, true},
		{"whitespace name", ContactInfo{FullName: "  ", Email: "ana@example.com"}, true},
		{"missing email", ContactInfo{FullName: "Ana Souza"}, true},
		{"malformed email", ContactInfo{FullName: "Ana Souza", Email: "ana.example.com"}, true},
		{"phone optional", ContactInfo{FullName: "Ana Souza", Email: "ana@example.com", Phone: ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBookingStepIncomplete)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestPaymentDetails_Validate tests payment step validation
func TestPaymentDetails_Validate(t *testing.T) {
	valid := PaymentDetails{
		CardholderName: "ANA M SOUZA",
		CardNumber:     "4111 1111 1111 1111",
		ExpiryMonth:    8,
		ExpiryYear:     2028,
	}

	tests := []struct {
		name    string
		mutate  func(*PaymentDetails)
		wantErr bool
	}{
		{"complete", func(p *PaymentDetails) {}, false},
		{"missing holder", func(p *PaymentDetails) { p.CardholderName = "" }, true},
		{"card too short", func(p *PaymentDetails) { p.CardNumber = "4111" }, true},
		{"card too long", func(p *PaymentDetails) { p.CardNumber = "41111111111111111111" }, true},
		{"card with letters", func(p *PaymentDetails) { p.CardNumber = "4111 1111 1111 111x" }, true},
		{"month zero", func(p *PaymentDetails) { p.ExpiryMonth = 0 }, true},
		{"month thirteen", func(p *PaymentDetails) { p.ExpiryMonth = 13 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)

			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBookingStepIncomplete)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestPaymentDetails_MaskedCard tests card masking for display
func TestPaymentDetails_MaskedCard(t *testing.T) {
	p := PaymentDetails{CardNumber: "4111 1111 1111 1111"}

	masked := p.MaskedCard()
	assert.Equal(t, "************1111", masked)
	assert.NotContains(t, masked[:len(masked)-4], "1")
}
