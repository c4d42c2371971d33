package authorization

import (
	"context"

	"github.com/paywallet/paywallet-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// deniedAmount reproduces the sample backend rule: requests for exactly
// 403 are rejected
var deniedAmount = decimal.NewFromInt(403)

// StaticAuthorizer is a local domain.AuthorizationGateway used when no
// authorization service URL is configured. It approves every amount
// except the sample denied one.
type StaticAuthorizer struct{}

// NewStaticAuthorizer creates a new StaticAuthorizer instance
func NewStaticAuthorizer() StaticAuthorizer {
	return StaticAuthorizer{}
}

// Authorize applies the static sample rule
func (StaticAuthorizer) Authorize(ctx context.Context, amount decimal.Decimal) (domain.AuthorizationResult, error) {
	if amount.Equal(deniedAmount) {
		return domain.AuthorizationResult{
			IsAuthorized: false,
			Reason:       "operation not allowed",
		}, nil
	}

	return domain.AuthorizationResult{IsAuthorized: true}, nil
}
