// Package billing wraps the Midtrans Snap payment gateway behind a small
// interface so rent invoices can be paid online instead of by manual
// transfer proof alone.
package billing

import (
	"fmt"

	"kostify-backend/internal/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentLinker creates a hosted payment page for a pending rent payment.
type PaymentLinker interface {
	CreatePaymentLink(payment *models.Payment, tenant *models.Tenant) (string, error)
}

// SnapClient is the Midtrans-backed PaymentLinker.
type SnapClient struct {
	client snap.Client
}

func NewSnapClient(serverKey string, production bool) *SnapClient {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	c := &SnapClient{}
	c.client.New(serverKey, env)
	return c
}

// CreatePaymentLink registers the payment with Midtrans Snap and returns
// the redirect URL for the tenant to complete it.
func (c *SnapClient) CreatePaymentLink(payment *models.Payment, tenant *models.Tenant) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.ID,
			GrossAmt: int64(payment.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: tenant.FullName,
			Email: tenant.Email,
			Phone: tenant.Phone,
		},
	}

	resp, snapErr := c.client.CreateTransaction(req)
	if snapErr != nil {
		return "", fmt.Errorf("failed to create snap transaction: %w", snapErr)
	}
	return resp.RedirectURL, nil
}
