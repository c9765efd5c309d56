package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dontkeep/order-menu-backend/entity"
)

// PaymentService builds Midtrans Snap requests and relays the opaque client
// token back. The gateway call carries Basic auth derived from the server
// key; everything that goes wrong upstream surfaces as ErrGateway.
type PaymentService struct {
	ServerKey string
	BaseURL   string
	Client    *http.Client
}

func NewPaymentService(serverKey, baseURL string) *PaymentService {
	return &PaymentService{
		ServerKey: serverKey,
		BaseURL:   baseURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

type SnapItem struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type snapRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	ItemDetails     []SnapItem `json:"item_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer_details"`
}

type snapResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// OrderID derives the gateway order id from the internal transaction id;
// the webhook reverses this mapping.
func OrderID(transactionID uint) string {
	return fmt.Sprintf("ORDER-%d", transactionID)
}

// RequestToken persists nothing; the caller has already committed the
// pending transaction.
func (s *PaymentService) RequestToken(trx *entity.Transaction, user *entity.User, items []SnapItem) (string, error) {
	if s.ServerKey == "" {
		return "", fmt.Errorf("%w: server key is not configured", ErrGateway)
	}

	var req snapRequest
	req.TransactionDetails.OrderID = OrderID(trx.ID)
	req.TransactionDetails.GrossAmount = trx.Total
	req.ItemDetails = items
	req.CustomerDetails.FirstName = user.FirstName
	req.CustomerDetails.LastName = user.LastName
	req.CustomerDetails.Email = user.Email
	req.CustomerDetails.Phone = trx.PhoneNumber

	body, err := json.Marshal(&req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequest(http.MethodPost, s.BaseURL+"/snap/v1/transactions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(s.ServerKey+":")))

	res, err := s.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: gateway returned %d", ErrGateway, res.StatusCode)
	}

	var out snapResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrGateway)
	}
	return out.Token, nil
}
