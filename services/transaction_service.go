package services

import (
	"log"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
	"github.com/dontkeep/order-menu-backend/repository"
)

type TransactionService struct {
	DB       *gorm.DB
	Repo     *repository.TransactionRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository

	Shipping *ShippingService
	Payment  *PaymentService
}

func NewTransactionService(
	db *gorm.DB,
	repo *repository.TransactionRepository,
	cartRepo *repository.CartRepository,
	menuRepo *repository.MenuRepository,
	userRepo *repository.UserRepository,
	shipping *ShippingService,
	payment *PaymentService,
) *TransactionService {
	return &TransactionService{
		DB:       db,
		Repo:     repo,
		CartRepo: cartRepo,
		MenuRepo: menuRepo,
		UserRepo: userRepo,
		Shipping: shipping,
		Payment:  payment,
	}
}

type CheckoutIn struct {
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	DistrictID  uint   `json:"districtId"`
}

type CheckoutOut struct {
	Transaction  *entity.Transaction `json:"transaction"`
	PaymentToken string              `json:"paymentToken,omitempty"`
	GatewayError string              `json:"gatewayError,omitempty"`
}

// Checkout converts the cart into a pending transaction. Stock decrement,
// transaction row, detail snapshots and cart clear commit or roll back as
// one unit; the gateway token request happens only after the commit.
func (s *TransactionService) Checkout(userID uint, in *CheckoutIn) (*CheckoutOut, error) {
	cartItems, err := s.CartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	deliveryCharge, err := s.Shipping.ChargeFor(in.DistrictID)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, it := range cartItems {
		subtotal += int64(it.Qty) * it.Menu.Price
	}

	trx := &entity.Transaction{
		UserID:         userID,
		Address:        in.Address,
		PhoneNumber:    in.PhoneNumber,
		DeliveryCharge: deliveryCharge,
		Total:          subtotal + deliveryCharge,
		Status:         entity.StatusPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range cartItems {
			affected, err := s.MenuRepo.DecrementStock(tx, it.MenuID, it.Qty)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}

		if err := s.Repo.Create(tx, trx); err != nil {
			return err
		}

		for _, it := range cartItems {
			detail := &entity.TransactionDetail{
				TransactionID: trx.ID,
				MenuID:        it.MenuID,
				Qty:           it.Qty,
				Price:         it.Menu.Price, // snapshot, immutable from here on
			}
			if err := s.Repo.CreateDetail(tx, detail); err != nil {
				return err
			}
			trx.Details = append(trx.Details, *detail)
		}

		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	out := &CheckoutOut{Transaction: trx}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		out.GatewayError = err.Error()
		return out, nil
	}

	items := make([]SnapItem, 0, len(cartItems)+1)
	for _, it := range cartItems {
		items = append(items, SnapItem{
			ID:       OrderID(trx.ID) + "-" + it.Menu.Name,
			Price:    it.Menu.Price,
			Quantity: it.Qty,
			Name:     it.Menu.Name,
		})
	}
	if deliveryCharge > 0 {
		items = append(items, SnapItem{
			ID: "DELIVERY", Price: deliveryCharge, Quantity: 1, Name: "Delivery charge",
		})
	}

	token, err := s.Payment.RequestToken(trx, user, items)
	if err != nil {
		// the order exists either way; the client can retry payment later
		log.Printf("payment token for transaction %d failed: %v", trx.ID, err)
		out.GatewayError = err.Error()
		return out, nil
	}
	out.PaymentToken = token
	return out, nil
}

func (s *TransactionService) ListForUser(userID uint) ([]entity.Transaction, error) {
	return s.Repo.ListForUser(userID)
}

// DetailFor returns the transaction if the caller owns it or holds a staff
// role.
func (s *TransactionService) DetailFor(userID uint, role string, trxID uint) (*entity.Transaction, error) {
	if role == entity.RoleAdmin || role == entity.RoleEmployee {
		return s.Repo.FindByID(trxID)
	}
	return s.Repo.FindForUser(userID, trxID)
}

func (s *TransactionService) ListAll(status entity.TransactionStatus, page, limit int) ([]entity.Transaction, int64, error) {
	if status != "" && !entity.ValidStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.Repo.ListAll(status, page, limit)
}
