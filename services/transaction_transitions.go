package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dontkeep/order-menu-backend/entity"
)

// Every transition is a conditional UPDATE guarded on the source status.
// Zero affected rows means a replay or a lost race; each caller decides
// whether that is an error or a no-op.

const autoCompleteAge = 48 * time.Hour

// WebhookIn is the gateway callback payload.
type WebhookIn struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
}

// HandleWebhook applies a payment-confirmation callback. Replays are
// no-ops: the guarded update matches nothing the second time and the row
// keeps its final status.
func (s *TransactionService) HandleWebhook(in *WebhookIn) (*entity.Transaction, error) {
	idStr := strings.TrimPrefix(in.OrderID, "ORDER-")
	if idStr == in.OrderID {
		return nil, ErrInvalidPayload
	}
	id64, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	trxID := uint(id64)

	if _, err := s.Repo.FindByID(trxID); err != nil {
		return nil, err
	}

	switch in.TransactionStatus {
	case "settlement":
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			_, err := s.Repo.UpdateStatusGuard(tx, trxID,
				[]entity.TransactionStatus{entity.StatusPending, entity.StatusOnProcess},
				map[string]any{
					"status":          entity.StatusPaid,
					"delivery_status": entity.DeliveryOnProcess,
				})
			return err
		})
	case "cancel", "deny", "expire":
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			_, err := s.Repo.UpdateStatusGuard(tx, trxID,
				[]entity.TransactionStatus{entity.StatusPending, entity.StatusOnProcess},
				map[string]any{"status": entity.StatusCancelled})
			return err
		})
	case "pending":
		// gateway still waiting, nothing to move
	default:
		return nil, fmt.Errorf("%w: unknown transaction status %q", ErrInvalidStatus, in.TransactionStatus)
	}
	if err != nil {
		return nil, err
	}

	return s.Repo.FindByID(trxID)
}

// UploadPaymentProof attaches a proof image to an owned pending order and
// moves it to on-process for admin review.
func (s *TransactionService) UploadPaymentProof(userID, trxID uint, filename string) error {
	trx, err := s.Repo.FindByID(trxID)
	if err != nil {
		return err
	}
	if trx.UserID != userID {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, trxID,
			[]entity.TransactionStatus{entity.StatusPending},
			map[string]any{"status": entity.StatusOnProcess})
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return s.Repo.SetPaymentProof(tx, trxID, filename)
	})
}

// AdminAccept approves a settled or proof-backed order. Stock was already
// decremented at checkout and stays untouched here.
func (s *TransactionService) AdminAccept(trxID uint) error {
	return s.guarded(trxID,
		[]entity.TransactionStatus{entity.StatusPaid, entity.StatusOnProcess},
		map[string]any{"status": entity.StatusAccepted})
}

func (s *TransactionService) AdminReject(trxID uint) error {
	return s.guarded(trxID,
		[]entity.TransactionStatus{entity.StatusPaid, entity.StatusOnProcess},
		map[string]any{"status": entity.StatusRejected})
}

// Confirm is the customer's receipt confirmation; only the owner may close
// their own order.
func (s *TransactionService) Confirm(userID, trxID uint) error {
	if err := s.ownedBy(userID, trxID); err != nil {
		return err
	}
	return s.guarded(trxID,
		[]entity.TransactionStatus{entity.StatusAccepted},
		map[string]any{
			"status":          entity.StatusCompleted,
			"delivery_status": entity.DeliveryDelivered,
		})
}

func (s *TransactionService) Dispute(userID, trxID uint) error {
	if err := s.ownedBy(userID, trxID); err != nil {
		return err
	}
	return s.guarded(trxID,
		[]entity.TransactionStatus{entity.StatusAccepted},
		map[string]any{"status": entity.StatusRejectedByUser})
}

// AdminSetStatus is the generic admin override, still bounded by the
// transition table.
func (s *TransactionService) AdminSetStatus(trxID uint, to entity.TransactionStatus) error {
	if !entity.ValidStatus(to) {
		return ErrInvalidStatus
	}
	trx, err := s.Repo.FindByID(trxID)
	if err != nil {
		return err
	}
	if !entity.CanTransition(trx.Status, to) {
		return ErrInvalidTransition
	}
	return s.guarded(trxID, []entity.TransactionStatus{trx.Status}, map[string]any{"status": to})
}

// AutoComplete closes orders stuck in accepted for two days or more. Safe
// to re-run from cron; already-swept rows no longer match.
func (s *TransactionService) AutoComplete() (int64, error) {
	cutoff := time.Now().Add(-autoCompleteAge)
	return s.Repo.SweepStuck(cutoff)
}

func (s *TransactionService) ownedBy(userID, trxID uint) error {
	trx, err := s.Repo.FindByID(trxID)
	if err != nil {
		return err
	}
	if trx.UserID != userID {
		return ErrForbidden
	}
	return nil
}

func (s *TransactionService) guarded(trxID uint, from []entity.TransactionStatus, updates map[string]any) error {
	if _, err := s.Repo.FindByID(trxID); errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, trxID, from, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
}
