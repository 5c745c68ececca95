package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/response"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VipOrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateVipOrderRequest) (*response.VipOrderResponse, error)
	GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.VipOrderResponse, error)

	ListOrders(ctx context.Context, status string) ([]response.VipOrderResponse, error)
	UpdateOrderStatus(ctx context.Context, adminID uuid.UUID, orderID string, req *request.UpdateVipOrderStatusRequest) (*response.VipOrderResponse, error)
}

type vipOrderService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewVipOrderService(repo *repository.Repository, log *zap.Logger) VipOrderService {
	return &vipOrderService{
		repo: repo,
		log:  log.With(zap.String("service", "vip_order")),
		now:  time.Now,
	}
}

const orderNumberAttempts = 3

// CreateOrder prices the subscription from the store's country and records a pending order.
func (s *vipOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, req *request.CreateVipOrderRequest) (*response.VipOrderResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	storeID := uuid.MustParse(req.StoreID)
	store, err := s.repo.VipStore.FindByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("find store %s: %w", storeID, err)
	}
	if store == nil {
		return nil, notFound("المتجر غير موجود")
	}
	if store.UserID != userID {
		return nil, newError(ErrForbidden, "لا تملك صلاحية الاشتراك لهذا المتجر")
	}
	if store.IsApproved {
		return nil, newError(ErrConflict, "المتجر مفعل مسبقاً")
	}

	method := entity.PaymentMethod(req.PaymentMethod)
	if !store.Country.AcceptsPayment(method) {
		return nil, invalidInput("طريقة الدفع غير متاحة في هذه الدولة")
	}
	if method == entity.PaymentBankTransfer && store.Country.RequiresTransferProof && req.TransferProof == nil {
		return nil, invalidInput("يرجى إرفاق صورة إثبات التحويل")
	}

	var stripeID *string
	if req.StripePaymentID != nil && strings.TrimSpace(*req.StripePaymentID) != "" {
		trimmed := strings.TrimSpace(*req.StripePaymentID)
		stripeID = &trimmed
	}
	if method == entity.PaymentStripe && stripeID == nil {
		return nil, invalidInput("معرّف عملية الدفع مطلوب")
	}

	pending, err := s.repo.VipOrder.HasPendingForStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("check pending orders: %w", err)
	}
	if pending {
		return nil, newError(ErrConflict, "يوجد طلب قيد المراجعة لهذا المتجر")
	}

	now := s.now()
	order := &entity.VipOrder{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrderNumber:        utils.GenerateOrderNumber(now),
		UserID:             userID,
		StoreID:            storeID,
		CountryID:          store.CountryID,
		Amount:             store.Country.VipPrice,
		Currency:           store.Country.Currency,
		PaymentMethod:      method,
		TransferProofImage: req.TransferProof,
		StripePaymentID:    stripeID,
		Status:             entity.VipOrderPending,
	}

	for attempt := 1; ; attempt++ {
		err = s.repo.VipOrder.Create(ctx, order)
		if !errors.Is(err, repository.ErrOrderNumberTaken) || attempt == orderNumberAttempts {
			break
		}
		order.OrderNumber = utils.GenerateOrderNumber(now)
	}
	switch {
	case errors.Is(err, repository.ErrDuplicate):
		return nil, newError(ErrConflict, "يوجد طلب قيد المراجعة لهذا المتجر")
	case err != nil:
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("VIP order created",
		zap.String("order_number", order.OrderNumber),
		zap.String("store_id", storeID.String()),
		zap.Float64("amount", order.Amount),
		zap.String("currency", order.Currency))

	resp := response.VipOrderToResponse(order)
	return &resp, nil
}

func (s *vipOrderService) GetUserOrders(ctx context.Context, userID uuid.UUID) ([]response.VipOrderResponse, error) {
	orders, err := s.repo.VipOrder.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders of %s: %w", userID, err)
	}
	return response.VipOrdersToResponse(orders), nil
}

func (s *vipOrderService) ListOrders(ctx context.Context, status string) ([]response.VipOrderResponse, error) {
	var filter *entity.VipOrderStatus

	switch st := entity.VipOrderStatus(strings.TrimSpace(status)); st {
	case "", "all":
	case entity.VipOrderPending, entity.VipOrderApproved, entity.VipOrderRejected:
		filter = &st
	default:
		return nil, invalidInput("حالة الطلب غير صالحة")
	}

	orders, err := s.repo.VipOrder.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return response.VipOrdersToResponse(orders), nil
}

// UpdateOrderStatus records the admin decision. Approval activates the store and its owner.
func (s *vipOrderService) UpdateOrderStatus(ctx context.Context, adminID uuid.UUID, orderID string, req *request.UpdateVipOrderStatusRequest) (*response.VipOrderResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, notFound("الطلب غير موجود")
	}

	order, err := s.repo.VipOrder.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	if order == nil {
		return nil, notFound("الطلب غير موجود")
	}

	next := entity.VipOrderStatus(req.Status)
	if !order.Status.CanTransitionTo(next) {
		return nil, newError(ErrInvalidTransition, "تمت معالجة هذا الطلب مسبقاً")
	}

	now := s.now()
	order.Status = next
	order.AdminNotes = req.AdminNotes
	order.ProcessedAt = &now
	order.ProcessedBy = &adminID
	order.UpdatedAt = now

	if err := s.repo.VipOrder.Resolve(ctx, order); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, newError(ErrInvalidTransition, "تمت معالجة هذا الطلب مسبقاً")
		}
		return nil, fmt.Errorf("resolve order %s: %w", id, err)
	}

	s.log.Info("VIP order resolved",
		zap.String("order_number", order.OrderNumber),
		zap.String("status", string(next)),
		zap.String("admin_id", adminID.String()))

	resp := response.VipOrderToResponse(order)
	return &resp, nil
}
