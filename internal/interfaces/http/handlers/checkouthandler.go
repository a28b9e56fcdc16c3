package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	checkoutUsecases "github.com/coachfit-inc/coachfit/internal/application/checkout/usecases"
	"github.com/coachfit-inc/coachfit/internal/interfaces/http/middleware"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
	"github.com/coachfit-inc/coachfit/internal/shared/utils"
)

// Messages shown on the checkout fail page, keyed by the gateway's error code.
const (
	MsgFailUserCancel    = "결제가 취소되었습니다."
	MsgFailProcessing    = "결제 처리에 실패했습니다."
	MsgFailInvalidAmount = "결제 금액이 유효하지 않습니다."
	MsgFailDefault       = "결제 처리 중 오류가 발생했습니다. 다시 시도해주세요."
)

var failMessages = map[string]string{
	"USER_CANCEL":               MsgFailUserCancel,
	"PAYMENT_PROCESSING_FAILED": MsgFailProcessing,
	"INVALID_PAYMENT_AMOUNT":    MsgFailInvalidAmount,
}

type CheckoutHandler struct {
	prepareOrderUC     *checkoutUsecases.PrepareOrderUseCase
	approveOrderUC     *checkoutUsecases.ApproveOrderUseCase
	getOrderUC         *checkoutUsecases.GetOrderUseCase
	listUserOrdersUC   *checkoutUsecases.ListUserOrdersUseCase
	checkEligibilityUC *checkoutUsecases.CheckEligibilityUseCase
	logger             logger.Interface
}

func NewCheckoutHandler(
	prepareOrderUC *checkoutUsecases.PrepareOrderUseCase,
	approveOrderUC *checkoutUsecases.ApproveOrderUseCase,
	getOrderUC *checkoutUsecases.GetOrderUseCase,
	listUserOrdersUC *checkoutUsecases.ListUserOrdersUseCase,
	checkEligibilityUC *checkoutUsecases.CheckEligibilityUseCase,
	logger logger.Interface,
) *CheckoutHandler {
	return &CheckoutHandler{
		prepareOrderUC:     prepareOrderUC,
		approveOrderUC:     approveOrderUC,
		getOrderUC:         getOrderUC,
		listUserOrdersUC:   listUserOrdersUC,
		checkEligibilityUC: checkEligibilityUC,
		logger:             logger,
	}
}

type PrepareOrderRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
}

type PrepareOrderResponse struct {
	OrderID    string `json:"order_id"`
	PaymentKey string `json:"payment_key,omitempty"`
	Amount     int64  `json:"amount"`
	Title      string `json:"title"`
	IsFree     bool   `json:"is_free"`
}

// PrepareOrder creates a ready payment order for a paid program, or activates
// the subscription immediately for a free one.
func (h *CheckoutHandler) PrepareOrder(c *gin.Context) {
	var req PrepareOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := checkoutUsecases.PrepareOrderCommand{
		UserID:    middleware.UserIDFromContext(c),
		ProgramID: req.ProgramID,
	}

	result, err := h.prepareOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := PrepareOrderResponse{
		OrderID:    result.OrderID,
		PaymentKey: result.PaymentKey,
		Amount:     result.Amount,
		Title:      result.Title,
		IsFree:     result.IsFree,
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

type ApproveOrderRequest struct {
	OrderID    string `json:"order_id" binding:"required"`
	PaymentKey string `json:"payment_key" binding:"required"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
}

type ApproveOrderResponse struct {
	OrderID        string `json:"order_id"`
	SubscriptionID string `json:"subscription_id"`
	ProgramID      string `json:"program_id"`
	Amount         int64  `json:"amount"`
	PaymentMethod  string `json:"payment_method"`
	ApprovedAt     string `json:"approved_at"`
}

// ApproveOrder confirms the payment with the gateway and activates the
// subscription. Safe to retry; replays answer 409.
func (h *CheckoutHandler) ApproveOrder(c *gin.Context) {
	var req ApproveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	cmd := checkoutUsecases.ApproveOrderCommand{
		UserID:     middleware.UserIDFromContext(c),
		OrderID:    req.OrderID,
		PaymentKey: req.PaymentKey,
		Amount:     req.Amount,
	}

	result, err := h.approveOrderUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := ApproveOrderResponse{
		OrderID:        result.OrderID,
		SubscriptionID: result.SubscriptionID,
		ProgramID:      result.ProgramID,
		Amount:         result.Amount,
		PaymentMethod:  result.PaymentMethod,
		ApprovedAt:     result.ApprovedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// GetOrder serves the success page: the order joined with its program title.
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	q := checkoutUsecases.GetOrderQuery{
		UserID:  middleware.UserIDFromContext(c),
		OrderID: c.Param("orderID"),
	}

	summary, err := h.getOrderUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if summary == nil {
		utils.ErrorResponse(c, http.StatusNotFound, checkoutUsecases.MsgOrderNotFound)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// ListMyOrders returns the authenticated user's payment orders, newest first.
func (h *CheckoutHandler) ListMyOrders(c *gin.Context) {
	q := checkoutUsecases.ListUserOrdersQuery{
		UserID: middleware.UserIDFromContext(c),
	}

	summaries, err := h.listUserOrdersUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summaries)
}

// CheckEligibility tells the storefront whether the buy button should work.
// Works for anonymous visitors; they only skip the duplicate check.
func (h *CheckoutHandler) CheckEligibility(c *gin.Context) {
	q := checkoutUsecases.CheckEligibilityQuery{
		UserID:    middleware.UserIDFromContext(c),
		ProgramID: c.Param("programID"),
	}

	result, err := h.checkEligibilityUC.Execute(c.Request.Context(), q)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type CheckoutSuccessResponse struct {
	OrderID    string                         `json:"order_id"`
	PaymentKey string                         `json:"payment_key"`
	Amount     int64                          `json:"amount"`
	Order      *checkoutUsecases.OrderSummary `json:"order,omitempty"`
}

// CheckoutSuccess serves the gateway's success redirect: it echoes the
// redirect params and attaches the stored order so the page can render before
// the approval call lands. Nothing is approved here.
func (h *CheckoutHandler) CheckoutSuccess(c *gin.Context) {
	orderID := c.Query("orderId")
	paymentKey := c.Query("paymentKey")
	amount, _ := strconv.ParseInt(c.Query("amount"), 10, 64)

	response := CheckoutSuccessResponse{
		OrderID:    orderID,
		PaymentKey: paymentKey,
		Amount:     amount,
	}

	summary, err := h.getOrderUC.Execute(c.Request.Context(), checkoutUsecases.GetOrderQuery{
		UserID:  middleware.UserIDFromContext(c),
		OrderID: orderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	response.Order = summary

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

type CheckoutFailResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	OrderID string `json:"order_id,omitempty"`
}

// CheckoutFail translates the gateway's fail redirect into a user-facing
// message. The gateway never charged, so there is nothing to roll back.
func (h *CheckoutHandler) CheckoutFail(c *gin.Context) {
	code := c.Query("code")
	orderID := c.Query("orderId")

	message, ok := failMessages[code]
	if !ok {
		message = MsgFailDefault
	}

	h.logger.Infow("checkout failed at gateway",
		"code", code,
		"order_id", orderID,
		"gateway_message", c.Query("message"))

	utils.SuccessResponse(c, http.StatusOK, "", CheckoutFailResponse{
		Code:    code,
		Message: message,
		OrderID: orderID,
	})
}
