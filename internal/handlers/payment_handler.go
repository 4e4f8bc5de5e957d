package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/export"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/httpresp"
	ucPayment "github.com/BruksfildServices01/zaban-academy/internal/usecase/payment"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PaymentHandler struct {
	create       *ucPayment.CreatePayment
	list         *ucPayment.ListPayments
	listMy       *ucPayment.ListMyPayments
	updateStatus *ucPayment.UpdatePaymentStatus
	export       *ucPayment.ExportPayments
}

func NewPaymentHandler(
	create *ucPayment.CreatePayment,
	list *ucPayment.ListPayments,
	listMy *ucPayment.ListMyPayments,
	updateStatus *ucPayment.UpdatePaymentStatus,
	exportUC *ucPayment.ExportPayments,
) *PaymentHandler {
	return &PaymentHandler{
		create:       create,
		list:         list,
		listMy:       listMy,
		updateStatus: updateStatus,
		export:       exportUC,
	}
}

type CreatePaymentRequest struct {
	ContentID    uint   `json:"contentId"`
	Amount       int64  `json:"amount"`
	TrackingCode string `json:"trackingCode"`
}

type UpdatePaymentRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.list.Execute(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) ListMine(c *gin.Context) {
	payments, err := h.listMy.Execute(c.Request.Context(), principal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, payments)
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), ucPayment.CreatePaymentInput{
		UserID:       principal(c).UserID,
		ContentID:    req.ContentID,
		Amount:       req.Amount,
		TrackingCode: req.TrackingCode,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.ToPaymentDTO(*p))
}

func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	var req UpdatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.updateStatus.Execute(c.Request.Context(), ucPayment.UpdatePaymentStatusInput{
		ID:      req.ID,
		Status:  req.Status,
		Notes:   req.Notes,
		ActorID: principal(c).UserID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToPaymentDTO(*p))
}

func (h *PaymentHandler) Export(c *gin.Context) {
	data, err := h.export.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.PaymentsFilename(time.Now())))
	c.Data(http.StatusOK, xlsxMime, data)
}
