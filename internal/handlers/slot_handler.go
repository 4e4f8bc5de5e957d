package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/httpresp"
	ucSlot "github.com/BruksfildServices01/zaban-academy/internal/usecase/slot"
)

type SlotHandler struct {
	listAvailable *ucSlot.ListAvailableSlots
	listAll       *ucSlot.ListSlots
	create        *ucSlot.CreateSlot
	remove        *ucSlot.DeleteSlot
}

func NewSlotHandler(
	listAvailable *ucSlot.ListAvailableSlots,
	listAll *ucSlot.ListSlots,
	create *ucSlot.CreateSlot,
	remove *ucSlot.DeleteSlot,
) *SlotHandler {
	return &SlotHandler{
		listAvailable: listAvailable,
		listAll:       listAll,
		create:        create,
		remove:        remove,
	}
}

type CreateSlotRequest struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

// ListAvailable returns a bare array, as the booking page expects.
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	slots, err := h.listAvailable.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, slots)
}

func (h *SlotHandler) ListAll(c *gin.Context) {
	slots, err := h.listAll.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, slots)
}

func (h *SlotHandler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if !bindJSON(c, &req) {
		return
	}

	slot, err := h.create.Execute(c.Request.Context(), ucSlot.CreateSlotInput{
		Start:       req.Date,
		DurationMin: req.Duration,
		ActorID:     principal(c).UserID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.ToSlotDTO(*slot))
}

func (h *SlotHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Query("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, principal(c).UserID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
