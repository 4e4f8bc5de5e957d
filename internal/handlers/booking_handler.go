package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/zaban-academy/internal/usecase/booking"
)

type BookingHandler struct {
	book   *ucBooking.BookSlot
	list   *ucBooking.ListBookings
	listMy *ucBooking.ListMyBookings
}

func NewBookingHandler(
	book *ucBooking.BookSlot,
	list *ucBooking.ListBookings,
	listMy *ucBooking.ListMyBookings,
) *BookingHandler {
	return &BookingHandler{
		book:   book,
		list:   list,
		listMy: listMy,
	}
}

type BookRequest struct {
	SlotID uint   `json:"slotId"`
	Phone  string `json:"phone"`
	Notes  string `json:"notes"`
	Type   string `json:"type"`
}

// Book accepts guests; a signed-in caller gets the booking linked to
// their account.
func (h *BookingHandler) Book(c *gin.Context) {
	var req BookRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.book.Execute(c.Request.Context(), ucBooking.BookSlotInput{
		SlotID: req.SlotID,
		UserID: userIDPtr(auth.FromContext(c)),
		Phone:  req.Phone,
		Notes:  req.Notes,
		Type:   req.Type,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.ToBookingDTO(*b))
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.listMy.Execute(c.Request.Context(), principal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, bookings)
}
