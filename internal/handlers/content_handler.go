package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/zaban-academy/internal/auth"
	"github.com/BruksfildServices01/zaban-academy/internal/dto"
	"github.com/BruksfildServices01/zaban-academy/internal/httperr"
	"github.com/BruksfildServices01/zaban-academy/internal/httpresp"
	ucContent "github.com/BruksfildServices01/zaban-academy/internal/usecase/content"
)

// ======================================================
// HANDLER
// ======================================================

type ContentHandler struct {
	list        *ucContent.ListContent
	get         *ucContent.GetContent
	create      *ucContent.CreateContent
	update      *ucContent.UpdateContent
	remove      *ucContent.DeleteContent
	uploadLink  *ucContent.IssueUploadLink
	streamLink  *ucContent.IssueStreamLink
	myPurchases *ucContent.ListMyPurchases
}

type ContentUseCases struct {
	List        *ucContent.ListContent
	Get         *ucContent.GetContent
	Create      *ucContent.CreateContent
	Update      *ucContent.UpdateContent
	Delete      *ucContent.DeleteContent
	UploadLink  *ucContent.IssueUploadLink
	StreamLink  *ucContent.IssueStreamLink
	MyPurchases *ucContent.ListMyPurchases
}

func NewContentHandler(uc ContentUseCases) *ContentHandler {
	return &ContentHandler{
		list:        uc.List,
		get:         uc.Get,
		create:      uc.Create,
		update:      uc.Update,
		remove:      uc.Delete,
		uploadLink:  uc.UploadLink,
		streamLink:  uc.StreamLink,
		myPurchases: uc.MyPurchases,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// ContentRequest serves both POST and PATCH; absent fields are untouched
// on PATCH.
type ContentRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Type        *string `json:"type"`
	Level       *string `json:"level"`
	URL         *string `json:"url"`
	StorageKey  *string `json:"fileKey"`
	IsPremium   *bool   `json:"isPremium"`
	Price       *int64  `json:"price"`
}

func (r ContentRequest) input() ucContent.ContentInput {
	return ucContent.ContentInput{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Level:       r.Level,
		URL:         r.URL,
		StorageKey:  r.StorageKey,
		IsPremium:   r.IsPremium,
		Price:       r.Price,
	}
}

// ======================================================
// CATALOG
// ======================================================

func (h *ContentHandler) List(c *gin.Context) {
	items, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	item, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, item)
}

func (h *ContentHandler) Create(c *gin.Context) {
	var req ContentRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.create.Execute(c.Request.Context(), req.input(), principal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.ToContentDTO(*item))
}

func (h *ContentHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var req ContentRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.update.Execute(c.Request.Context(), id, req.input(), principal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.ToContentDTO(*item))
}

func (h *ContentHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
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

// ======================================================
// MEDIA
// ======================================================

func (h *ContentHandler) UploadLink(c *gin.Context) {
	link, err := h.uploadLink.Execute(c.Request.Context(), c.Query("fileName"), c.Query("contentType"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, link)
}

func (h *ContentHandler) Stream(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	link, err := h.streamLink.Execute(c.Request.Context(), auth.FromContext(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, link)
}

func (h *ContentHandler) MyPurchases(c *gin.Context) {
	items, err := h.myPurchases.Execute(c.Request.Context(), principal(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}
