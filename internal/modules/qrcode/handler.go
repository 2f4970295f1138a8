package qrcode

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"qrgen/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the QR endpoints on an auth-protected group.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	qr := protected.Group("/qr")
	{
		qr.POST("/generate", h.Create)
		qr.GET("/my-codes", h.List)
		qr.GET("/:id", h.GetByID)
		qr.DELETE("/:id", h.Delete)
		qr.POST("/:id/download", h.RecordDownload)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateQRCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	qr, err := h.svc.Create(c.Request.Context(), userID, req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", ve.Fields)
		case errors.Is(err, ErrEncoding):
			log.Printf("qr encode failed user_id=%d: %v", userID, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		default:
			log.Printf("qr create failed user_id=%d: %v", userID, err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		}
		return
	}

	response.Success(c, http.StatusCreated, qr)
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	// non-numeric values fall back to the defaults, same as the dashboard expects
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 10
	}

	result, err := h.svc.List(c.Request.Context(), userID, page, limit)
	if err != nil {
		log.Printf("qr list failed user_id=%d: %v", userID, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) GetByID(c *gin.Context) {
	userID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	qr, err := h.svc.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "QR code not found")
			return
		}
		log.Printf("qr get failed user_id=%d id=%d: %v", userID, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, qr)
}

func (h *Handler) Delete(c *gin.Context) {
	userID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "QR code not found")
			return
		}
		log.Printf("qr delete failed user_id=%d id=%d: %v", userID, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "QR code deleted successfully"})
}

func (h *Handler) RecordDownload(c *gin.Context) {
	userID, id, ok := h.callerAndID(c)
	if !ok {
		return
	}

	if err := h.svc.RecordDownload(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "QR code not found")
			return
		}
		log.Printf("qr download ack failed user_id=%d id=%d: %v", userID, id, err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Download count updated"})
}

func (h *Handler) callerAndID(c *gin.Context) (userID, id int64, ok bool) {
	userID = c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return 0, 0, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid QR code ID")
		return 0, 0, false
	}

	return userID, id, true
}
