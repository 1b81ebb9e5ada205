package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	payerdomain "github.com/orthoflow/orthoflow/internal/payer/domain"
)

func (s *Server) CreatePayer(c *gin.Context) {
	var req payerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.payerSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListPayers(c *gin.Context) {
	resp, err := s.payerSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPayerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.payerSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetPayerFee(c *gin.Context) {
	var req payerdomain.SetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.PayerID = strings.TrimSpace(c.Param("id"))

	resp, err := s.payerSvc.SetFee(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPayerFees(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.payerSvc.ListFees(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isPayerValidationError(err error) bool {
	switch err {
	case payerdomain.ErrInvalidName,
		payerdomain.ErrInvalidID,
		payerdomain.ErrInvalidHCPCS,
		payerdomain.ErrInvalidRate:
		return true
	}
	return false
}
