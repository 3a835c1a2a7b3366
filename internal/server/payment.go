package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/tipaniya/hisaab/internal/invoice/format"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
	"github.com/tipaniya/hisaab/internal/providers/pdf"
)

type createPaymentRequest struct {
	FarmerID    string  `json:"farmer_id"`
	Amount      float64 `json:"amount"`
	Remark      string  `json:"remark"`
	PaymentDate string  `json:"payment_date"`
}

func (s *Server) CreatePayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		AbortWithError(c, newValidationError("payment_date", "invalid_payment_date", "invalid payment_date"))
		return
	}

	resp, err := s.paymentSvc.Create(c.Request.Context(), paymentdomain.CreatePaymentRequest{
		FarmerID:    strings.TrimSpace(req.FarmerID),
		UserID:      user.ID.String(),
		Amount:      req.Amount,
		Remark:      strings.TrimSpace(req.Remark),
		PaymentDate: paymentDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		targetID := resp.ID.String()
		s.auditSvc.Record(c.Request.Context(), &user.ID, "payment.create", "payment", &targetID, map[string]any{
			"payment_id": resp.ID.String(),
			"farmer_id":  resp.FarmerID.String(),
			"amount":     resp.Amount,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPaymentsByFarmer(c *gin.Context) {
	farmerID := strings.TrimSpace(c.Param("farmerId"))
	resp, err := s.paymentSvc.ListByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListPaymentsByAdmin(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	adminID, err := snowflake.ParseString(strings.TrimSpace(c.Param("adminId")))
	if err != nil {
		AbortWithError(c, newValidationError("adminId", "invalid_admin_id", "invalid adminId"))
		return
	}

	// Admins see their own ledger only. Drivers may look it up through
	// the admin they report to.
	if user.ID != adminID && !user.ReportsTo(adminID) {
		AbortWithError(c, ErrForbidden)
		return
	}

	resp, err := s.paymentSvc.ListByAdmin(c.Request.Context(), adminID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetPaymentReceipt(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	payment, err := s.paymentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	report := s.report.Current()
	reader, err := s.receipts.GenerateReceipt(c.Request.Context(), pdf.ReceiptData{
		OrgName:       report.OrganizationName,
		ReceiptNumber: payment.ID.String(),
		FarmerName:    payment.FarmerName,
		RecordedBy:    payment.UserName,
		Amount:        fmt.Sprintf("%s %s", report.CurrencyLabel, format.FormatAmount(payment.Amount)),
		DatePaid:      format.FormatDate(payment.PaymentDate),
		Remark:        payment.Remark,
		FooterLine:    report.FooterLine,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	filename := fmt.Sprintf("receipt_%s.pdf", payment.ID.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", body)
}
