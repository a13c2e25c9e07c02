package api

import (
	"log/slog"
	"net/http"
	"strings"

	reqdto "referral-credits/internal/handler/dto/request"
	resdto "referral-credits/internal/handler/dto/response"
	"referral-credits/internal/handler/httperr"
	"referral-credits/internal/pkg/errs"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	cmds   commands.ReferralCommands
	q      queries.ReferralQueries
	logger *slog.Logger
}

func NewReferralHandler(cmds commands.ReferralCommands, q queries.ReferralQueries, logger *slog.Logger) *ReferralHandler {
	return &ReferralHandler{cmds: cmds, q: q, logger: logger}
}

// @Summary Referral summary
// @Description Program terms, credit stats and referrals (newest first) for a customer
// @Tags referrals
// @Produce json
// @Param customerId path string true "Customer ID"
// @Success 200 {object} resdto.ReferralSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/referrals/customers/{customerId}/summary [get]
func (h *ReferralHandler) GetSummary(c *gin.Context) {
	customerID := strings.TrimSpace(c.Param("customerId"))
	if customerID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, queries.ErrCustomerIDRequired, "customerId is required", nil)
		return
	}

	view, err := h.q.GetSummary(c.Request.Context(), customerID)
	if err != nil {
		h.abortWithUseCaseError(c, err, "Failed to load referral summary")
		return
	}
	resp, err := resdto.FromReferralSummaryView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load referral summary", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Send referral code
// @Description Records a mock invitation for the customer owning the code and returns updated stats
// @Tags referrals
// @Accept json
// @Produce json
// @Param request body reqdto.SendReferralCodeRequest true "Referral code"
// @Success 200 {object} resdto.SendResultResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/referrals/send [post]
func (h *ReferralHandler) SendCode(c *gin.Context) {
	var req reqdto.SendReferralCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	code := strings.TrimSpace(req.Code)
	if code == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrCodeRequired, "code is required", nil)
		return
	}

	result, err := h.cmds.SendReferralCode(c.Request.Context(), code)
	if err != nil {
		h.abortWithUseCaseError(c, err, "Failed to send referral code")
		return
	}
	resp, err := resdto.FromSendResultView(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send referral code", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferralHandler) abortWithUseCaseError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errs.IsInvalidArgument(err):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.IsNotFound(err):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	default:
		h.logger.Error(internalMsg, "error", err.Error(), "path", c.Request.URL.Path)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, internalMsg, nil)
	}
}
