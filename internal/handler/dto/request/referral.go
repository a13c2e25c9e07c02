package request

type SendReferralCodeRequest struct {
	Code string `json:"code" binding:"required,max=64"`
}
