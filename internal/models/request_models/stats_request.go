package request_models

type SummaryQuery struct {
	Days int `form:"days" binding:"omitempty,min=1,max=365"`
}
