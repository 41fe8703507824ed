package configure

import "github.com/scienceol/labprofile/pkg/repo/model"

type CreateConfigureReq struct {
	ValidityDays   *int    `json:"validity_days" validate:"required,gt=0" example:"30"`
	CreditLimit    *string `json:"credit_limit" validate:"required" example:"100"`
	HourLimit      *int    `json:"hour_limit" validate:"required,gte=0" example:"5"`
	SnoozeLabStart *string `json:"snooze_lab_start" validate:"required" example:"22:00"`
	SnoozeLabEnd   *string `json:"snooze_lab_end" validate:"required" example:"06:00"`
}

func (r *CreateConfigureReq) ToModel() *model.Configure {
	return &model.Configure{
		ValidityDays:   *r.ValidityDays,
		CreditLimit:    *r.CreditLimit,
		HourLimit:      *r.HourLimit,
		SnoozeLabStart: *r.SnoozeLabStart,
		SnoozeLabEnd:   *r.SnoozeLabEnd,
	}
}

type ConfigureResp struct {
	ID             int64  `json:"id"`
	ValidityDays   int    `json:"validity_days"`
	CreditLimit    string `json:"credit_limit"`
	HourLimit      int    `json:"hour_limit"`
	SnoozeLabStart string `json:"snooze_lab_start"`
	SnoozeLabEnd   string `json:"snooze_lab_end"`
}

func NewConfigureResp(data *model.Configure) *ConfigureResp {
	return &ConfigureResp{
		ID:             data.ID,
		ValidityDays:   data.ValidityDays,
		CreditLimit:    data.CreditLimit,
		HourLimit:      data.HourLimit,
		SnoozeLabStart: data.SnoozeLabStart,
		SnoozeLabEnd:   data.SnoozeLabEnd,
	}
}
