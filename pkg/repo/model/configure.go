package model

type Configure struct {
	BaseModel
	ValidityDays   int    `gorm:"not null;check:chk_configures_validity_days,validity_days > 0" json:"validity_days"`
	CreditLimit    string `gorm:"type:text;not null" json:"credit_limit"`
	HourLimit      int    `gorm:"not null;check:chk_configures_hour_limit,hour_limit >= 0" json:"hour_limit"`
	SnoozeLabStart string `gorm:"type:text;not null" json:"snooze_lab_start"`
	SnoozeLabEnd   string `gorm:"type:text;not null" json:"snooze_lab_end"`
}

func (*Configure) TableName() string {
	return "configures"
}
