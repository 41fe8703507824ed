package model

type PermissionPolicy struct {
	BaseModel
	SkillTag                string `gorm:"type:text;not null" json:"skill_tag"`
	PermissionPolicy        string `gorm:"type:text;not null" json:"permission_policy"`
	AllowProgrammaticSignup bool   `gorm:"not null" json:"allow_programmatic_signup"`
}

func (*PermissionPolicy) TableName() string {
	return "permission_policies"
}
