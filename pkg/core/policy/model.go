package policy

import "github.com/scienceol/labprofile/pkg/repo/model"

type CreatePermissionPolicyReq struct {
	SkillTag                *string `json:"skill_tag" validate:"required" example:"python"`
	PermissionPolicy        *string `json:"permission_policy" validate:"required" example:"read-only"`
	AllowProgrammaticSignup *bool   `json:"allow_programmatic_signup" validate:"required" example:"false"`
}

func (r *CreatePermissionPolicyReq) ToModel() *model.PermissionPolicy {
	return &model.PermissionPolicy{
		SkillTag:                *r.SkillTag,
		PermissionPolicy:        *r.PermissionPolicy,
		AllowProgrammaticSignup: *r.AllowProgrammaticSignup,
	}
}

type PermissionPolicyResp struct {
	ID                      int64  `json:"id"`
	SkillTag                string `json:"skill_tag"`
	PermissionPolicy        string `json:"permission_policy"`
	AllowProgrammaticSignup bool   `json:"allow_programmatic_signup"`
}

func NewPermissionPolicyResp(data *model.PermissionPolicy) *PermissionPolicyResp {
	return &PermissionPolicyResp{
		ID:                      data.ID,
		SkillTag:                data.SkillTag,
		PermissionPolicy:        data.PermissionPolicy,
		AllowProgrammaticSignup: data.AllowProgrammaticSignup,
	}
}
