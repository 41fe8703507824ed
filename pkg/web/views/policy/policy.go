package policy

import (
	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/common"
	"github.com/scienceol/labprofile/pkg/common/schema"
	"github.com/scienceol/labprofile/pkg/core/policy"
	impl "github.com/scienceol/labprofile/pkg/core/policy/policy"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	pStore "github.com/scienceol/labprofile/pkg/repo/policy"
)

type Handle struct {
	pService policy.Service
}

func NewPolicyHandle(ds *db.Datastore) *Handle {
	return &Handle{pService: impl.New(pStore.New(ds))}
}

// CreatePermissionPolicy godoc
//
//	@Summary	Create a permission policy
//	@Tags		permission_policy
//	@Accept		json
//	@Produce	json
//	@Param		body	body		policy.CreatePermissionPolicyReq	true	"permission policy"
//	@Success	201		{object}	policy.PermissionPolicyResp
//	@Failure	422		{object}	common.Resp
//	@Failure	500		{object}	common.Resp
//	@Router		/create_permission_policy/ [post]
func (h *Handle) CreatePermissionPolicy(ctx *gin.Context) {
	req := &policy.CreatePermissionPolicyReq{}
	if err := schema.BindJSON(ctx, req); err != nil {
		logger.Warnf(ctx, "parse CreatePermissionPolicy param err: %+v", err)
		common.ReplyParamErr(ctx, err)
		return
	}
	resp, err := h.pService.CreatePermissionPolicy(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreatePermissionPolicy err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, resp)
}

// PermissionPolicies godoc
//
//	@Summary	List permission policies
//	@Tags		permission_policy
//	@Produce	json
//	@Success	200	{array}		policy.PermissionPolicyResp
//	@Failure	500	{object}	common.Resp
//	@Router		/permission_policies/ [get]
func (h *Handle) PermissionPolicies(ctx *gin.Context) {
	resp, err := h.pService.PermissionPolicies(ctx)
	if err != nil {
		logger.Errorf(ctx, "PermissionPolicies err: %+v", err)
	}
	common.Reply(ctx, err, resp)
}
