package labprofile

import (
	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/common"
	"github.com/scienceol/labprofile/pkg/common/schema"
	"github.com/scienceol/labprofile/pkg/core/labprofile"
	impl "github.com/scienceol/labprofile/pkg/core/labprofile/labprofile"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	lStore "github.com/scienceol/labprofile/pkg/repo/labprofile"
)

type Handle struct {
	lService labprofile.Service
}

func NewLabProfileHandle(ds *db.Datastore) *Handle {
	return &Handle{lService: impl.New(lStore.New(ds))}
}

// CreateLabProfile godoc
//
//	@Summary	Create a lab profile with its learning objectives and outcomes
//	@Tags		lab_profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		labprofile.CreateLabProfileReq	true	"lab profile"
//	@Success	201		{object}	labprofile.LabProfileResp
//	@Failure	422		{object}	common.Resp
//	@Failure	500		{object}	common.Resp
//	@Router		/create_lab_profile/ [post]
func (h *Handle) CreateLabProfile(ctx *gin.Context) {
	req := &labprofile.CreateLabProfileReq{}
	if err := schema.BindJSON(ctx, req); err != nil {
		logger.Warnf(ctx, "parse CreateLabProfile param err: %+v", err)
		common.ReplyParamErr(ctx, err)
		return
	}
	resp, err := h.lService.CreateLabProfile(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateLabProfile err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, resp)
}

// LabProfiles godoc
//
//	@Summary	List lab profiles
//	@Tags		lab_profile
//	@Produce	json
//	@Success	200	{array}		labprofile.LabProfileResp
//	@Failure	500	{object}	common.Resp
//	@Router		/lab_profiles/ [get]
func (h *Handle) LabProfiles(ctx *gin.Context) {
	resp, err := h.lService.LabProfiles(ctx)
	if err != nil {
		logger.Errorf(ctx, "LabProfiles err: %+v", err)
	}
	common.Reply(ctx, err, resp)
}
