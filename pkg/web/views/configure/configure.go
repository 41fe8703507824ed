package configure

import (
	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/common"
	"github.com/scienceol/labprofile/pkg/common/schema"
	"github.com/scienceol/labprofile/pkg/core/configure"
	impl "github.com/scienceol/labprofile/pkg/core/configure/configure"
	"github.com/scienceol/labprofile/pkg/middleware/db"
	"github.com/scienceol/labprofile/pkg/middleware/logger"
	cStore "github.com/scienceol/labprofile/pkg/repo/configure"
)

type Handle struct {
	cService configure.Service
}

func NewConfigureHandle(ds *db.Datastore) *Handle {
	return &Handle{cService: impl.New(cStore.New(ds))}
}

// CreateConfigure godoc
//
//	@Summary	Create a configure record
//	@Tags		configure
//	@Accept		json
//	@Produce	json
//	@Param		body	body		configure.CreateConfigureReq	true	"configure"
//	@Success	201		{object}	configure.ConfigureResp
//	@Failure	422		{object}	common.Resp
//	@Failure	500		{object}	common.Resp
//	@Router		/create_configure/ [post]
func (h *Handle) CreateConfigure(ctx *gin.Context) {
	req := &configure.CreateConfigureReq{}
	if err := schema.BindJSON(ctx, req); err != nil {
		logger.Warnf(ctx, "parse CreateConfigure param err: %+v", err)
		common.ReplyParamErr(ctx, err)
		return
	}
	resp, err := h.cService.CreateConfigure(ctx, req)
	if err != nil {
		logger.Errorf(ctx, "CreateConfigure err: %+v", err)
		common.ReplyErr(ctx, err)
		return
	}
	common.ReplyCreated(ctx, resp)
}

// Configures godoc
//
//	@Summary	List configure records
//	@Tags		configure
//	@Produce	json
//	@Success	200	{array}		configure.ConfigureResp
//	@Failure	500	{object}	common.Resp
//	@Router		/configures/ [get]
func (h *Handle) Configures(ctx *gin.Context) {
	resp, err := h.cService.Configures(ctx)
	if err != nil {
		logger.Errorf(ctx, "Configures err: %+v", err)
	}
	common.Reply(ctx, err, resp)
}
