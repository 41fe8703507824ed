package common

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/pkg/common/code"
	"github.com/scienceol/labprofile/pkg/common/schema"
)

type Resp struct {
	Code   code.ErrCode `json:"code"`
	Msg    string       `json:"msg"`
	Detail any          `json:"detail,omitempty"`
}

// Reply writes data on success and the error envelope otherwise.
func Reply(ctx *gin.Context, err error, data ...any) {
	if err != nil {
		ReplyErr(ctx, err)
		return
	}
	ReplyOk(ctx, data...)
}

func ReplyOk(ctx *gin.Context, data ...any) {
	if len(data) > 0 {
		ctx.JSON(http.StatusOK, data[0])
		return
	}
	ctx.JSON(http.StatusOK, &Resp{Code: code.Success, Msg: code.Success.String()})
}

func ReplyCreated(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusCreated, data)
}

// ReplyErr never exposes the message or detail of a 5xx error to the caller.
func ReplyErr(ctx *gin.Context, err error, msgs ...string) {
	e := code.Parse(err)
	if e == nil {
		e = code.UnDefineErr.WithMsg(code.UnDefineErr.String())
	}
	msg := e.Msg
	if len(msgs) > 0 {
		msg = strings.Join(msgs, "; ")
	}
	status := e.Code.Status()
	detail := e.Detail
	if status >= http.StatusInternalServerError {
		msg = http.StatusText(status)
		detail = nil
	}
	ctx.AbortWithStatusJSON(status, &Resp{
		Code:   e.Code,
		Msg:    msg,
		Detail: detail,
	})
}

// ReplyParamErr answers 422 with one detail entry per violated field.
func ReplyParamErr(ctx *gin.Context, err error) {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		ReplyErr(ctx, code.ParamErr.WithMsg(verr.Error()).WithDetail(verr.Fields))
		return
	}
	ReplyErr(ctx, code.ParamErr.WithErr(err))
}
