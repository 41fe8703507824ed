package code

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrCode int

const (
	Success ErrCode = 0
)

const (
	UnDefineErr ErrCode = iota + 10000
	ParamErr
	CreateDataErr
	QueryRecordErr
)

var codeMsg = map[ErrCode]string{
	Success:        "success",
	UnDefineErr:    "undefined error",
	ParamErr:       "request param error",
	CreateDataErr:  "create data error",
	QueryRecordErr: "query record error",
}

var codeStatus = map[ErrCode]int{
	Success:        http.StatusOK,
	ParamErr:       http.StatusUnprocessableEntity,
}

func (c ErrCode) String() string {
	if msg, ok := codeMsg[c]; ok {
		return msg
	}
	return fmt.Sprintf("error code %d", int(c))
}

func (c ErrCode) Error() string {
	return c.String()
}

// Status is the HTTP status a reply carrying this code is written with.
func (c ErrCode) Status() int {
	if s, ok := codeStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func (c ErrCode) WithMsg(msg string) *Error {
	return &Error{Code: c, Msg: msg}
}

func (c ErrCode) WithErr(err error) *Error {
	msg := c.String()
	if err != nil {
		msg = err.Error()
	}
	return &Error{Code: c, Msg: msg, Err: err}
}

type Error struct {
	Code   ErrCode
	Msg    string
	Detail any
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Msg {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an *Error against its bare ErrCode.
func (e *Error) Is(target error) bool {
	c, ok := target.(ErrCode)
	return ok && c == e.Code
}

func (e *Error) WithDetail(detail any) *Error {
	n := *e
	n.Detail = detail
	return &n
}

// Parse normalises any error into an *Error, falling back to UnDefineErr.
func Parse(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var c ErrCode
	if errors.As(err, &c) {
		return &Error{Code: c, Msg: c.String()}
	}
	return &Error{Code: UnDefineErr, Msg: UnDefineErr.String(), Err: err}
}
