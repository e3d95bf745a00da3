package collect

import (
	"errors"
	"net/http"

	"github.com/msprojectmerger/landing/handler"
)

var (
	ErrSinkFailed = errors.New("record sink failed")
	ErrNilSink    = errors.New("record sink is nil")

	ErrInvalidEmail = handler.NewHTTPError(http.StatusBadRequest, MsgInvalidEmail)
)
