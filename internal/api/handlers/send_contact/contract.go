package send_contact

import (
	"context"

	sendContact "github.com/TahaKotwal12/247-gym/internal/usecase/send_contact"
)

type SendContactUseCase interface {
	Execute(ctx context.Context, req *sendContact.Request) (*sendContact.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
