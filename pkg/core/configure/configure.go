package configure

import "context"

type Service interface {
	CreateConfigure(ctx context.Context, req *CreateConfigureReq) (*ConfigureResp, error)
	Configures(ctx context.Context) ([]*ConfigureResp, error)
}
