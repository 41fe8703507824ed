package labprofile

import "context"

type Service interface {
	CreateLabProfile(ctx context.Context, req *CreateLabProfileReq) (*LabProfileResp, error)
	LabProfiles(ctx context.Context) ([]*LabProfileResp, error)
}
