package iam

import (
	"github.com/quatton/scitech/pkg/scapi/services/auth"
	"github.com/quatton/scitech/pkg/sclog"
)

type IAMService struct {
	auth   *auth.AuthService
	logger *sclog.Logger
}

func NewIAMService(auth *auth.AuthService, logger *sclog.Logger) *IAMService {
	return &IAMService{auth: auth, logger: logger.With("component", "iam")}
}
