package handler

import (
	barangaydomain "barangay-records-go/internal/domain/barangay"
	blotterdomain "barangay-records-go/internal/domain/blotter"
	certificatedomain "barangay-records-go/internal/domain/certificate"
	dashboarddomain "barangay-records-go/internal/domain/dashboard"
	householddomain "barangay-records-go/internal/domain/household"
	residentdomain "barangay-records-go/internal/domain/resident"
	setupdomain "barangay-records-go/internal/domain/setup"
	userdomain "barangay-records-go/internal/domain/user"
	"barangay-records-go/internal/transport/httpserver/middleware"
	"barangay-records-go/pkg/logger"
)

type Handlers struct {
	log  logger.Logger
	auth *middleware.JWTAuth

	Barangays    *barangaydomain.Service
	Households   *householddomain.Service
	Residents    *residentdomain.Service
	Users        *userdomain.Service
	Blotters     *blotterdomain.Service
	Certificates *certificatedomain.Service
	Dashboard    *dashboarddomain.Service
	Setup        *setupdomain.Service
}

func New(
	log logger.Logger,
	auth *middleware.JWTAuth,
	barangays *barangaydomain.Service,
	households *householddomain.Service,
	residents *residentdomain.Service,
	users *userdomain.Service,
	blotters *blotterdomain.Service,
	certificates *certificatedomain.Service,
	dashboard *dashboarddomain.Service,
	setup *setupdomain.Service,
) *Handlers {
	return &Handlers{
		log:          log,
		auth:         auth,
		Barangays:    barangays,
		Households:   households,
		Residents:    residents,
		Users:        users,
		Blotters:     blotters,
		Certificates: certificates,
		Dashboard:    dashboard,
		Setup:        setup,
	}
}
