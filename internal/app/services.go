package app

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/clinovahq/clinova_backend/config"
	"github.com/clinovahq/clinova_backend/internal/repo"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/auth"
	"github.com/clinovahq/clinova_backend/internal/service/clinic"
	"github.com/clinovahq/clinova_backend/internal/service/invoice"
	"github.com/clinovahq/clinova_backend/internal/service/patient"
	"github.com/clinovahq/clinova_backend/internal/service/prescription"
	"github.com/clinovahq/clinova_backend/internal/service/visit"
	"github.com/clinovahq/clinova_backend/pkg/authorize"
	"github.com/clinovahq/clinova_backend/pkg/crypto"
	"github.com/clinovahq/clinova_backend/pkg/email"
	pasetotoken "github.com/clinovahq/clinova_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuditPublisher,
		ProvideAuditService,
		ProvideAuthService,
		ProvideClinicService,
		ProvidePatientService,
		ProvideVisitService,
		ProvidePrescriptionService,
		ProvideInvoiceService,
		ProvidePasetoManager,
	),
)

func ProvideAuditPublisher(nc *nats.Conn) *audit.Publisher {
	return audit.NewPublisher(nc)
}

func ProvideAuditService(db *repo.Client) audit.Service {
	return audit.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	mail *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	aud *audit.Publisher,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, mail, paseto, authz, aud, cfg)
}

func ProvideClinicService(db *repo.Client, authz authorize.IAuthorization, aud *audit.Publisher) clinic.Service {
	return clinic.New(db, authz, aud)
}

func ProvidePatientService(db *repo.Client, aud *audit.Publisher, cfg *config.Config) (patient.Service, error) {
	encKey, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("patient service: invalid encryption key: %w", err)
	}
	return patient.New(db, aud, encKey), nil
}

func ProvideVisitService(db *repo.Client, nc *nats.Conn, aud *audit.Publisher) visit.Service {
	return visit.New(db, nc, aud)
}

func ProvidePrescriptionService(db *repo.Client, aud *audit.Publisher) prescription.Service {
	return prescription.New(db, aud)
}

func ProvideInvoiceService(db *repo.Client, aud *audit.Publisher, mail *email.Client) invoice.Service {
	return invoice.New(db, aud, mail)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
