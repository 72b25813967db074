// Package athleticsplatform assembles the athletics event platform core: the
// registration store, the merged event catalog, the reconciliation engine and
// the user directory. The presentation layer consumes these services; nothing
// here renders or routes.
package athleticsplatform

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"athleticsplatform/config"
	"athleticsplatform/internal/adapters/approvedevents"
	"athleticsplatform/internal/adapters/auth"
	"athleticsplatform/internal/adapters/email"
	"athleticsplatform/internal/domain"
	"athleticsplatform/internal/repository/memory"
	"athleticsplatform/internal/repository/postgres"
	"athleticsplatform/internal/services"
)

const operationTimeout = 5 * time.Second

const bcryptCost = 10

// Platform bundles the core services consumed by the presentation layer.
type Platform struct {
	Registrations domain.RegistrationStore
	Intake        domain.RegistrationIntake
	Catalog       domain.CatalogService
	Reconciler    domain.ReconciliationService
	Users         domain.UserDirectory

	db *sql.DB
}

// New wires the platform from config: slot storage backend, approved-events
// fetcher, mailer and the services on top of them.
func New(cfg *config.Config, logger *slog.Logger) (*Platform, error) {
	p := &Platform{}

	var slots domain.SlotStore
	switch cfg.StorageBackend {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		p.db = db
		slots = postgres.NewSlotRepository(db)
	case "memory", "":
		slots = memory.NewStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	fetcher := approvedevents.NewHTTPFetcher(nil, cfg.ApprovedEventsURL)
	hasher := auth.NewBcryptHasher(bcryptCost)

	p.Registrations = services.NewRegistrationStore(slots, logger, operationTimeout)
	p.Intake = services.NewRegistrationIntake(p.Registrations, emailService, logger)
	p.Catalog = services.NewCatalogService(fetcher, logger, cfg.CatalogFetchTimeout)
	p.Users = services.NewUserDirectory(slots, hasher, logger, operationTimeout)
	p.Reconciler = services.NewReconciliationService(p.Registrations, p.Catalog, p.Users, logger, operationTimeout)

	return p, nil
}

// Close releases the storage backend, if it holds external resources.
func (p *Platform) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
