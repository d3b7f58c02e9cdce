package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/clinovahq/clinova_backend/config"
	"github.com/clinovahq/clinova_backend/internal/repo"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
	"github.com/clinovahq/clinova_backend/internal/service/visit"
	svcsms "github.com/clinovahq/clinova_backend/pkg/sms"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	AuditSvc audit.Service
	SMS      *svcsms.Client
	Cfg      *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAuditWorker(p.NC, p.AuditSvc)
			startReminderWorker(p.NC, p.DB, p.SMS, p.Cfg)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// audit_worker
// ---------------------------------------------------------------------------

// startAuditWorker persists audit events published by the services.
// Events are already redacted by the publisher.
func startAuditWorker(nc *nats.Conn, auditSvc audit.Service) {
	_, err := nc.Subscribe(audit.SubjectPrefix+">", func(msg *nats.Msg) {
		var ev audit.Event
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("audit_worker: malformed event", "subject", msg.Subject, "err", err)
			return
		}
		if err := auditSvc.Record(context.Background(), ev); err != nil {
			slog.Warn("audit_worker: persist failed",
				"entity_type", ev.EntityType, "entity_id", ev.EntityID, "err", err)
		}
	})
	if err != nil {
		slog.Error("audit_worker: subscribe failed", "err", err)
		return
	}
	slog.Info("audit_worker: started")
}

// ---------------------------------------------------------------------------
// reminder_worker
// ---------------------------------------------------------------------------

// startReminderWorker sends a follow-up reminder SMS to the patient when
// a visit is saved with a follow-up date.
func startReminderWorker(nc *nats.Conn, db *repo.Client, smsCli *svcsms.Client, cfg *config.Config) {
	if !smsCli.IsEnabled() || cfg.SMS.ReminderTemplateID == "" {
		slog.Info("reminder_worker: SMS disabled, not starting")
		return
	}

	_, err := nc.Subscribe(visit.SubjectFollowUpScheduled, func(msg *nats.Msg) {
		var ev visit.FollowUpEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("reminder_worker: malformed event", "err", err)
			return
		}

		ctx := context.Background()
		p, err := db.Patient.Query().
			Where(entpatient.ID(ev.PatientID), entpatient.DeletedAtIsNil()).
			Only(ctx)
		if err != nil {
			slog.Warn("reminder_worker: patient not found", "patient_id", ev.PatientID, "err", err)
			return
		}

		params := map[string]string{
			"name": p.FirstName + " " + p.LastName,
			"date": ev.DueAt.Format("2006-01-02"),
		}
		if err := smsCli.SendTemplate(ctx, p.Phone, cfg.SMS.ReminderTemplateID, params); err != nil {
			slog.Warn("reminder_worker: send failed", "patient_id", ev.PatientID, "err", err)
		}
	})
	if err != nil {
		slog.Error("reminder_worker: subscribe failed", "err", err)
		return
	}
	slog.Info("reminder_worker: started")
}
