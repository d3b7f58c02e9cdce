package patient

import (
	"context"
	"errors"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/clinovahq/clinova_backend/internal/repo"
	"github.com/clinovahq/clinova_backend/internal/repo/enttest"
	entpatient "github.com/clinovahq/clinova_backend/internal/repo/patient"
	"github.com/clinovahq/clinova_backend/internal/service/audit"
)

func newTestService(t *testing.T) (Service, *repo.Client, uuid.UUID) {
	t.Helper()

	client := enttest.Open(t, dialect.SQLite, "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { _ = client.Close() })

	c, err := client.Clinic.Create().
		SetName("Northside Clinic").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create clinic: %v", err)
	}

	return New(client, audit.NewPublisher(nil), nil), client, c.ID
}

func TestSoftDeleteAndRestoreForceStatus(t *testing.T) {
	ctx := context.Background()
	svc, client, clinicID := newTestService(t)
	actorID := uuid.New()

	p, err := svc.Register(ctx, clinicID, actorID, RegisterRequest{
		FirstName: "Sara",
		LastName:  "Moradi",
		Phone:     "+989121234567",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if p.Status != entpatient.StatusActive {
		t.Fatalf("new patient status = %s, want active", p.Status)
	}

	if err := svc.SoftDelete(ctx, clinicID, actorID, p.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	got, err := client.Patient.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("reload patient: %v", err)
	}
	if got.DeletedAt == nil {
		t.Error("deleted_at not set after soft delete")
	}
	if got.Status != entpatient.StatusInactive {
		t.Errorf("status after soft delete = %s, want inactive", got.Status)
	}

	restored, err := svc.Restore(ctx, clinicID, actorID, p.ID)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.DeletedAt != nil {
		t.Error("deleted_at still set after restore")
	}
	if restored.Status != entpatient.StatusActive {
		t.Errorf("status after restore = %s, want active", restored.Status)
	}

	// Restoring a live record is a state error, not a silent no-op.
	if _, err := svc.Restore(ctx, clinicID, actorID, p.ID); !errors.Is(err, ErrNotDeleted) {
		t.Errorf("second Restore error = %v, want ErrNotDeleted", err)
	}
}

func TestRegisterRejectsUnknownGender(t *testing.T) {
	ctx := context.Background()
	svc, _, clinicID := newTestService(t)

	gender := "unspecified"
	_, err := svc.Register(ctx, clinicID, uuid.New(), RegisterRequest{
		FirstName: "Omid",
		LastName:  "Karimi",
		Phone:     "+989351234567",
		Gender:    &gender,
	})
	if !errors.Is(err, ErrInvalidGender) {
		t.Errorf("Register error = %v, want ErrInvalidGender", err)
	}
}

func TestSearchRejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, clinicID := newTestService(t)

	status := "archived"
	_, err := svc.Search(ctx, clinicID, SearchRequest{Status: &status})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Search error = %v, want ErrInvalidStatus", err)
	}
}
