package usecase

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/lifecycle"
	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces"
	mock_interfaces "github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/usecase/interfaces/mocks"
)

const testRegion = "TH"

func approvedApplication() entities.Application {
	app := readyApplication()
	app.Status = entities.ApplicationStatusApproved
	app.StatusHistory = append(app.StatusHistory, entities.StatusHistoryEntry{
		Status: entities.ApplicationStatusApproved, Timestamp: time.Now().UTC(), Actor: "officer-1",
	})
	return app
}

func liveCertificate() entities.Certificate {
	now := time.Now().UTC()
	return entities.Certificate{
		ID:                "cert-1",
		CertificateNumber: "GACP-TH-2025-00001",
		ApplicationID:     "app-1",
		HolderID:          "farmer-1",
		Status:            entities.CertificateStatusActive,
		IssuedAt:          now.AddDate(0, -6, 0),
		ExpiresAt:         now.AddDate(2, 6, 0),
	}
}

func TestCertificateUseCase_Issue(t *testing.T) {
	t.Run("officer role required", func(t *testing.T) {
		uc := NewCertificateUseCase(nil, nil, nil, nil, testRegion)
		_, err := uc.Issue(context.Background(), "app-1", applicant)
		expectRejection(t, err, lifecycle.RejectionForbidden)
	})

	t.Run("application must be approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewCertificateUseCase(repo, apps, seq, nil, testRegion)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(reviewableApplication(), nil)
		repo.EXPECT().ListByApplicationID(gomock.Any(), "app-1").Return(nil, nil)
		seq.EXPECT().Next(gomock.Any(), "certificates", gomock.Any()).Return(int64(1), nil)

		_, err := uc.Issue(context.Background(), "app-1", officer)
		expectRejection(t, err, lifecycle.RejectionPreconditionFailed)
	})

	t.Run("live duplicate blocks issuance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		uc := NewCertificateUseCase(repo, apps, nil, nil, testRegion)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(approvedApplication(), nil)
		repo.EXPECT().ListByApplicationID(gomock.Any(), "app-1").
			Return([]entities.Certificate{liveCertificate()}, nil)

		_, err := uc.Issue(context.Background(), "app-1", officer)
		expectRejection(t, err, lifecycle.RejectionLimitReached)
	})

	t.Run("revoked predecessor frees the slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCertificateUseCase(repo, apps, seq, notifier, testRegion)

		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(approvedApplication(), nil)
		revoked := liveCertificate()
		revoked.Status = entities.CertificateStatusRevoked
		repo.EXPECT().ListByApplicationID(gomock.Any(), "app-1").Return([]entities.Certificate{revoked}, nil)

		year := time.Now().UTC().Year()
		seq.EXPECT().Next(gomock.Any(), "certificates", year).Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cert entities.Certificate) (entities.Certificate, error) {
				if cert.CertificateNumber != lifecycle.FormatCertificateNumber(testRegion, year, 42) {
					t.Fatalf("unexpected number %s", cert.CertificateNumber)
				}
				if cert.Status != entities.CertificateStatusActive {
					t.Fatalf("expected active, got %s", cert.Status)
				}
				if !cert.ExpiresAt.Equal(cert.IssuedAt.AddDate(3, 0, 0)) {
					t.Fatalf("expected three year validity: %+v", cert)
				}
				return cert, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		got, err := uc.Issue(context.Background(), "app-1", officer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.HolderID != "farmer-1" {
			t.Fatalf("unexpected holder %s", got.HolderID)
		}
	})
}

func TestCertificateUseCase_VerifyByNumber(t *testing.T) {
	t.Run("valid active certificate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, nil, testRegion)

		cert := liveCertificate()
		repo.EXPECT().GetByNumber(gomock.Any(), "GACP-TH-2025-00001").Return(cert, nil)

		got, err := uc.VerifyByNumber(context.Background(), " GACP-TH-2025-00001 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Valid || got.Status != entities.CertificateStatusActive {
			t.Fatalf("unexpected verification: %+v", got)
		}
	})

	t.Run("expired on read flips and writes back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, nil, testRegion)

		cert := liveCertificate()
		cert.ExpiresAt = time.Now().UTC().Add(-time.Hour)
		repo.EXPECT().GetByNumber(gomock.Any(), cert.CertificateNumber).Return(cert, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Certificate) (entities.Certificate, error) {
				if c.Status != entities.CertificateStatusExpired {
					t.Fatalf("expected expired write-back, got %s", c.Status)
				}
				return c, nil
			},
		)

		got, err := uc.VerifyByNumber(context.Background(), cert.CertificateNumber)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Valid || got.Status != entities.CertificateStatusExpired {
			t.Fatalf("unexpected verification: %+v", got)
		}
	})

	t.Run("concurrent flip is tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, nil, testRegion)

		cert := liveCertificate()
		cert.ExpiresAt = time.Now().UTC().Add(-time.Hour)
		repo.EXPECT().GetByNumber(gomock.Any(), cert.CertificateNumber).Return(cert, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Certificate{}, interfaces.ErrVersionConflict)

		got, err := uc.VerifyByNumber(context.Background(), cert.CertificateNumber)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.CertificateStatusExpired {
			t.Fatalf("expected expired view, got %+v", got)
		}
	})

	t.Run("unknown number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, nil, testRegion)

		repo.EXPECT().GetByNumber(gomock.Any(), "GACP-XX-0000-00000").Return(entities.Certificate{}, nil)

		_, err := uc.VerifyByNumber(context.Background(), "GACP-XX-0000-00000")
		expectRejection(t, err, lifecycle.RejectionNotFound)
	})
}

func TestCertificateUseCase_SuspendRevoke(t *testing.T) {
	t.Run("suspend persists the record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, notifier, testRegion)

		repo.EXPECT().GetByID(gomock.Any(), "cert-1").Return(liveCertificate(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Certificate) (entities.Certificate, error) {
				if c.Status != entities.CertificateStatusSuspended {
					t.Fatalf("expected suspended, got %s", c.Status)
				}
				if len(c.SuspensionHistory) != 1 || c.SuspensionHistory[0].Reason != "residue found" {
					t.Fatalf("suspension record missing: %+v", c.SuspensionHistory)
				}
				return c, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		if _, err := uc.Suspend(context.Background(), "cert-1", officer, "residue found"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-officer is refused before any read", func(t *testing.T) {
		uc := NewCertificateUseCase(nil, nil, nil, nil, testRegion)
		_, err := uc.Revoke(context.Background(), "cert-1", inspector, "fraud")
		expectRejection(t, err, lifecycle.RejectionForbidden)
	})

	t.Run("revoke opens the appeal window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, notifier, testRegion)

		repo.EXPECT().GetByID(gomock.Any(), "cert-1").Return(liveCertificate(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Certificate) (entities.Certificate, error) {
				if c.Revocation == nil {
					t.Fatalf("revocation info missing")
				}
				want := c.Revocation.RevokedAt.AddDate(0, 0, 30)
				if !c.Revocation.AppealDeadline.Equal(want) {
					t.Fatalf("expected 30 day appeal window, got %+v", c.Revocation)
				}
				return c, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		if _, err := uc.Revoke(context.Background(), "cert-1", officer, "fraudulent documents"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCertificateUseCase_Renew(t *testing.T) {
	t.Run("successor is created and the predecessor superseded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		notifier := mock_interfaces.NewMockINotifier(ctrl)
		uc := NewCertificateUseCase(repo, apps, seq, notifier, testRegion)

		old := liveCertificate()
		repo.EXPECT().GetByID(gomock.Any(), "cert-1").Return(old, nil)
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(approvedApplication(), nil)
		seq.EXPECT().Next(gomock.Any(), "certificates", gomock.Any()).Return(int64(99), nil)

		// The predecessor is retired before the successor exists, so at
		// most one active certificate is visible at any point.
		var successorID string
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Certificate) (entities.Certificate, error) {
				if c.Status != entities.CertificateStatusRenewed {
					t.Fatalf("predecessor should be renewed, got %s", c.Status)
				}
				if c.RenewedBy == "" {
					t.Fatalf("predecessor should point at the successor")
				}
				successorID = c.RenewedBy
				return c, nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Certificate) (entities.Certificate, error) {
				if c.ID != successorID {
					t.Fatalf("successor id should match the predecessor's pointer")
				}
				if c.Status != entities.CertificateStatusActive {
					t.Fatalf("successor must start active, got %s", c.Status)
				}
				return c, nil
			},
		)
		notifier.EXPECT().Notify(gomock.Any(), gomock.Any())

		got, err := uc.Renew(context.Background(), "cert-1", officer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != successorID {
			t.Fatalf("renew should return the successor, got %+v", got)
		}
	})

	t.Run("successor is not created when retiring the old record fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewCertificateUseCase(repo, apps, seq, nil, testRegion)

		repo.EXPECT().GetByID(gomock.Any(), "cert-1").Return(liveCertificate(), nil)
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(approvedApplication(), nil)
		seq.EXPECT().Next(gomock.Any(), "certificates", gomock.Any()).Return(int64(99), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Certificate{}, interfaces.ErrVersionConflict)

		// No Create expectation: a second active certificate must never
		// appear when the predecessor's retirement loses the race.
		_, err := uc.Renew(context.Background(), "cert-1", officer)
		expectRejection(t, err, lifecycle.RejectionConflict)
	})

	t.Run("suspended certificate cannot be renewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		apps := mock_interfaces.NewMockIApplicationRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewCertificateUseCase(repo, apps, seq, nil, testRegion)

		suspended := liveCertificate()
		suspended.Status = entities.CertificateStatusSuspended
		repo.EXPECT().GetByID(gomock.Any(), "cert-1").Return(suspended, nil)
		apps.EXPECT().GetByID(gomock.Any(), "app-1").Return(approvedApplication(), nil)
		seq.EXPECT().Next(gomock.Any(), "certificates", gomock.Any()).Return(int64(100), nil)

		_, err := uc.Renew(context.Background(), "cert-1", officer)
		expectRejection(t, err, lifecycle.RejectionInvalidTransition)
	})
}

func TestCertificateUseCase_ListExpiring(t *testing.T) {
	t.Run("threshold must be positive", func(t *testing.T) {
		uc := NewCertificateUseCase(nil, nil, nil, nil, testRegion)
		_, err := uc.ListExpiring(context.Background(), 0)
		expectRejection(t, err, lifecycle.RejectionValidation)
	})

	t.Run("filters already-expired candidates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICertificateRepository(ctrl)
		uc := NewCertificateUseCase(repo, nil, nil, nil, testRegion)

		now := time.Now().UTC()
		soon := liveCertificate()
		soon.ID = "cert-soon"
		soon.ExpiresAt = now.AddDate(0, 0, 20)
		past := liveCertificate()
		past.ID = "cert-past"
		past.ExpiresAt = now.Add(-time.Hour)

		repo.EXPECT().ListActiveExpiringBefore(gomock.Any(), gomock.Any()).
			Return([]entities.Certificate{soon, past}, nil)

		got, err := uc.ListExpiring(context.Background(), 60)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "cert-soon" {
			t.Fatalf("unexpected result: %+v", got)
		}
	})
}
