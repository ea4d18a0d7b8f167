package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCertificate_IsValid(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	cert := Certificate{Status: CertificateStatusActive, ExpiresAt: now.AddDate(1, 0, 0)}

	assert.True(t, cert.IsValid(now))
	assert.True(t, cert.IsValid(cert.ExpiresAt), "expiry instant itself is still valid")
	assert.False(t, cert.IsValid(cert.ExpiresAt.Add(time.Second)))

	for _, status := range []CertificateStatus{
		CertificateStatusSuspended,
		CertificateStatusRevoked,
		CertificateStatusExpired,
		CertificateStatusRenewed,
	} {
		c := cert
		c.Status = status
		assert.False(t, c.IsValid(now), "status %s must be invalid", status)
	}
}

func TestCertificate_IsExpiringSoon(t *testing.T) {
	issued := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	cert := Certificate{
		Status:    CertificateStatusActive,
		IssuedAt:  issued,
		ExpiresAt: issued.AddDate(3, 0, 0),
	}
	assert.Equal(t, time.Date(2028, 1, 15, 0, 0, 0, 0, time.UTC), cert.ExpiresAt)

	t.Run("well before the threshold", func(t *testing.T) {
		now := time.Date(2027, 12, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, cert.IsExpiringSoon(now, 30))
	})

	t.Run("inside the threshold", func(t *testing.T) {
		now := time.Date(2027, 12, 20, 0, 0, 0, 0, time.UTC)
		assert.True(t, cert.IsExpiringSoon(now, 30))
	})

	t.Run("already expired is invalid, not expiring-soon", func(t *testing.T) {
		now := time.Date(2028, 2, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, cert.IsExpiringSoon(now, 30))
	})

	t.Run("suspended is never expiring-soon", func(t *testing.T) {
		c := cert
		c.Status = CertificateStatusSuspended
		now := time.Date(2027, 12, 20, 0, 0, 0, 0, time.UTC)
		assert.False(t, c.IsExpiringSoon(now, 30))
	})
}

func TestCertificate_IsLive(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("active and suspended stay live", func(t *testing.T) {
		cert := Certificate{Status: CertificateStatusActive, ExpiresAt: now.AddDate(1, 0, 0)}
		assert.True(t, cert.IsLive(now))
		cert.Status = CertificateStatusSuspended
		assert.True(t, cert.IsLive(now))
	})

	t.Run("terminal statuses free the slot", func(t *testing.T) {
		for _, status := range []CertificateStatus{
			CertificateStatusRevoked, CertificateStatusExpired, CertificateStatusRenewed,
		} {
			cert := Certificate{Status: status, ExpiresAt: now.AddDate(1, 0, 0)}
			assert.False(t, cert.IsLive(now), "status %s", status)
		}
	})

	t.Run("past expiry frees the slot", func(t *testing.T) {
		cert := Certificate{Status: CertificateStatusActive, ExpiresAt: now.Add(-time.Hour)}
		assert.False(t, cert.IsLive(now))
	})
}
