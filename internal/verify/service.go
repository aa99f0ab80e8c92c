// Package verify implements access-key verification and first-use device
// binding against the key store.
package verify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"digitflow/ent"
	"digitflow/ent/accesskey"
	"digitflow/ent/bounddevice"
	"digitflow/internal/logx"
)

var verifyLogger = logx.GetScope("verify")

// DenyCode classifies why a verification was refused.
type DenyCode string

const (
	DenyNone        DenyCode = ""
	DenyInvalid     DenyCode = "invalid"      // unknown or deactivated key
	DenyExpired     DenyCode = "expired"      // expires_at in the past
	DenyConflict    DenyCode = "conflict"     // single-device key bound elsewhere
	DenyDeviceLimit DenyCode = "device_limit" // multi-device pool exhausted
)

// Result is the outcome of a Verify or Check call.
type Result struct {
	OK     bool
	Code   DenyCode
	Reason string
	Key    *ent.AccessKey
}

// Service decides authenticate/deny for (key, fingerprint) pairs and performs
// first-use device binding.
type Service struct {
	client *ent.Client
}

// New returns a Service backed by the given ent client.
func New(client *ent.Client) *Service {
	return &Service{client: client}
}

// Verify authenticates the key+fingerprint pair, binding the fingerprint on
// first use. Binding claims a slot through a conditional update on
// device_count so two racing first-use verifications cannot both succeed
// past the device limit.
func (s *Service) Verify(ctx context.Context, key, fingerprint string) (*Result, error) {
	ak, err := s.client.AccessKey.Query().Where(accesskey.KeyEQ(key)).Only(ctx)
	if ent.IsNotFound(err) {
		return denied(DenyInvalid, "invalid or inactive access key"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query access key: %w", err)
	}
	if !ak.IsActive {
		return denied(DenyInvalid, "invalid or inactive access key"), nil
	}

	now := time.Now().UTC()
	// Wall-clock comparison, no grace period.
	if ak.ExpiresAt != nil && ak.ExpiresAt.Before(now) {
		return denied(DenyExpired, "access key has expired"), nil
	}

	dev, err := s.client.BoundDevice.Query().
		Where(bounddevice.FingerprintEQ(fingerprint), bounddevice.HasKeyWith(accesskey.ID(ak.ID))).
		First(ctx)
	switch {
	case err == nil:
		// Known device: touch timestamps and allow.
		if err := s.client.BoundDevice.UpdateOne(dev).SetLastSeenAt(now).Exec(ctx); err != nil {
			return nil, fmt.Errorf("touch device: %w", err)
		}
		if err := s.touchKey(ctx, ak, now); err != nil {
			return nil, err
		}
		return allowed(ak), nil
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("query bound device: %w", err)
	}

	// New fingerprint: claim a binding slot. Zero affected rows means the
	// limit was already reached (possibly by a concurrent first use).
	n, err := s.client.AccessKey.Update().
		Where(accesskey.ID(ak.ID), accesskey.DeviceCountLT(ak.DeviceLimit)).
		AddDeviceCount(1).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claim device slot: %w", err)
	}
	if n == 0 {
		if ak.DeviceLimit == 1 {
			return denied(DenyConflict, "this access key is already in use on another device"), nil
		}
		return denied(DenyDeviceLimit,
			fmt.Sprintf("device limit reached (%d devices)", ak.DeviceLimit)), nil
	}

	_, err = s.client.BoundDevice.Create().
		SetFingerprint(fingerprint).
		SetKey(ak).
		SetFirstSeenAt(now).
		SetLastSeenAt(now).
		Save(ctx)
	if err != nil {
		// Roll the claim back so the slot is not leaked.
		_, _ = s.client.AccessKey.Update().
			Where(accesskey.ID(ak.ID), accesskey.DeviceCountGT(0)).
			AddDeviceCount(-1).
			Save(ctx)
		return nil, fmt.Errorf("bind device: %w", err)
	}
	if err := s.touchKey(ctx, ak, now); err != nil {
		return nil, err
	}

	verifyLogger.Info("device bound",
		zap.String("key", ak.Key),
		zap.Int("device_limit", ak.DeviceLimit),
	)
	return allowed(ak), nil
}

// Check is the non-mutating re-validation used by the session gate: the key
// must be active, unexpired and already bound to the presented fingerprint.
func (s *Service) Check(ctx context.Context, key, fingerprint string) (*Result, error) {
	ak, err := s.client.AccessKey.Query().
		Where(
			accesskey.KeyEQ(key),
			accesskey.IsActive(true),
			accesskey.HasDevicesWith(bounddevice.FingerprintEQ(fingerprint)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return denied(DenyInvalid, "invalid or inactive access key"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("check access key: %w", err)
	}
	if ak.ExpiresAt != nil && ak.ExpiresAt.Before(time.Now().UTC()) {
		return denied(DenyExpired, "access key has expired"), nil
	}
	return allowed(ak), nil
}

func (s *Service) touchKey(ctx context.Context, ak *ent.AccessKey, now time.Time) error {
	if err := s.client.AccessKey.UpdateOne(ak).SetLastUsedAt(now).Exec(ctx); err != nil {
		return fmt.Errorf("touch key: %w", err)
	}
	return nil
}

func allowed(ak *ent.AccessKey) *Result {
	return &Result{OK: true, Key: ak}
}

func denied(code DenyCode, reason string) *Result {
	return &Result{OK: false, Code: code, Reason: reason}
}
