package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-circuit-runner/internal/config"
	"github.com/MKhiriev/go-circuit-runner/internal/logger"
	"github.com/MKhiriev/go-circuit-runner/internal/mock"
	"github.com/MKhiriev/go-circuit-runner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newInfoBackend(ctrl *gomock.Controller) *mock.MockBackend {
	backend := mock.NewMockBackend(ctrl)
	backend.EXPECT().Name().Return("statevector_simulator").AnyTimes()
	backend.EXPECT().Method().Return(models.MethodStatevector).AnyTimes()
	return backend
}

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, newInfoBackend(ctrl), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc, err := NewAppInfoService(config.App{Version: ""}, newInfoBackend(ctrl), logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestNewAppInfoService_NilBackend_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, nil, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoBackend)
}

// ─────────────────────────────────────────────
// GetAppVersion / GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := NewAppInfoService(config.App{Version: "v1.2.3-beta+build.42"}, newInfoBackend(ctrl), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3-beta+build.42", svc.GetAppVersion(context.Background()))
}

func TestGetAppInfo_ReportsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, newInfoBackend(ctrl), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// the info is captured at construction, so a cancelled ctx does not matter
	assert.Equal(t, models.AppInfo{
		Version: "3.1.4",
		Backend: "statevector_simulator",
		Method:  models.MethodStatevector,
	}, svc.GetAppInfo(ctx))
}
