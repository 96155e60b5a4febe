// Package mocks provides generated mock implementations for testing the
// console services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the upstream port interfaces. To regenerate mocks after interface changes,
// run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockAPI := mocks.NewMockGuideAPI(ctrl)
//	mockAPI.EXPECT().List(gomock.Any()).Return(guides, nil)
package mocks

// Generate mock for GuideAPI interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=guide_api_mock.go github.com/sikayet/console-api/internal/ports GuideAPI

// Generate mock for ComplaintAPI interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=complaint_api_mock.go github.com/sikayet/console-api/internal/ports ComplaintAPI

// Generate mock for UserAPI interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_api_mock.go github.com/sikayet/console-api/internal/ports UserAPI

// Generate mock for AuditRecorder interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=audit_recorder_mock.go github.com/sikayet/console-api/internal/ports AuditRecorder
