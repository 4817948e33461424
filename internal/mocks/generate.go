// Package mocks provides mock implementations for testing the gencertify backend.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the port interfaces in internal/core. The mocks are generated using
// go:generate directives and committed alongside the code.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	repo := mocks.NewMockEvaluationRepository(ctrl)
//	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return("eval-1", nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=evaluation_repository_mock.go github.com/gencertify/gencertify/internal/core EvaluationRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=document_repository_mock.go github.com/gencertify/gencertify/internal/core DocumentRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=organization_repository_mock.go github.com/gencertify/gencertify/internal/core OrganizationRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=chat_session_store_mock.go github.com/gencertify/gencertify/internal/core ChatSessionStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=blob_store_mock.go github.com/gencertify/gencertify/internal/core BlobStore

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=model_provider_mock.go github.com/gencertify/gencertify/internal/core ModelProvider

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=task_queue_mock.go github.com/gencertify/gencertify/internal/core TaskQueue
