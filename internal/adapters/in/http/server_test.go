package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	server "tracking/internal/adapters/in/http"
	"tracking/internal/core/application/projection"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCreatePackage struct{ mock.Mock }

func (m *mockCreatePackage) Handle(
	ctx context.Context,
	cmd commands.CreatePackageCommand,
) result.Result[projection.PackageResponse] {
	return m.Called(ctx, cmd).Get(0).(result.Result[projection.PackageResponse])
}

type mockExchangeStatus struct{ mock.Mock }

func (m *mockExchangeStatus) Handle(
	ctx context.Context,
	cmd commands.ExchangeStatusCommand,
) result.Result[projection.PackageResponse] {
	return m.Called(ctx, cmd).Get(0).(result.Result[projection.PackageResponse])
}

type mockGetPackage struct{ mock.Mock }

func (m *mockGetPackage) Handle(
	ctx context.Context,
	query queries.GetPackageQuery,
) result.Result[projection.PackageResponse] {
	return m.Called(ctx, query).Get(0).(result.Result[projection.PackageResponse])
}

type mockListPackages struct{ mock.Mock }

func (m *mockListPackages) Handle(
	ctx context.Context,
	query queries.ListPackagesQuery,
) result.Result[[]projection.PackageResponse] {
	return m.Called(ctx, query).Get(0).(result.Result[[]projection.PackageResponse])
}

type mockFilterPackages struct{ mock.Mock }

func (m *mockFilterPackages) Handle(
	ctx context.Context,
	query queries.FilterPackagesQuery,
) result.Result[[]projection.PackageResponse] {
	return m.Called(ctx, query).Get(0).(result.Result[[]projection.PackageResponse])
}

type mockStatusHistory struct{ mock.Mock }

func (m *mockStatusHistory) Handle(
	ctx context.Context,
	query queries.GetStatusHistoryQuery,
) result.Result[[]projection.HistoryResponse] {
	return m.Called(ctx, query).Get(0).(result.Result[[]projection.HistoryResponse])
}

type mockEntityAdder[T any] struct{ mock.Mock }

func (m *mockEntityAdder[T]) AddEntity(ctx context.Context, entity T) result.Result[T] {
	return m.Called(ctx, entity).Get(0).(result.Result[T])
}

type fixture struct {
	createPackage  *mockCreatePackage
	exchangeStatus *mockExchangeStatus
	getPackage     *mockGetPackage
	listPackages   *mockListPackages
	filterPackages *mockFilterPackages
	statusHistory  *mockStatusHistory
	senders        *mockEntityAdder[*party.Sender]
	recipients     *mockEntityAdder[*party.Recipient]
	handler        http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		createPackage:  new(mockCreatePackage),
		exchangeStatus: new(mockExchangeStatus),
		getPackage:     new(mockGetPackage),
		listPackages:   new(mockListPackages),
		filterPackages: new(mockFilterPackages),
		statusHistory:  new(mockStatusHistory),
		senders:        new(mockEntityAdder[*party.Sender]),
		recipients:     new(mockEntityAdder[*party.Recipient]),
	}
	s := server.NewServer(server.Handlers{
		CreatePackage:  f.createPackage,
		ExchangeStatus: f.exchangeStatus,
		GetPackage:     f.getPackage,
		ListPackages:   f.listPackages,
		FilterPackages: f.filterPackages,
		StatusHistory:  f.statusHistory,
		Senders:        f.senders,
		Recipients:     f.recipients,
	}, parcel.NewTransitionTable(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	handler, err := server.NewRouter(s)
	require.NoError(t, err)
	f.handler = handler
	return f
}

type envelope struct {
	IsSuccessful bool            `json:"isSuccessful"`
	Data         json.RawMessage `json:"data"`
	Errors       []string        `json:"errors"`
	ErrorMessage *string         `json:"errorMessage"`
}

func (f *fixture) do(t *testing.T, method, target, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestServer_CreatePackage(t *testing.T) {
	t.Run("passes the body to the handler", func(t *testing.T) {
		f := newFixture(t)
		f.createPackage.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePackageCommand) bool {
			return cmd.TrackingNumber() == "TRK123456" && cmd.SenderID() == "s-1" && cmd.RecipientID() == "r-1"
		})).Return(result.Success(projection.PackageResponse{TrackingNumber: "TRK123456"})).Once()

		code, env := f.do(t, http.MethodPost, "/api/v1/packages",
			`{"trackingNumber":"TRK123456","senderId":"s-1","recipientId":"r-1"}`)

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.IsSuccessful)
		assert.Contains(t, string(env.Data), `"trackingNumber":"TRK123456"`)
		assert.Contains(t, string(env.Data), `"currentStatus":"Created"`)
		assert.Nil(t, env.ErrorMessage)
		f.createPackage.AssertExpectations(t)
	})

	t.Run("malformed body is an in-band failure", func(t *testing.T) {
		f := newFixture(t)

		code, env := f.do(t, http.MethodPost, "/api/v1/packages", `{"trackingNumber":`)

		assert.Equal(t, http.StatusOK, code)
		assert.False(t, env.IsSuccessful)
		require.NotNil(t, env.ErrorMessage)
		assert.Equal(t, "Invalid request body", *env.ErrorMessage)
		assert.Equal(t, "null", string(env.Data))
		f.createPackage.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("body violating the document is rejected before the handler", func(t *testing.T) {
		f := newFixture(t)

		code, env := f.do(t, http.MethodPost, "/api/v1/packages", `{"trackingNumber":42,"senderId":"s-1","recipientId":"r-1"}`)

		assert.Equal(t, http.StatusOK, code)
		assert.False(t, env.IsSuccessful)
		assert.Equal(t, []string{"Invalid request body"}, env.Errors)
		f.createPackage.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("missing body is rejected", func(t *testing.T) {
		f := newFixture(t)

		code, env := f.do(t, http.MethodPost, "/api/v1/packages", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Invalid request body"}, env.Errors)
		f.createPackage.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("absent fields reach the validator empty", func(t *testing.T) {
		f := newFixture(t)
		f.createPackage.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePackageCommand) bool {
			return cmd.TrackingNumber() == "" && cmd.SenderID() == "" && cmd.RecipientID() == "r-1"
		})).Return(result.Failure[projection.PackageResponse]("Tracking number is required", "SenderId is required")).Once()

		_, env := f.do(t, http.MethodPost, "/api/v1/packages", `{"recipientId":"r-1"}`)

		assert.Equal(t, []string{"Tracking number is required", "SenderId is required"}, env.Errors)
		f.createPackage.AssertExpectations(t)
	})

	t.Run("business failure stays 200", func(t *testing.T) {
		f := newFixture(t)
		f.createPackage.On("Handle", mock.Anything, mock.Anything).
			Return(result.Failure[projection.PackageResponse]("Sender does not exist")).Once()

		code, env := f.do(t, http.MethodPost, "/api/v1/packages", `{"trackingNumber":"T","senderId":"a","recipientId":"b"}`)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, []string{"Sender does not exist"}, env.Errors)
	})
}

func TestServer_ExchangeStatus(t *testing.T) {
	id := kernel.NewUUID().String()

	t.Run("path values reach the command", func(t *testing.T) {
		f := newFixture(t)
		f.exchangeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExchangeStatusCommand) bool {
			return cmd.PackageID() == id && cmd.StatusCode() == 1
		})).Return(result.Success(projection.PackageResponse{CurrentStatus: parcel.Sent})).Once()

		code, env := f.do(t, http.MethodPut, "/api/v1/packages/"+id+"/status/1", "")

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.IsSuccessful)
		assert.Contains(t, string(env.Data), `"currentStatus":"Sent"`)
		f.exchangeStatus.AssertExpectations(t)
	})

	t.Run("non numeric status becomes unknown", func(t *testing.T) {
		f := newFixture(t)
		f.exchangeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExchangeStatusCommand) bool {
			return cmd.StatusCode() == parcel.Unknown.Code()
		})).Return(result.Failure[projection.PackageResponse]("Invalid status transition")).Once()

		_, env := f.do(t, http.MethodPut, "/api/v1/packages/"+id+"/status/sent", "")

		assert.Equal(t, "Invalid status transition", *env.ErrorMessage)
		f.exchangeStatus.AssertExpectations(t)
	})

	t.Run("out of range status is passed as is", func(t *testing.T) {
		f := newFixture(t)
		f.exchangeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExchangeStatusCommand) bool {
			return cmd.StatusCode() == 42
		})).Return(result.Failure[projection.PackageResponse]("Invalid status transition")).Once()

		_, env := f.do(t, http.MethodPut, "/api/v1/packages/"+id+"/status/42", "")

		assert.Equal(t, "Invalid status transition", *env.ErrorMessage)
		f.exchangeStatus.AssertExpectations(t)
	})

	t.Run("malformed id still reaches the handler", func(t *testing.T) {
		f := newFixture(t)
		f.exchangeStatus.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ExchangeStatusCommand) bool {
			return cmd.PackageID() == "not-a-guid"
		})).Return(result.Failure[projection.PackageResponse]("Invalid packageId")).Once()

		_, env := f.do(t, http.MethodPut, "/api/v1/packages/not-a-guid/status/1", "")

		assert.Equal(t, "Invalid packageId", *env.ErrorMessage)
	})
}

func TestServer_Queries(t *testing.T) {
	id := kernel.NewUUID().String()

	t.Run("get package", func(t *testing.T) {
		f := newFixture(t)
		f.getPackage.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetPackageQuery) bool {
			return q.PackageID() == id
		})).Return(result.Failure[projection.PackageResponse]("package not found")).Once()

		code, env := f.do(t, http.MethodGet, "/api/v1/packages/"+id, "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "package not found", *env.ErrorMessage)
	})

	t.Run("list packages", func(t *testing.T) {
		f := newFixture(t)
		f.listPackages.On("Handle", mock.Anything, mock.Anything).
			Return(result.Success([]projection.PackageResponse{{TrackingNumber: "A"}, {TrackingNumber: "B"}})).Once()

		_, env := f.do(t, http.MethodGet, "/api/v1/packages", "")

		var data []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data, 2)
	})

	t.Run("history", func(t *testing.T) {
		f := newFixture(t)
		f.statusHistory.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetStatusHistoryQuery) bool {
			return q.PackageID() == id
		})).Return(result.Success([]projection.HistoryResponse{{Status: parcel.Created}})).Once()

		_, env := f.do(t, http.MethodGet, "/api/v1/packages/"+id+"/history", "")

		assert.True(t, env.IsSuccessful)
		assert.Contains(t, string(env.Data), `"status":"Created"`)
	})

	t.Run("search routes before the id route", func(t *testing.T) {
		f := newFixture(t)
		f.filterPackages.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FilterPackagesQuery) bool {
			return q.TrackingNumber() != nil && *q.TrackingNumber() == "TRK1" && q.StatusCode() == nil
		})).Return(result.Failure[[]projection.PackageResponse]("No packages found")).Once()

		_, env := f.do(t, http.MethodGet, "/api/v1/packages/search?trackingNumber=TRK1", "")

		assert.Equal(t, "No packages found", *env.ErrorMessage)
		f.getPackage.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("search by status", func(t *testing.T) {
		f := newFixture(t)
		f.filterPackages.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FilterPackagesQuery) bool {
			return q.TrackingNumber() == nil && q.StatusCode() != nil && *q.StatusCode() == 2
		})).Return(result.Success([]projection.PackageResponse{})).Once()

		_, env := f.do(t, http.MethodGet, "/api/v1/packages/search?status=2", "")

		assert.True(t, env.IsSuccessful)
		f.filterPackages.AssertExpectations(t)
	})

	t.Run("non numeric status query becomes unknown", func(t *testing.T) {
		f := newFixture(t)
		f.filterPackages.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.FilterPackagesQuery) bool {
			return q.StatusCode() != nil && *q.StatusCode() == parcel.Unknown.Code()
		})).Return(result.Failure[[]projection.PackageResponse]("No packages found")).Once()

		_, env := f.do(t, http.MethodGet, "/api/v1/packages/search?status=abc", "")

		assert.Equal(t, "No packages found", *env.ErrorMessage)
		f.filterPackages.AssertExpectations(t)
	})
}

func TestServer_Statuses(t *testing.T) {
	f := newFixture(t)

	_, env := f.do(t, http.MethodGet, "/api/v1/statuses", "")

	require.True(t, env.IsSuccessful)
	var raw []struct {
		Code    int      `json:"code"`
		Name    string   `json:"name"`
		Final   bool     `json:"final"`
		Targets []string `json:"targets"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &raw))
	require.Len(t, raw, len(projection.ProjectStatuses(parcel.NewTransitionTable())))
	assert.Equal(t, "Created", raw[0].Name)
	assert.Equal(t, []string{"Sent", "Cancelled"}, raw[0].Targets)
	assert.True(t, raw[4].Final)
}

func TestServer_CreateParties(t *testing.T) {
	t.Run("sender is projected", func(t *testing.T) {
		f := newFixture(t)
		f.senders.On("AddEntity", mock.Anything, mock.MatchedBy(func(s *party.Sender) bool {
			return s.Validate() == nil && s.Contact().Name() == "Jane Roe" && !s.ID().IsZero()
		})).Return(result.Success(party.RestoreSender(kernel.NewUUID(),
			party.NewContact("Jane Roe", "12 Main Street", "5551234567")))).Once()

		_, env := f.do(t, http.MethodPost, "/api/v1/senders",
			`{"name":"Jane Roe","address":"12 Main Street","phone":"5551234567"}`)

		require.True(t, env.IsSuccessful)
		assert.Contains(t, string(env.Data), `"name":"Jane Roe"`)
		assert.Contains(t, string(env.Data), `"phone":"5551234567"`)
	})

	t.Run("recipient is built with a fresh id", func(t *testing.T) {
		f := newFixture(t)
		var built *party.Recipient
		f.recipients.On("AddEntity", mock.Anything, mock.AnythingOfType("*party.Recipient")).
			Run(func(args mock.Arguments) { built = args.Get(1).(*party.Recipient) }).
			Return(result.Success(party.RestoreRecipient(kernel.NewUUID(),
				party.NewContact("John Doe", "34 Elm Street", "5559876543")))).Once()

		_, env := f.do(t, http.MethodPost, "/api/v1/recipients",
			`{"name":"John Doe","address":"34 Elm Street","phone":"5559876543"}`)

		require.True(t, env.IsSuccessful)
		require.NotNil(t, built)
		require.NoError(t, built.Validate())
		assert.False(t, built.ID().IsZero())
		assert.Equal(t, "34 Elm Street", built.Contact().Address())
	})

	t.Run("contact of the wrong type is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, env := f.do(t, http.MethodPost, "/api/v1/senders", `{"name":["Jane"]}`)

		assert.Equal(t, []string{"Invalid request body"}, env.Errors)
		f.senders.AssertNotCalled(t, "AddEntity", mock.Anything, mock.Anything)
	})

	t.Run("recipient validation messages are kept", func(t *testing.T) {
		f := newFixture(t)
		f.recipients.On("AddEntity", mock.Anything, mock.Anything).
			Return(result.Failure[*party.Recipient]("Name is required", "Phone is required")).Once()

		_, env := f.do(t, http.MethodPost, "/api/v1/recipients", `{"address":"34 Elm Street"}`)

		assert.False(t, env.IsSuccessful)
		assert.Equal(t, []string{"Name is required", "Phone is required"}, env.Errors)
	})
}

func TestServer_RecoversFromPanics(t *testing.T) {
	f := newFixture(t)
	f.listPackages.On("Handle", mock.Anything, mock.Anything).Panic("driver crashed").Once()

	code, env := f.do(t, http.MethodGet, "/api/v1/packages", "")

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.False(t, env.IsSuccessful)
	assert.Contains(t, *env.ErrorMessage, "driver crashed")
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestServer_SwaggerDocument(t *testing.T) {
	f := newFixture(t)
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi":"3.0.3"`)
	assert.Contains(t, rec.Body.String(), "/api/v1/packages/{id}/status/{status}")
}
