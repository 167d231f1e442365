package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"tracking/internal/core/application/projection"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/result"

	"github.com/labstack/echo/v4"
)

const invalidRequestBody = "Invalid request body"

// Use case contracts the server depends on. The application handlers satisfy
// them directly.
type (
	CreatePackageHandler interface {
		Handle(ctx context.Context, cmd commands.CreatePackageCommand) result.Result[projection.PackageResponse]
	}

	ExchangeStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ExchangeStatusCommand) result.Result[projection.PackageResponse]
	}

	GetPackageHandler interface {
		Handle(ctx context.Context, query queries.GetPackageQuery) result.Result[projection.PackageResponse]
	}

	ListPackagesHandler interface {
		Handle(ctx context.Context, query queries.ListPackagesQuery) result.Result[[]projection.PackageResponse]
	}

	FilterPackagesHandler interface {
		Handle(ctx context.Context, query queries.FilterPackagesQuery) result.Result[[]projection.PackageResponse]
	}

	GetStatusHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetStatusHistoryQuery) result.Result[[]projection.HistoryResponse]
	}

	EntityAdder[T any] interface {
		AddEntity(ctx context.Context, entity T) result.Result[T]
	}
)

// Handlers groups everything the server dispatches to.
type Handlers struct {
	CreatePackage  CreatePackageHandler
	ExchangeStatus ExchangeStatusHandler
	GetPackage     GetPackageHandler
	ListPackages   ListPackagesHandler
	FilterPackages FilterPackagesHandler
	StatusHistory  GetStatusHistoryHandler
	Senders        EntityAdder[*party.Sender]
	Recipients     EntityAdder[*party.Recipient]
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface. It translates HTTP requests into
// commands and queries; every operation answers 200 with the serialized
// result, business failures included.
type Server struct {
	handlers Handlers
	table    parcel.TransitionTable
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, table parcel.TransitionTable, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		table:    table,
		logger:   logger.With("component", "http"),
	}
}

// CreatePackage handles POST /api/v1/packages.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var req servers.CreatePackageRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusOK, result.Failure[projection.PackageResponse](invalidRequestBody))
	}

	cmd := commands.NewCreatePackageCommand(value(req.TrackingNumber), value(req.SenderId), value(req.RecipientId))
	return ctx.JSON(http.StatusOK, s.handlers.CreatePackage.Handle(ctx.Request().Context(), cmd))
}

// ListPackages handles GET /api/v1/packages.
func (s *Server) ListPackages(ctx echo.Context) error {
	res := s.handlers.ListPackages.Handle(ctx.Request().Context(), queries.NewListPackagesQuery())
	return ctx.JSON(http.StatusOK, res)
}

// GetPackage handles GET /api/v1/packages/:id.
func (s *Server) GetPackage(ctx echo.Context, id servers.PackageId) error {
	res := s.handlers.GetPackage.Handle(ctx.Request().Context(), queries.NewGetPackageQuery(id))
	return ctx.JSON(http.StatusOK, res)
}

// ExchangeStatus handles PUT /api/v1/packages/:id/status/:status.
func (s *Server) ExchangeStatus(ctx echo.Context, id servers.PackageId, status string) error {
	cmd := commands.NewExchangeStatusCommand(id, statusCode(status))
	return ctx.JSON(http.StatusOK, s.handlers.ExchangeStatus.Handle(ctx.Request().Context(), cmd))
}

// StatusHistory handles GET /api/v1/packages/:id/history.
func (s *Server) StatusHistory(ctx echo.Context, id servers.PackageId) error {
	res := s.handlers.StatusHistory.Handle(ctx.Request().Context(), queries.NewGetStatusHistoryQuery(id))
	return ctx.JSON(http.StatusOK, res)
}

// SearchPackages handles GET /api/v1/packages/search.
// Exactly one of trackingNumber or status must be given.
func (s *Server) SearchPackages(ctx echo.Context, params servers.SearchPackagesParams) error {
	var trackingNumber *string
	if tn := value(params.TrackingNumber); tn != "" {
		trackingNumber = &tn
	}

	var code *int
	if raw := value(params.Status); raw != "" {
		c := statusCode(raw)
		code = &c
	}

	query := queries.NewFilterPackagesQuery(trackingNumber, code)
	return ctx.JSON(http.StatusOK, s.handlers.FilterPackages.Handle(ctx.Request().Context(), query))
}

// Statuses handles GET /api/v1/statuses.
func (s *Server) Statuses(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, result.Success(projection.ProjectStatuses(s.table)))
}

// CreateSender handles POST /api/v1/senders.
func (s *Server) CreateSender(ctx echo.Context) error {
	var req servers.ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusOK, result.Failure[projection.PartyResponse](invalidRequestBody))
	}

	sender, err := party.NewSender(kernel.NewUUID(), contact(req))
	if err != nil {
		return ctx.JSON(http.StatusOK, result.FromError[projection.PartyResponse](err))
	}

	res := s.handlers.Senders.AddEntity(ctx.Request().Context(), sender)
	return ctx.JSON(http.StatusOK, projectPartyResult(res))
}

// CreateRecipient handles POST /api/v1/recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var req servers.ContactRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusOK, result.Failure[projection.PartyResponse](invalidRequestBody))
	}

	recipient, err := party.NewRecipient(kernel.NewUUID(), contact(req))
	if err != nil {
		return ctx.JSON(http.StatusOK, result.FromError[projection.PartyResponse](err))
	}

	res := s.handlers.Recipients.AddEntity(ctx.Request().Context(), recipient)
	return ctx.JSON(http.StatusOK, projectPartyResult(res))
}

func projectPartyResult[T projection.Party](res result.Result[T]) result.Result[projection.PartyResponse] {
	if !res.IsSuccessful() {
		return result.Failures[projection.PartyResponse](res.Errors())
	}
	return result.Success(projection.ProjectParty(res.Data()))
}

func contact(req servers.ContactRequest) party.Contact {
	return party.NewContact(value(req.Name), value(req.Address), value(req.Phone))
}

// statusCode decodes a status segment. Anything that is not an integer is the
// Unknown status, which no transition accepts.
func statusCode(raw string) int {
	code, err := strconv.Atoi(raw)
	if err != nil {
		return parcel.Unknown.Code()
	}
	return code
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
