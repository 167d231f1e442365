// Package projection maps domain objects to the shapes handed to clients.
// Responses are plain values; they never expose a live aggregate.
package projection

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/parcel"
	"tracking/internal/core/domain/model/party"
)

// PartyResponse is the public view of a sender or recipient.
type PartyResponse struct {
	ID      kernel.UUID `json:"id"`
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Phone   string      `json:"phone"`
}

// PackageResponse is the public view of a package. Sender and Recipient are
// nil when the parties were not loaded with the package.
type PackageResponse struct {
	ID             kernel.UUID    `json:"id"`
	TrackingNumber string         `json:"trackingNumber"`
	CurrentStatus  parcel.Status  `json:"currentStatus"`
	SenderID       kernel.UUID    `json:"senderId"`
	RecipientID    kernel.UUID    `json:"recipientId"`
	Sender         *PartyResponse `json:"sender,omitempty"`
	Recipient      *PartyResponse `json:"recipient,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// HistoryResponse is the public view of one status history entry.
type HistoryResponse struct {
	ID        kernel.UUID   `json:"id"`
	Status    parcel.Status `json:"status"`
	ChangedAt time.Time     `json:"changedAt"`
}

// StatusResponse describes a status and where it may go next.
type StatusResponse struct {
	Code    int             `json:"code"`
	Name    string          `json:"name"`
	Final   bool            `json:"final"`
	Targets []parcel.Status `json:"targets"`
}

// Projector maps domain objects to responses.
type Projector interface {
	Package(pkg *parcel.Package) PackageResponse
	Packages(pkgs []*parcel.Package) []PackageResponse
	History(pkg *parcel.Package) []HistoryResponse
}

// Party is implemented by *party.Sender and *party.Recipient.
type Party interface {
	ID() kernel.UUID
	Contact() party.Contact
}

// DefaultProjector is the Projector used by the service.
type DefaultProjector struct{}

var _ Projector = DefaultProjector{}

func NewProjector() DefaultProjector {
	return DefaultProjector{}
}

func (p DefaultProjector) Package(pkg *parcel.Package) PackageResponse {
	resp := PackageResponse{
		ID:             pkg.ID(),
		TrackingNumber: pkg.TrackingNumber(),
		CurrentStatus:  pkg.Status(),
		SenderID:       pkg.SenderID(),
		RecipientID:    pkg.RecipientID(),
		CreatedAt:      pkg.CreatedAt(),
	}

	if s := pkg.Sender(); s != nil {
		sender := ProjectParty(s)
		resp.Sender = &sender
	}
	if r := pkg.Recipient(); r != nil {
		recipient := ProjectParty(r)
		resp.Recipient = &recipient
	}

	return resp
}

func (p DefaultProjector) Packages(pkgs []*parcel.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, p.Package(pkg))
	}
	return out
}

// History projects the package history, oldest first.
func (p DefaultProjector) History(pkg *parcel.Package) []HistoryResponse {
	history := pkg.History()

	out := make([]HistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, HistoryResponse{
			ID:        h.ID(),
			Status:    h.Status(),
			ChangedAt: h.ChangedAt(),
		})
	}
	return out
}

// ProjectParty maps a sender or recipient to its public view.
func ProjectParty(p Party) PartyResponse {
	c := p.Contact()
	return PartyResponse{
		ID:      p.ID(),
		Name:    c.Name(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}
}

// ProjectStatuses lists every status with its code and allowed targets.
func ProjectStatuses(table parcel.TransitionTable) []StatusResponse {
	statuses := parcel.Statuses()

	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, StatusResponse{
			Code:    s.Code(),
			Name:    s.String(),
			Final:   table.IsFinal(s),
			Targets: table.Targets(s),
		})
	}
	return out
}
