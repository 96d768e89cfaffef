package response

import (
	"log/slog"
	"time"

	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TrainerResponse struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName"`
	IsActive    bool      `json:"isActive"`
}

type ClientResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
}

type PackageResponse struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"clientId"`
	PackageType      string     `json:"packageType"`
	LessonsRemaining int        `json:"lessonsRemaining"`
	PurchaseDate     time.Time  `json:"purchaseDate"`
	ExpirationDate   *time.Time `json:"expirationDate,omitempty"`
	IsExpired        bool       `json:"isExpired"`
}

func FromTrainerViews(views []*queries.TrainerView) []*TrainerResponse {
	responses := make([]*TrainerResponse, 0, len(views))
	for _, v := range views {
		var resp TrainerResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Error("failed to convert trainer view", "error", err)
		}
		responses = append(responses, &resp)
	}
	return responses
}

func FromClientViews(views []*queries.ClientView) []*ClientResponse {
	responses := make([]*ClientResponse, 0, len(views))
	for _, v := range views {
		var resp ClientResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Error("failed to convert client view", "error", err)
		}
		responses = append(responses, &resp)
	}
	return responses
}

func FromPackageViews(views []*queries.PackageView) []*PackageResponse {
	responses := make([]*PackageResponse, 0, len(views))
	for _, v := range views {
		var resp PackageResponse
		if err := copier.Copy(&resp, v); err != nil {
			slog.Error("failed to convert package view", "error", err)
		}
		responses = append(responses, &resp)
	}
	return responses
}
