package dto

import "github.com/yukikurage/volunteer-directory-api/internal/models"

// CityDTO represents a city in API responses
type CityDTO struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	AdminName *string `json:"admin_name"`
}

// ActivityDTO represents an activity in API responses
type ActivityDTO struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// ProviderDTO represents a social, payment or contact provider
type ProviderDTO struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type CreateCityRequest struct {
	Title     string  `json:"title" binding:"required,max=255"`
	AdminName *string `json:"admin_name" binding:"omitempty,max=255"`
}

type CreateActivityRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description"`
}

type CreateProviderRequest struct {
	Title string `json:"title" binding:"required,max=255"`
}

func ToCityDTO(c models.City) CityDTO {
	return CityDTO{ID: c.ID, Title: c.Title, AdminName: c.AdminName}
}

func ToActivityDTO(a models.Activity) ActivityDTO {
	return ActivityDTO{ID: a.ID, Title: a.Title, Description: a.Description}
}

func ToSocialProviderDTO(p models.SocialProvider) ProviderDTO {
	return ProviderDTO{ID: p.ID, Title: p.Title}
}

func ToPaymentProviderDTO(p models.PaymentProvider) ProviderDTO {
	return ProviderDTO{ID: p.ID, Title: p.Title}
}

func ToContactProviderDTO(p models.ContactProvider) ProviderDTO {
	return ProviderDTO{ID: p.ID, Title: p.Title}
}
