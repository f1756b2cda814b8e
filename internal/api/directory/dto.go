package directory

import "time"

const (
	DefaultSchemeLimit = 10
	MaxSchemeLimit     = 50
)

type SchemeResponse struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Eligibility        string    `json:"eligibility"`
	Benefits           string    `json:"benefits"`
	ApplicationProcess string    `json:"application_process"`
	Deadline           string    `json:"deadline"`
	CreatedAt          time.Time `json:"created_at"`
}

type SchemeListResponse struct {
	Schemes []SchemeResponse `json:"schemes"`
	Total   int              `json:"total"`
}

type PesticideResponse struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Company            string `json:"company"`
	UsageInfo          string `json:"usage_info"`
	CropApplicable     string `json:"crop_applicable"`
	SafetyInstructions string `json:"safety_instructions"`
	Dosage             string `json:"dosage"`
}

type PesticideListResponse struct {
	Pesticides []PesticideResponse `json:"pesticides"`
	Total      int                 `json:"total"`
}

type CreateShopRequest struct {
	Name          string   `json:"name" validate:"required,min=2,max=200"`
	OwnerName     string   `json:"owner_name" validate:"omitempty,max=100"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"omitempty,max=100"`
	State         string   `json:"state" validate:"omitempty,max=100"`
	Pincode       string   `json:"pincode" validate:"omitempty,numeric,len=6"`
	Latitude      *float64 `json:"latitude" validate:"required"`
	Longitude     *float64 `json:"longitude" validate:"required"`
	Phone         string   `json:"phone" validate:"omitempty,max=20"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Products      []string `json:"products" validate:"omitempty,dive,min=1"`
	OpeningTime   string   `json:"opening_time" validate:"omitempty,datetime=15:04:05"`
	ClosingTime   string   `json:"closing_time" validate:"omitempty,datetime=15:04:05"`
	LicenseNumber string   `json:"license_number" validate:"omitempty,max=50"`
}

type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
	Total int            `json:"total"`
}

type ShopResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Phone       string   `json:"phone,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	OpeningTime string   `json:"opening_time,omitempty"`
	ClosingTime string   `json:"closing_time,omitempty"`
	Products    []string `json:"products,omitempty"`
}
