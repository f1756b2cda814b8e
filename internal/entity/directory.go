package entity

import "time"

type Scheme struct {
	ID                 int64     `db:"id"`
	Title              string    `db:"title"`
	Description        string    `db:"description"`
	Eligibility        string    `db:"eligibility"`
	Benefits           string    `db:"benefits"`
	ApplicationProcess string    `db:"application_process"`
	Deadline           string    `db:"deadline"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
}

type Pesticide struct {
	ID                 int64  `db:"id"`
	Name               string `db:"name"`
	Company            string `db:"company"`
	UsageInfo          string `db:"usage_info"`
	CropApplicable     string `db:"crop_applicable"`
	SafetyInstructions string `db:"safety_instructions"`
	Dosage             string `db:"dosage"`
	IsActive           bool   `db:"is_active"`
}
