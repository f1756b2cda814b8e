package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const schema = `
	CREATE TABLE IF NOT EXISTS government_schemes (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		eligibility TEXT NOT NULL DEFAULT '',
		benefits TEXT NOT NULL DEFAULT '',
		application_process TEXT NOT NULL DEFAULT '',
		deadline TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS pesticides (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		usage_info TEXT NOT NULL DEFAULT '',
		crop_applicable TEXT NOT NULL DEFAULT '',
		safety_instructions TEXT NOT NULL DEFAULT '',
		dosage TEXT NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE
	);

	CREATE TABLE IF NOT EXISTS pesticide_shops (
		id BIGSERIAL PRIMARY KEY,
		shop_name VARCHAR(200) NOT NULL,
		owner_name VARCHAR(100) NOT NULL DEFAULT '',
		address TEXT NOT NULL,
		city VARCHAR(100) NOT NULL DEFAULT '',
		state VARCHAR(100) NOT NULL DEFAULT '',
		pincode VARCHAR(10) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		email VARCHAR(100) NOT NULL DEFAULT '',
		rating DOUBLE PRECISION,
		is_open BOOLEAN NOT NULL DEFAULT TRUE,
		opening_time VARCHAR(8) NOT NULL DEFAULT '',
		closing_time VARCHAR(8) NOT NULL DEFAULT '',
		products_available TEXT NOT NULL DEFAULT '',
		license_number VARCHAR(50) NOT NULL DEFAULT '',
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_shops_location ON pesticide_shops (latitude, longitude);
	CREATE INDEX IF NOT EXISTS idx_shops_city ON pesticide_shops (city);
`

const (
	querySeedScheme = `
		INSERT INTO government_schemes (title, description, eligibility, benefits, application_process, deadline)
		VALUES (:title, :description, :eligibility, :benefits, :application_process, :deadline)
	`

	querySeedPesticide = `
		INSERT INTO pesticides (name, company, usage_info, crop_applicable, safety_instructions, dosage)
		VALUES (:name, :company, :usage_info, :crop_applicable, :safety_instructions, :dosage)
	`

	querySeedShop = `
		INSERT INTO pesticide_shops (
			shop_name, owner_name, address, city, state, pincode, latitude, longitude,
			phone, email, products_available, opening_time, closing_time, license_number, verified
		) VALUES (
			:shop_name, :owner_name, :address, :city, :state, :pincode, :latitude, :longitude,
			:phone, :email, :products_available, :opening_time, :closing_time, :license_number, TRUE
		)
	`
)

// Migrate creates the directory tables and seeds each one that is empty.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	seeds := []struct {
		table string
		query string
		rows  []map[string]interface{}
	}{
		{table: "government_schemes", query: querySeedScheme, rows: seedSchemes},
		{table: "pesticides", query: querySeedPesticide, rows: seedPesticides},
		{table: "pesticide_shops", query: querySeedShop, rows: seedShops},
	}

	for _, seed := range seeds {
		var count int
		if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+seed.table); err != nil {
			return fmt.Errorf("count %s: %w", seed.table, err)
		}
		if count > 0 {
			continue
		}
		for _, row := range seed.rows {
			if _, err := tx.NamedExecContext(ctx, seed.query, row); err != nil {
				return fmt.Errorf("seed %s: %w", seed.table, err)
			}
		}
	}

	return tx.Commit()
}

var seedSchemes = []map[string]interface{}{
	{
		"title":               "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)",
		"description":         "Income support of ₹6,000 per year to small and marginal farmers",
		"eligibility":         "Small and marginal farmers with cultivable land up to 2 hectares",
		"benefits":            "₹6,000 per year in three equal installments",
		"application_process": "Apply through common service centers or online portal",
		"deadline":            "Ongoing",
	},
	{
		"title":               "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
		"description":         "Crop insurance scheme to provide financial support to farmers",
		"eligibility":         "All farmers growing notified crops in notified areas",
		"benefits":            "Insurance coverage against crop loss due to natural calamities",
		"application_process": "Apply through designated insurance companies",
		"deadline":            "Before sowing season",
	},
	{
		"title":               "Soil Health Card Scheme",
		"description":         "Provides soil health cards to farmers to understand soil nutrient status",
		"eligibility":         "All farmers",
		"benefits":            "Free soil testing and nutrient management recommendations",
		"application_process": "Apply through agriculture department",
		"deadline":            "Ongoing",
	},
}

var seedPesticides = []map[string]interface{}{
	{
		"name":                "Chlorpyrifos 20% EC",
		"company":             "PI Industries",
		"usage_info":          "Broad-spectrum organophosphate insecticide",
		"crop_applicable":     "Cotton, Rice, Vegetables, Fruits",
		"safety_instructions": "Highly toxic. Use full protective equipment.",
		"dosage":              "2.0-3.0 ml per liter of water",
	},
	{
		"name":                "Imidacloprid 17.8% SL",
		"company":             "Bayer CropScience",
		"usage_info":          "Systemic insecticide for sucking pests",
		"crop_applicable":     "Cotton, Rice, Vegetables, Chilli",
		"safety_instructions": "Moderately toxic. Avoid contact with skin.",
		"dosage":              "0.3-0.5 ml per liter of water",
	},
	{
		"name":                "Mancozeb 75% WP",
		"company":             "Indofil Industries",
		"usage_info":          "Broad-spectrum protective fungicide",
		"crop_applicable":     "Potato, Tomato, Grapes, Wheat",
		"safety_instructions": "Avoid inhalation of dust. Wash hands after use.",
		"dosage":              "2.0-2.5 g per liter of water",
	},
	{
		"name":                "Pendimethalin 30% EC",
		"company":             "BASF India",
		"usage_info":          "Pre-emergence herbicide for annual grasses and broadleaf weeds",
		"crop_applicable":     "Cotton, Soybean, Groundnut, Sunflower",
		"safety_instructions": "Avoid inhalation. Use in well-ventilated areas.",
		"dosage":              "2.5-3.0 liters per hectare",
	},
	{
		"name":                "Spinosad 45% SC",
		"company":             "Dow AgroSciences",
		"usage_info":          "Natural insecticide for caterpillar control",
		"crop_applicable":     "Cotton, Vegetables, Fruits",
		"safety_instructions": "Low toxicity. Still use basic protection.",
		"dosage":              "0.5-1.0 ml per liter of water",
	},
}

var seedShops = []map[string]interface{}{
	shopSeed("Green Farm Pesticides & Seeds", "Ramesh Patil", "Shop No. 15, Market Yard, Gultekdi", "411037", 18.5018, 73.8636,
		"+91 9876543210", "greenfarm@example.com", "Insecticides,Fungicides,Herbicides,Seeds,Fertilizers", "08:00:00", "20:00:00", "PUN/PEST/2020/001"),
	shopSeed("Agri Solutions & Supplies", "Suresh Kamble", "Near Bus Stand, Hadapsar", "411028", 18.5089, 73.9260,
		"+91 9876543211", "agrisolutions@example.com", "Pesticides,Bio-fertilizers,Sprayers,Safety Equipment", "07:30:00", "21:00:00", "PUN/PEST/2019/045"),
	shopSeed("Kisan Seva Kendra", "Vijay Deshmukh", "Main Road, Pimpri", "411018", 18.6298, 73.7997,
		"+91 9876543212", "kisanseva@example.com", "All Agricultural Inputs,Tools,Irrigation Equipment", "08:00:00", "19:00:00", "PUN/PEST/2021/089"),
	shopSeed("Farm Fresh Agro Center", "Prakash Jadhav", "Near Railway Station, Khadki", "411003", 18.5675, 73.8521,
		"+91 9876543213", "farmfresh@example.com", "Pesticides,Organic Fertilizers,Seeds,Tools", "09:00:00", "20:00:00", "PUN/PEST/2020/123"),
	shopSeed("Crop Care & Protection", "Santosh More", "Market Area, Wakad", "411057", 18.5975, 73.7617,
		"+91 9876543214", "cropcare@example.com", "Pesticides,Weedicides,Growth Regulators,Sprayers", "08:30:00", "20:30:00", "PUN/PEST/2022/034"),
	shopSeed("Bharat Agro Store", "Ganesh Shinde", "Shop Complex, Hinjewadi", "411057", 18.5912, 73.7389,
		"+91 9876543215", "bharatagro@example.com", "Pesticides,Fertilizers,Seeds,Agricultural Equipment", "07:00:00", "21:00:00", "PUN/PEST/2019/078"),
}

func shopSeed(name, owner, address, pincode string, lat, lng float64, phone, email, products, opens, closes, license string) map[string]interface{} {
	return map[string]interface{}{
		"shop_name":          name,
		"owner_name":         owner,
		"address":            address,
		"city":               "Pune",
		"state":              "Maharashtra",
		"pincode":            pincode,
		"latitude":           lat,
		"longitude":          lng,
		"phone":              phone,
		"email":              email,
		"products_available": products,
		"opening_time":       opens,
		"closing_time":       closes,
		"license_number":     license,
	}
}
