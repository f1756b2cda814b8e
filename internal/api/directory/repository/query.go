package directoryRepository

import "strings"

const (
	queryGetActiveSchemes = `
		SELECT
			id,
			title,
			description,
			eligibility,
			benefits,
			application_process,
			deadline,
			is_active,
			created_at
		FROM government_schemes
		WHERE is_active = TRUE
		ORDER BY created_at DESC
		LIMIT :limit
	`

	querySearchPesticides = `
		SELECT
			id,
			name,
			company,
			usage_info,
			crop_applicable,
			safety_instructions,
			dosage,
			is_active
		FROM pesticides
		WHERE is_active = TRUE AND name ILIKE :pattern
		ORDER BY name ASC
	`

	queryGetVerifiedShops = `
		SELECT
			id,
			shop_name,
			owner_name,
			address,
			city,
			state,
			pincode,
			latitude,
			longitude,
			phone,
			email,
			rating,
			is_open,
			opening_time,
			closing_time,
			products_available,
			license_number,
			verified,
			created_at
		FROM pesticide_shops
		WHERE verified = TRUE
		ORDER BY shop_name ASC
	`

	querySearchShops = `
		SELECT
			id,
			shop_name,
			owner_name,
			address,
			city,
			state,
			pincode,
			latitude,
			longitude,
			phone,
			email,
			rating,
			is_open,
			opening_time,
			closing_time,
			products_available,
			license_number,
			verified,
			created_at
		FROM pesticide_shops
		WHERE verified = TRUE
			AND (shop_name ILIKE :pattern OR address ILIKE :pattern OR city ILIKE :pattern)
		ORDER BY shop_name ASC
	`

	queryCreateShop = `
		INSERT INTO pesticide_shops (
			shop_name,
			owner_name,
			address,
			city,
			state,
			pincode,
			latitude,
			longitude,
			phone,
			email,
			is_open,
			opening_time,
			closing_time,
			products_available,
			license_number,
			verified
		) VALUES (
			:shop_name,
			:owner_name,
			:address,
			:city,
			:state,
			:pincode,
			:latitude,
			:longitude,
			:phone,
			:email,
			TRUE,
			:opening_time,
			:closing_time,
			:products_available,
			:license_number,
			TRUE
		)
		RETURNING id, created_at
	`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring ILIKE match; an empty term matches everything.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(term)) + "%"
}
