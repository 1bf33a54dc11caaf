package models

// PointsInCompany is a read-only projection: one client's balance at one
// company, joined with the company's display fields.
type PointsInCompany struct {
	CompanyID    uint    `json:"company_id"`
	Name         string  `json:"name"`
	UrlImageLogo string  `json:"url_image_logo"`
	Points       float64 `json:"points"`
}
