package domain

// Defaults applied when a company is onboarded. Every new company gets a 1:1
// earning rule and a starter promotion so the mobile app has something to show.
const (
	DefaultRequiredAmount       = 1.0
	DefaultPointsToEarn         = 1.0
	DefaultPromotionThreshold   = 1000.0
	DefaultPromotionDescription = "Default promotion"
)

// Logo content types accepted on upload, mapped to file extension.
var AllowedLogoContentTypes = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
}

// Promo SMS messages must fit a single segment.
const SMSMaxLength = 160
