package handlers

import (
	"github.com/gofiber/fiber/v3"

	"commentlens/internal/config"
)

type brandingData struct {
	SiteTitle   string
	SiteTagline string
	SiteFooter  string
}

func getBrandingData(cfg *config.Config) brandingData {
	return brandingData{
		SiteTitle:   cfg.SiteTitle,
		SiteTagline: cfg.SiteTagline,
		SiteFooter:  cfg.SiteFooter,
	}
}

// MergeBranding adds branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	branding := getBrandingData(cfg)
	data["SiteTitle"] = branding.SiteTitle
	data["SiteTagline"] = branding.SiteTagline
	data["SiteFooter"] = branding.SiteFooter
	return data
}
