// Package fetch - platform.go provides platform detection and platform-specific selectors.
package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known portfolio hosting platform.
type Platform string

const (
	// PlatformGitHubPages is a site served from github.io
	PlatformGitHubPages Platform = "github-pages"
	// PlatformNetlify is a site served from netlify.app
	PlatformNetlify Platform = "netlify"
	// PlatformVercel is a site served from vercel.app
	PlatformVercel Platform = "vercel"
	// PlatformNotion is a public Notion page
	PlatformNotion Platform = "notion"
	// PlatformUnknown is an unrecognized platform
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the portfolio hosting platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}

	host := strings.ToLower(parsed.Host)

	if strings.HasSuffix(host, "github.io") {
		return PlatformGitHubPages
	}

	if strings.HasSuffix(host, "netlify.app") ||
		strings.HasSuffix(host, "netlify.com") {
		return PlatformNetlify
	}

	if strings.HasSuffix(host, "vercel.app") ||
		strings.HasSuffix(host, "now.sh") {
		return PlatformVercel
	}

	if strings.Contains(host, "notion.site") ||
		strings.Contains(host, "notion.so") {
		return PlatformNotion
	}

	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors optimized for a specific platform.
func PlatformContentSelectors(platform Platform) []string {
	switch platform {
	case PlatformGitHubPages:
		return []string{
			".markdown-body", // Jekyll/minima and GitHub README themes
			".page-content",
			".post-content",
			"#main_content",
			"main",
			".content",
		}
	case PlatformNetlify, PlatformVercel:
		return []string{
			"main",
			"#root",   // React mount points
			"#__next", // Next.js mount point
			"#app",
			".content",
		}
	case PlatformNotion:
		return []string{
			".notion-page-content",
			".notion-page",
			"main",
		}
	default:
		return PortfolioSelectors()
	}
}

// PlatformNoiseSelectors returns noise exclusion selectors for a specific platform.
func PlatformNoiseSelectors(platform Platform) []string {
	// Common noise selectors for all platforms
	common := []string{
		// Contact forms
		"form",
		"#contact-form",
		".contact-form",

		// Social and share buttons
		".social-share",
		".share-buttons",
		".social-links",

		// Cookie and GDPR
		".cookie-banner",
		".cookie-consent",
		".gdpr-notice",

		// Generic navigation already handled in fetch.go
	}

	switch platform {
	case PlatformGitHubPages:
		return append(common,
			".site-header",
			".site-footer",
			".page-navigation",
		)
	case PlatformNotion:
		return append(common,
			".notion-topbar",
			".notion-overlay-container",
		)
	default:
		return common
	}
}
