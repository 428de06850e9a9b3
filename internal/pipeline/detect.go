package pipeline

import (
	"cardstmt/internal"
	"cardstmt/internal/issuer"
)

func DetectIssuer(reg *issuer.Registry, text string) internal.Issuer {
	if text == "" {
		return internal.IssuerUnknown
	}
	for _, profile := range reg.Profiles() {
		for _, marker := range profile.Markers {
			if marker.MatchString(text) {
				return profile.Issuer
			}
		}
	}
	return internal.IssuerUnknown
}
