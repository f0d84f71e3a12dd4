package provider

import (
	"fmt"
	"strings"
)

// nbaLogoSlugs maps canonical NBA abbreviations to the slug used by the
// public logo CDN. Most slugs are just the lowercase abbreviation; the
// exceptions are teams whose CDN slug predates a rename or relocation.
var nbaLogoSlugs = map[string]string{
	"ATL": "atl", "BOS": "bos", "BKN": "bkn", "CHA": "cha", "CHI": "chi",
	"CLE": "cle", "DAL": "dal", "DEN": "den", "DET": "det", "GSW": "gs",
	"HOU": "hou", "IND": "ind", "LAC": "lac", "LAL": "lal", "MEM": "mem",
	"MIA": "mia", "MIL": "mil", "MIN": "min", "NOP": "no", "NYK": "ny",
	"OKC": "okc", "ORL": "orl", "PHI": "phi", "PHX": "phx", "POR": "por",
	"SAC": "sac", "SAS": "sa", "TOR": "tor", "UTA": "utah", "WAS": "wsh",
}

// TeamLogoURL derives a logo URL from a team abbreviation when the provider
// did not supply one. Returns "" for abbreviations outside the lookup table.
func TeamLogoURL(abbreviation string) string {
	slug, ok := nbaLogoSlugs[strings.ToUpper(abbreviation)]
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://a.espncdn.com/i/teamlogos/nba/500/%s.png", slug)
}

// PlayerHeadshotURL derives a headshot URL from a numeric player id via the
// NBA media CDN template, for providers that omit image references.
func PlayerHeadshotURL(playerID int) string {
	return fmt.Sprintf("https://cdn.nba.com/headshots/nba/latest/1040x760/%d.png", playerID)
}
