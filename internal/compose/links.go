package compose

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// profileHosts keep their path in the label since the path is the identity.
var profileHosts = map[string]bool{
	"github.com":   true,
	"gitlab.com":   true,
	"linkedin.com": true,
	"twitter.com":  true,
	"x.com":        true,
}

// LinkHref makes a clickable target out of user input, adding https:// when the
// scheme is missing.
func LinkHref(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "://") || strings.HasPrefix(s, "mailto:") || strings.HasPrefix(s, "tel:") {
		return s
	}
	return "https://" + s
}

// LinkLabel shortens a URL for display: "github.com/ada" for profile hosts and the
// registrable domain ("ada.dev") for everything else. Unparsable input is returned as-is.
func LinkLabel(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	u, err := url.Parse(LinkHref(s))
	if err != nil || u.Hostname() == "" {
		return s
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	if profileHosts[host] {
		path := strings.Trim(u.EscapedPath(), "/")
		if path == "" {
			return host
		}
		return host + "/" + path
	}

	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return etld
	}
	return host
}
