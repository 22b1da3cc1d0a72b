package resolve

import (
	"net/url"
	"strings"
)

// NormalizeCompanyURL canonicalizes a raw company URL: https:// is prefixed
// when no scheme is present and any trailing slash is stripped. Empty or
// unparseable input is the one fatal validation failure in this package; it
// is rejected before any fetch is attempted.
func NormalizeCompanyURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &Error{Message: "company URL is empty"}
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	raw = strings.TrimRight(raw, "/")

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", &Error{Message: "malformed company URL: " + raw, Cause: err}
	}
	return raw, nil
}

// BaseDomain derives the registrable company domain from a normalized URL:
// lowercased host, leading "www." stripped, and for hosts with three or more
// labels only the last two kept, so careers.acme.com and acme.com identify
// the same company.
func BaseDomain(normalizedURL string) string {
	u, err := url.Parse(normalizedURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	labels := strings.Split(host, ".")
	if len(labels) >= 3 {
		host = strings.Join(labels[len(labels)-2:], ".")
	}
	return host
}

// CompanyNameFromDomain derives a display name from a base domain:
// "acme.com" becomes "Acme".
func CompanyNameFromDomain(baseDomain string) string {
	label, _, _ := strings.Cut(baseDomain, ".")
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}
