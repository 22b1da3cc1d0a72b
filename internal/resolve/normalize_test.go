package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCompanyURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare domain gets https", "acme.com", "https://acme.com"},
		{"trailing slash stripped", "https://acme.com/", "https://acme.com"},
		{"existing scheme kept", "http://acme.com", "http://acme.com"},
		{"mixed case host kept verbatim", "http://Careers.Acme.com/", "http://Careers.Acme.com"},
		{"path preserved", "acme.com/about", "https://acme.com/about"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCompanyURL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeCompanyURL_EmptyIsFatal(t *testing.T) {
	_, err := NormalizeCompanyURL("")
	require.Error(t, err)
	var resolveErr *Error
	assert.ErrorAs(t, err, &resolveErr)

	_, err = NormalizeCompanyURL("   ")
	assert.Error(t, err)
}

func TestBaseDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://acme.com", "acme.com"},
		{"https://www.acme.com", "acme.com"},
		{"http://Careers.Acme.com", "acme.com"},
		{"https://jobs.big.acme.com", "acme.com"},
		{"https://acme.com:8080", "acme.com"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseDomain(tt.input), tt.input)
	}
}

func TestCompanyNameFromDomain(t *testing.T) {
	assert.Equal(t, "Acme", CompanyNameFromDomain("acme.com"))
	assert.Equal(t, "", CompanyNameFromDomain(""))
}
