package catalog

import "fmt"

// Descriptor is the YAML shape of one service entry. Field order matters to
// downstream consumers, which yaml.Marshal preserves for structs.
type Descriptor struct {
	ServiceName  string        `yaml:"service_name"`
	Description  string        `yaml:"description"`
	Organization Organization  `yaml:"organization"`
	APIType      string        `yaml:"api_type"`
	APIAuth      string        `yaml:"api_authentication"`
	Environments []Environment `yaml:"environments"`
	Contact      Contact       `yaml:"contact"`
	TermsOfUse   TermsOfUse    `yaml:"terms_of_use"`
}

type Organization struct {
	Name string `yaml:"name"`
	OOID int    `yaml:"ooid"`
}

type Environment struct {
	Name             string `yaml:"name"`
	APIURL           string `yaml:"api_url"`
	SpecificationURL string `yaml:"specification_url"`
	DocumentationURL string `yaml:"documentation_url"`
}

type Contact struct {
	Email string `yaml:"email"`
	URL   string `yaml:"url"`
}

type TermsOfUse struct {
	GovernmentOnly  bool `yaml:"government_only"`
	PayPerUse       bool `yaml:"pay_per_use"`
	UptimeGuarantee int  `yaml:"uptime_guarantee"`
}

// Publisher holds the constants stamped into every descriptor.
type Publisher struct {
	OrganizationName string
	OrganizationOOID int
	APIBaseURL       string
	ContactEmail     string
	ContactURL       string
}

// NewDescriptor renders a dataset into a descriptor under the publisher's
// API base URL.
func NewDescriptor(p Publisher, d Dataset) Descriptor {
	return Descriptor{
		ServiceName: d.DisplayTitle(),
		Description: d.Description,
		Organization: Organization{
			Name: p.OrganizationName,
			OOID: p.OrganizationOOID,
		},
		APIType: "rest_json",
		APIAuth: "none",
		Environments: []Environment{{
			Name:             "production",
			APIURL:           fmt.Sprintf("%s/v1/%s", p.APIBaseURL, d.Path),
			SpecificationURL: fmt.Sprintf("%s/v1/%s/openapi.json", p.APIBaseURL, d.Path),
			DocumentationURL: fmt.Sprintf("%s/v1/docs/datasets/%s.html", p.APIBaseURL, d.Path),
		}},
		Contact: Contact{
			Email: p.ContactEmail,
			URL:   p.ContactURL,
		},
		TermsOfUse: TermsOfUse{
			GovernmentOnly:  false,
			PayPerUse:       false,
			UptimeGuarantee: 0,
		},
	}
}
