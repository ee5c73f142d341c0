package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bekendmakingen", "bekendmakingen"},
		{"afvalContainers", "afval-containers"},
		{"BagVerblijfsobjecten", "bag-verblijfsobjecten"},
		{"aardgasVrijeZones", "aardgas-vrije-zones"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, KebabCase(tt.in))
		})
	}
}

func TestDataset_Public(t *testing.T) {
	tests := []struct {
		name    string
		dataset Dataset
		want    bool
	}{
		{"public and available", Dataset{Auth: []string{"OPENBAAR"}, Status: "beschikbaar"}, true},
		{"restricted", Dataset{Auth: []string{"BRP/R"}, Status: "beschikbaar"}, false},
		{"mixed auth", Dataset{Auth: []string{"OPENBAAR", "BRP/R"}, Status: "beschikbaar"}, false},
		{"not available", Dataset{Auth: []string{"OPENBAAR"}, Status: "niet_beschikbaar"}, false},
		{"no auth scopes", Dataset{Status: "beschikbaar"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dataset.Public())
		})
	}
}

func TestFilterPublic(t *testing.T) {
	datasets := []Dataset{
		{ID: "a", Auth: []string{"OPENBAAR"}, Status: "beschikbaar"},
		{ID: "b", Auth: []string{"BRP/R"}, Status: "beschikbaar"},
		{ID: "c", Auth: []string{"OPENBAAR"}, Status: "in_ontwikkeling"},
	}

	filtered := FilterPublic(datasets)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestDataset_DisplayTitle(t *testing.T) {
	assert.Equal(t, "Afval containers", Dataset{ID: "afvalContainers", Title: "Afval containers"}.DisplayTitle())
	assert.Equal(t, "afvalContainers", Dataset{ID: "afvalContainers"}.DisplayTitle())
}
