package csvio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

func TestParseLeads(t *testing.T) {
	input := "name,role,company,industry,location,linkedin_bio\n" +
		"Ana,Head of Growth,Acme,SaaS,NYC,Looking for a CRM\n" +
		"Bo,Analyst,Beta,Retail,LA,\"Curious, about tools\"\n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, entity.NewLead("Ana", "Head of Growth", "Acme", "SaaS", "NYC", "Looking for a CRM"), leads[0])
	assert.Equal(t, "Curious, about tools", leads[1].LinkedInBio)
}

func TestParseLeadsMissingAndExtraColumns(t *testing.T) {
	input := "Name, ROLE ,score,notes\n" +
		"Ana,CEO,99,vip\n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, entity.Lead{Name: "Ana", Role: "CEO"}, leads[0])
}

func TestParseLeadsRepeatedColumnUsesLast(t *testing.T) {
	input := "name,role,Name\nAna,CEO,Bo\nCy,CTO\n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Bo", leads[0].Name)
	assert.Equal(t, "CEO", leads[0].Role)
	assert.Equal(t, "", leads[1].Name)
}

func TestParseLeadsTrimsValues(t *testing.T) {
	input := "name,industry\n  Ana  ,  SaaS \n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Ana", leads[0].Name)
	assert.Equal(t, "SaaS", leads[0].Industry)
}

func TestParseLeadsStripsBOM(t *testing.T) {
	input := utf8BOM + "name,role\nAna,CEO\n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, "Ana", leads[0].Name)
}

func TestParseLeadsShortRows(t *testing.T) {
	input := "name,role,company\nAna\nBo,Analyst,Beta,extra\n"

	leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, entity.Lead{Name: "Ana"}, leads[0])
	assert.Equal(t, "Beta", leads[1].Company)
}

func TestParseLeadsEmpty(t *testing.T) {
	for name, input := range map[string]string{"no bytes": "", "header only": "name,role\n"} {
		t.Run(name, func(t *testing.T) {
			leads, err := LeadReader{}.ParseLeads(strings.NewReader(input))
			require.NoError(t, err)
			assert.NotNil(t, leads)
			assert.Empty(t, leads)
		})
	}
}

func TestParseLeadsMalformed(t *testing.T) {
	input := "name,role\n\"Ana,CEO\n"

	_, err := LeadReader{}.ParseLeads(strings.NewReader(input))

	assert.Error(t, err)
}
