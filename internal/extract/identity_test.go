package extract

import (
	"math/rand/v2"
	"os"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ppiankov/identigen/internal/model"
	"github.com/stretchr/testify/require"
)

var ssnPattern = regexp.MustCompile(`^123-45-\d{4}$`)

func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(data)
}

func TestIdentityExtractor_Profile(t *testing.T) {
	extractor := NewIdentityExtractor(rand.New(rand.NewPCG(1, 2)))

	record, err := extractor.Extract(loadFixture(t, "profile.html"))
	require.NoError(t, err)

	require.Equal(t, "Jane M. Doe", record.Name)
	require.Equal(t, "123 Main St Springfield, IL 62701", record.Address)

	values := make(map[string]string)
	var labels []string
	for _, f := range record.Fields {
		values[f.Label] = f.Value
		labels = append(labels, f.Label)
	}

	require.Equal(t, "JaneDoe@jourrapide.com", values["Email Address"])
	require.Equal(t, "Smith", values["Mother's maiden name"])
	require.Equal(t, "39.781721, -89.650148", values["Geo coordinates"])
	require.Equal(t, `5' 6" (168 centimeters)`, values["Height"])
	require.Equal(t, "", values["QR Code"])
	require.Equal(t, "7", values["Lucky number"])

	require.Regexp(t, ssnPattern, values["SSN"])
	require.NotEqual(t, "123-45-6789", values["SSN"])

	// Document order is preserved
	require.Equal(t, "Mother's maiden name", labels[0])
	require.Equal(t, "SSN", labels[1])
	require.Equal(t, "Lucky number", labels[len(labels)-1])
}

func TestIdentityExtractor_Minimal(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	htmlContent := `
	<html><body>
		<div class="address">
			<h3> Jane Doe </h3>
			<div class="adr">
				123 Main St
			</div>
		</div>
		<dl class="dl-horizontal"><dt>Email Address</dt><dd>jane@example.com</dd></dl>
	</body></html>
	`

	record, err := extractor.Extract(htmlContent)
	require.NoError(t, err)

	want := &model.Record{
		Name:    "Jane Doe",
		Address: "123 Main St",
		Fields: []model.LabeledField{
			{Label: "Email Address", Value: "jane@example.com"},
		},
	}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestIdentityExtractor_MultipleTextNodesJoined(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	htmlContent := `
	<div class="address"><h3>A</h3><div class="adr">B</div></div>
	<dl class="dl-horizontal">
		<dt> Vehicle </dt>
		<dd><span>2004</span><b>Toyota</b>
			Camry<script>var x = 1;</script></dd>
	</dl>
	`

	record, err := extractor.Extract(htmlContent)
	require.NoError(t, err)
	require.Len(t, record.Fields, 1)
	require.Equal(t, "Vehicle", record.Fields[0].Label)
	require.Equal(t, "2004 Toyota Camry", record.Fields[0].Value)
}

func TestIdentityExtractor_SkipsIncompletePairs(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	htmlContent := `
	<div class="address"><h3>A</h3><div class="adr">B</div></div>
	<dl class="dl-horizontal"><dt>Phone</dt></dl>
	<dl class="dl-horizontal"><dd>orphan</dd></dl>
	<dl class="dl-horizontal"><dt>Company</dt><dd>Acme</dd></dl>
	`

	record, err := extractor.Extract(htmlContent)
	require.NoError(t, err)
	require.Equal(t, []model.LabeledField{{Label: "Company", Value: "Acme"}}, record.Fields)
}

func TestIdentityExtractor_NoFields(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	record, err := extractor.Extract(`<div class="address"><h3>A</h3><div class="adr">B</div></div>`)
	require.NoError(t, err)
	require.Empty(t, record.Fields)
}

func TestIdentityExtractor_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty document", ``},
		{"no address container", `<div class="adr">123 Main St</div><h3>Jane</h3>`},
		{"no heading", `<div class="address"><div class="adr">123 Main St</div></div>`},
		{"no adr", `<div class="address"><h3>Jane</h3></div>`},
		{"heading outside container", `<h3>Jane</h3><div class="address"><div class="adr">x</div></div>`},
	}

	extractor := NewIdentityExtractor(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Extract(tt.html)
			require.ErrorIs(t, err, ErrUnexpectedDocument)
		})
	}
}

func TestIdentityExtractor_MalformedSSN(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	htmlContent := `
	<div class="address"><h3>A</h3><div class="adr">B</div></div>
	<dl class="dl-horizontal"><dt>ssn</dt><dd>123-456789</dd></dl>
	`

	_, err := extractor.Extract(htmlContent)
	require.ErrorIs(t, err, ErrMalformedSSN)
	require.NotContains(t, err.Error(), "123-456789")
}

func TestIdentityExtractor_SSNLabelCaseInsensitive(t *testing.T) {
	extractor := NewIdentityExtractor(nil)

	htmlContent := `
	<div class="address"><h3>A</h3><div class="adr">B</div></div>
	<dl class="dl-horizontal"><dt>Ssn</dt><dd>123-45-6789</dd></dl>
	`

	record, err := extractor.Extract(htmlContent)
	require.NoError(t, err)
	require.Regexp(t, ssnPattern, record.Fields[0].Value)
}
