package pipeline

import (
	"net/url"
	"testing"

	"github.com/ppiankov/identigen/internal/model"
	"github.com/stretchr/testify/require"
)

func TestBuildURL_Defaults(t *testing.T) {
	cfg := model.DefaultConfig()

	got, err := BuildURL(cfg.HTTP.BaseURL, cfg.Advanced)
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "www.fakenamegenerator.com", u.Host)
	require.Equal(t, "/advanced.php", u.Path)

	q := u.Query()
	require.Equal(t, "country", q.Get("t"))
	require.Equal(t, "us", q.Get("n[]"))
	require.Equal(t, "us", q.Get("c[]"))
	require.Equal(t, "0", q.Get("gen"))
	require.Equal(t, "18", q.Get("age-min"))
	require.Equal(t, "99", q.Get("age-max"))
	require.Contains(t, u.RawQuery, "n%5B%5D=us", "brackets must be percent-encoded")
}

func TestBuildURL_CustomOptions(t *testing.T) {
	got, err := BuildURL("http://localhost:8080/gen", model.AdvancedOptions{
		NameSet: "gr",
		Country: "uk",
		Gen:     "100",
		AgeMin:  "21",
		AgeMax:  "30",
	})
	require.NoError(t, err)

	u, err := url.Parse(got)
	require.NoError(t, err)
	q := u.Query()
	require.Equal(t, "gr", q.Get("n[]"))
	require.Equal(t, "uk", q.Get("c[]"))
	require.Equal(t, "100", q.Get("gen"))
	require.Equal(t, "21", q.Get("age-min"))
	require.Equal(t, "30", q.Get("age-max"))
}

func TestBuildURL_OverridesExistingParams(t *testing.T) {
	got, err := BuildURL("https://example.com/a?gen=5&keep=1", model.AdvancedOptions{Gen: "0"})
	require.NoError(t, err)

	q, err := url.ParseQuery(got[len("https://example.com/a?"):])
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, q["gen"])
	require.Equal(t, "1", q.Get("keep"))
}

func TestBuildURL_Invalid(t *testing.T) {
	tests := []string{
		"ftp://example.com/",
		"example.com/path",
		"https://",
		"::bad",
	}

	for _, base := range tests {
		t.Run(base, func(t *testing.T) {
			_, err := BuildURL(base, model.AdvancedOptions{})
			require.Error(t, err)
		})
	}
}
