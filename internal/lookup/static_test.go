package lookup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"colorsearch/internal/domain"
)

const fixtureTOML = `
[[records]]
first_name = "Jon"
favorite_color = "#0000FF"

[[records]]
first_name = "Jonas"
favorite_color = "green"

[[records]]
first_name = "Ann"
favorite_color = "#FF00FF"
`

func TestLoadFixturesAndSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.toml")
	require.NoError(t, os.WriteFile(path, []byte(fixtureTOML), 0644))

	svc, err := LoadFixtures(path)
	require.NoError(t, err)

	resp, err := svc.Search(context.Background(), "jon")
	require.NoError(t, err)
	want := []domain.MatchRecord{
		{FirstName: "Jon", FavoriteColor: "#0000FF"},
		{FirstName: "Jonas", FavoriteColor: "green"},
	}
	if diff := cmp.Diff(want, resp.Data); diff != "" {
		t.Errorf("Search(jon) mismatch (-want +got):\n%s", diff)
	}

	resp, err = svc.Search(context.Background(), "Zzz")
	require.NoError(t, err)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}

func TestLoadFixturesErrors(t *testing.T) {
	_, err := LoadFixtures(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "failed to read fixtures")

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[[records]\n"), 0644))
	_, err = LoadFixtures(bad)
	assert.ErrorContains(t, err, "failed to parse fixtures")
}

func TestStaticSearchHonoursCanceledContext(t *testing.T) {
	svc := NewStaticService([]domain.MatchRecord{{FirstName: "Jon", FavoriteColor: "red"}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, "Jon")
	var le *LookupError
	require.ErrorAs(t, err, &le)
	assert.ErrorIs(t, err, context.Canceled)
}
