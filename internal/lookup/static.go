package lookup

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"colorsearch/internal/domain"
)

// StaticService answers searches from an in-memory record set. Matching is a
// case-insensitive prefix match on the first name; order is preserved.
type StaticService struct {
	records []domain.MatchRecord
}

type fixtureFile struct {
	Records []domain.MatchRecord `toml:"records"`
}

// NewStaticService creates a service over records
func NewStaticService(records []domain.MatchRecord) *StaticService {
	copied := make([]domain.MatchRecord, len(records))
	copy(copied, records)
	return &StaticService{records: copied}
}

// LoadFixtures reads a TOML file of [[records]] tables
func LoadFixtures(path string) (*StaticService, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}
	var f fixtureFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	return NewStaticService(f.Records), nil
}

// Search returns the records whose first name starts with query
func (s *StaticService) Search(ctx context.Context, query string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, &LookupError{Message: transportMessage(err), Err: err}
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.MatchRecord, 0)
	for _, r := range s.records {
		if strings.HasPrefix(strings.ToLower(r.FirstName), needle) {
			out = append(out, r)
		}
	}
	return Response{Data: out}, nil
}
