package fixture

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/afs/storage"
	mfixture "github.com/viant/shellsim/model/fixture"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var embedFS embed.FS

// DefaultURL locates the fixture shipped with the module.
const DefaultURL = "embed:///default.yaml"

// Service loads fixture sets from any afs supported location (file, mem, embed, cloud storage).
type Service struct {
	fs      afs.Service
	options []storage.Option
}

// Load downloads and decodes a fixture set.
func (s *Service) Load(ctx context.Context, URL string) (*mfixture.Set, error) {
	if URL == "" {
		URL = DefaultURL
	}
	options := s.options
	if strings.HasPrefix(URL, "embed:") {
		options = append(append([]storage.Option{}, options...), &embedFS)
	}
	data, err := s.fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures from %s: %w", URL, err)
	}
	ret, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fixtures from %s: %w", URL, err)
	}
	return ret, nil
}

// Decode decodes a YAML fixture set.
func Decode(data []byte) (*mfixture.Set, error) {
	ret := &mfixture.Set{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// Default returns a freshly decoded copy of the embedded fixture set.
func Default() *mfixture.Set {
	data, err := embedFS.ReadFile("default.yaml")
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures missing: %v", err))
	}
	ret, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures invalid: %v", err))
	}
	return ret
}

// New creates a fixture loader; options are passed to every download.
func New(options ...storage.Option) *Service {
	return &Service{fs: afs.New(), options: options}
}
