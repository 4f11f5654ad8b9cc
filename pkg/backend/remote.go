package backend

import (
	"context"
	"strings"

	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/logging"
	"github.com/arthur-debert/gig/pkg/types"
	"github.com/arthur-debert/gig/pkg/validation"
)

// Default endpoints of the gitignore.io API
const (
	DefaultServerURL     = "https://www.toptal.com"
	DefaultGeneratorPath = "/developers/gitignore/api"
	DefaultListerPath    = "/developers/gitignore/api/list?format=lines"
)

// Remote serves templates from an HTTP template service
type Remote struct {
	Client        httpclient.Getter
	GeneratorPath string
	ListerPath    string
}

// NewRemote creates a remote backend. Empty paths fall back to the defaults.
func NewRemote(client httpclient.Getter, generatorPath, listerPath string) *Remote {
	if generatorPath == "" {
		generatorPath = DefaultGeneratorPath
	}
	if listerPath == "" {
		listerPath = DefaultListerPath
	}
	return &Remote{
		Client:        client,
		GeneratorPath: generatorPath,
		ListerPath:    listerPath,
	}
}

// List fetches the listing endpoint. Client failures are returned as is.
func (r *Remote) List(ctx context.Context) (types.QualifiedString, error) {
	body, err := r.Client.Get(ctx, r.ListerPath)
	if err != nil {
		return types.QualifiedString{}, err
	}
	return types.NewQualifiedString(body, types.OriginRemote), nil
}

// Generate fetches all named templates in one request. Names are joined
// with commas and not encoded; the command line validates them.
func (r *Remote) Generate(ctx context.Context, names []string) (types.QualifiedString, error) {
	if len(names) == 0 {
		return types.NewQualifiedString("", types.OriginRemote), nil
	}

	path := strings.TrimRight(r.GeneratorPath, "/") + "/" + strings.Join(names, ",")
	logger := logging.GetLogger("backend.remote")
	logger.Debug().Str("path", path).Msg("Generating templates")

	body, err := r.Client.Get(ctx, path)
	if err != nil {
		return types.QualifiedString{}, err
	}
	return types.NewQualifiedString(body, types.OriginRemote), nil
}

// GenerateWithCheck validates names against the remote listing first
func (r *Remote) GenerateWithCheck(ctx context.Context, names []string) (types.QualifiedString, error) {
	listing, err := r.List(ctx)
	if err != nil {
		return types.QualifiedString{}, err
	}
	if failure := validation.Check(names, listing.Value); failure != nil {
		return types.QualifiedString{}, failure
	}

	return r.Generate(ctx, names)
}

var _ types.Backend = (*Remote)(nil)
