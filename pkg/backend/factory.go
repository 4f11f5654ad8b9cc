package backend

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/arthur-debert/gig/pkg/config"
	"github.com/arthur-debert/gig/pkg/filesystem"
	"github.com/arthur-debert/gig/pkg/httpclient"
	"github.com/arthur-debert/gig/pkg/types"
)

// FromConfig builds one backend per configured source, in source order
func FromConfig(cfg *config.Config) ([]types.Backend, error) {
	return FromConfigWithFS(cfg, filesystem.NewOS())
}

// FromConfigWithFS builds the backends with local templates read from fsys
func FromConfigWithFS(cfg *config.Config, fsys afero.Fs) ([]types.Backend, error) {
	backends := make([]types.Backend, 0, len(cfg.Sources))
	for _, source := range cfg.SourceList() {
		switch source {
		case types.SourceLocal:
			backends = append(backends, NewLocalWithFS(fsys, cfg.LocalDir(), cfg.Local.Extension))
		case types.SourceRemote:
			client := httpclient.New(cfg.Remote.ServerURL, cfg.Timeout())
			backends = append(backends, NewRemote(client, cfg.Remote.GeneratorPath, cfg.Remote.ListerPath))
		default:
			return nil, fmt.Errorf("unknown template source: %q", source)
		}
	}
	return backends, nil
}
