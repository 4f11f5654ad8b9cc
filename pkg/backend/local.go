package backend

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/filesystem"
	"github.com/arthur-debert/gig/pkg/logging"
	"github.com/arthur-debert/gig/pkg/paths"
	"github.com/arthur-debert/gig/pkg/types"
	"github.com/arthur-debert/gig/pkg/validation"
)

// Message prefixes for local filesystem failures
const (
	MsgLocalListFailed     = "An error occurred while listing templates from local file system: "
	MsgLocalGenerateFailed = "An error occurred while generating template from local file system: "
)

// DefaultExtension is the file extension of local templates
const DefaultExtension = "txt"

// Local serves templates stored as files in a directory
type Local struct {
	// FS is the filesystem templates are read from
	FS afero.Fs
	// DefaultDir is used when the environment variable is unset or empty
	DefaultDir string
	// EnvVar names the environment variable overriding DefaultDir
	EnvVar string
	// Extension is the template file extension, without the dot
	Extension string
}

// NewLocal creates a local backend on the OS filesystem that honors
// GIG_TEMPLATES_DIR
func NewLocal(defaultDir, extension string) *Local {
	return NewLocalWithFS(filesystem.NewOS(), defaultDir, extension)
}

// NewLocalWithFS creates a local backend on the given filesystem
func NewLocalWithFS(fsys afero.Fs, defaultDir, extension string) *Local {
	if extension == "" {
		extension = DefaultExtension
	}
	return &Local{
		FS:         fsys,
		DefaultDir: defaultDir,
		EnvVar:     paths.EnvTemplatesDir,
		Extension:  extension,
	}
}

// resolveRoot returns the directory to read from for this call. It is
// evaluated on every operation so environment changes take effect between
// calls.
func (l *Local) resolveRoot() string {
	if l.EnvVar != "" {
		if dir := os.Getenv(l.EnvVar); dir != "" {
			return paths.ExpandHome(dir)
		}
	}
	return paths.ExpandHome(l.DefaultDir)
}

func (l *Local) templateDir() *filesystem.TemplateDir {
	return filesystem.NewTemplateDir(l.FS, l.resolveRoot(), l.Extension)
}

// List returns the names of the templates in the directory, sorted. A
// missing directory is an empty listing.
func (l *Local) List(ctx context.Context) (types.QualifiedString, error) {
	logger := logging.GetLogger("backend.local")
	dir := l.templateDir()

	names, err := dir.ListFiles()
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("root", dir.Root()).Msg("Template directory not found, listing is empty")
			return types.NewQualifiedString("", types.OriginLocal), nil
		}
		logger.Debug().Err(err).Str("root", dir.Root()).Msg("Listing failed")
		return types.QualifiedString{}, errors.Wrap(err, errors.ExitGeneric, MsgLocalListFailed)
	}

	logger.Debug().Str("root", dir.Root()).Int("count", len(names)).Msg("Listed templates")
	return types.NewQualifiedString(strings.Join(names, "\n"), types.OriginLocal), nil
}

// Generate concatenates the named templates in request order. Templates
// without a file are reported together as unsupported.
func (l *Local) Generate(ctx context.Context, names []string) (types.QualifiedString, error) {
	if len(names) == 0 {
		return types.NewQualifiedString("", types.OriginLocal), nil
	}
	return l.generate(l.templateDir(), names, false)
}

// GenerateWithCheck validates names against List before reading any file
func (l *Local) GenerateWithCheck(ctx context.Context, names []string) (types.QualifiedString, error) {
	listing, err := l.List(ctx)
	if err != nil {
		return types.QualifiedString{}, err
	}
	if failure := validation.Check(names, listing.Value); failure != nil {
		return types.QualifiedString{}, failure
	}

	return l.generate(l.templateDir(), names, true)
}

// generate reads one file per name. When checked is set the names were
// validated beforehand, so a missing file is reported as the raw I/O error.
func (l *Local) generate(dir *filesystem.TemplateDir, names []string, checked bool) (types.QualifiedString, error) {
	logger := logging.GetLogger("backend.local")

	contents := make([]string, 0, len(names))
	var missing []string
	for _, name := range names {
		content, err := dir.FetchContent(name)
		if err != nil {
			if !checked && stderrors.Is(err, fs.ErrNotExist) {
				missing = append(missing, name)
				continue
			}
			logger.Debug().Err(err).Str("template", name).Msg("Reading template failed")
			return types.QualifiedString{}, errors.Wrap(err, errors.ExitGeneric, MsgLocalGenerateFailed)
		}
		contents = append(contents, content)
	}

	if len(missing) > 0 {
		logger.Debug().Strs("missing", missing).Str("root", dir.Root()).Msg("Templates not found")
		return types.QualifiedString{}, errors.New(errors.ExitGeneric,
			MsgLocalGenerateFailed+validation.UnsupportedMessage(missing))
	}

	logger.Debug().Strs("templates", names).Str("root", dir.Root()).Msg("Generated templates")
	return types.NewQualifiedString(strings.Join(contents, "\n"), types.OriginLocal), nil
}

var _ types.Backend = (*Local)(nil)
