package release

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/outofforest/archive"
	"github.com/outofforest/logger"
)

var (
	// ErrSourceUnavailable is returned if archive is neither cached locally nor downloadable.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrArchiveCorrupt is returned if archive can't be opened or extracted.
	ErrArchiveCorrupt = errors.New("archive corrupt")
)

// Variant selects the build flavour of the release.
type Variant string

// Variants.
const (
	Release Variant = "RELEASE"
	Debug   Variant = "DEBUG"
)

// VariantFor returns Debug if debug is true and Release otherwise.
func VariantFor(debug bool) Variant {
	if debug {
		return Debug
	}
	return Release
}

// Source identifies release archive.
type Source struct {
	// Repo is the owner of the repository, e.g. acidanthera.
	Repo string
	// Project is the repository name.
	Project string
	// Asset is the prefix of the archive file name, usually equal to Project.
	Asset string
	Version string
	// Hash is the optional checksum of the archive in form of <algorithm>:<hex>.
	Hash string
}

// FileName returns the name of the release archive.
func (s Source) FileName(variant Variant) string {
	return fmt.Sprintf("%s-%s-%s.zip", s.Asset, s.Version, variant)
}

// URL returns the download URL of the release archive.
func (s Source) URL(baseURL string, variant Variant) string {
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", strings.TrimSuffix(baseURL, "/"), s.Repo, s.Project,
		s.Version, s.FileName(variant))
}

// Config is the configuration of the installer.
type Config struct {
	CacheDir  string        `yaml:"cacheDir"`
	BaseURL   string        `yaml:"baseURL"`
	Timeout   time.Duration `yaml:"timeout"`
	RetryMax  int           `yaml:"retryMax"`
	RetryWait time.Duration `yaml:"retryWait"`
}

// DefaultConfig returns default installer configuration.
func DefaultConfig() Config {
	return Config{
		CacheDir:  "files",
		BaseURL:   "https://github.com",
		Timeout:   5 * time.Minute,
		RetryMax:  3,
		RetryWait: time.Second,
	}
}

// Installer downloads and unpacks release archives.
type Installer struct {
	config Config
	client *retryablehttp.Client
}

// New creates new installer.
func New(ctx context.Context, config Config) *Installer {
	client := retryablehttp.NewClient()
	client.HTTPClient.Timeout = config.Timeout
	client.RetryMax = config.RetryMax
	client.RetryWaitMin = config.RetryWait
	client.RetryWaitMax = 10 * config.RetryWait
	client.Logger = newLeveledLogger(logger.Get(ctx))

	return &Installer{
		config: config,
		client: client,
	}
}

// Install downloads the release archive, extracts it into dir and removes unwanted artifacts from there.
func (i *Installer) Install(ctx context.Context, source Source, dir string, variant Variant) error {
	log := logger.Get(ctx).With(zap.String("project", source.Project), zap.String("version", source.Version))
	log.Info("Installing release", zap.String("variant", string(variant)))

	origin, content, err := i.fetch(ctx, source, variant)
	if err != nil {
		return err
	}

	log.Info("Extracting archive", zap.String("origin", origin), zap.String("dir", dir))
	if err := extract(origin, content, dir); err != nil {
		return err
	}

	return cleanup(ctx, dir)
}

func (i *Installer) fetch(ctx context.Context, source Source, variant Variant) (string, []byte, error) {
	fileName := source.FileName(variant)

	if i.config.CacheDir != "" {
		cachePath := filepath.Join(i.config.CacheDir, fileName)
		content, err := readFile(cachePath, source.Hash)
		switch {
		case err == nil:
			logger.Get(ctx).Info("Using cached archive", zap.String("path", cachePath))
			return cachePath, content, nil
		case !errors.Is(err, os.ErrNotExist):
			return "", nil, err
		}
	}

	url := source.URL(i.config.BaseURL, variant)
	content, err := i.download(ctx, url, source.Hash)
	if err != nil {
		return "", nil, err
	}
	return url, content, nil
}

func (i *Installer) download(ctx context.Context, url, checksum string) ([]byte, error) {
	logger.Get(ctx).Info("Downloading file", zap.String("url", url))

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	resp, err := i.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "downloading %q failed: %s", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrSourceUnavailable, "unexpected status code %d, url: %q", resp.StatusCode, url)
	}

	content, err := readStream(resp.Body, checksum)
	if err != nil {
		return nil, errors.Wrapf(err, "downloading file %q failed", url)
	}
	return content, nil
}

func readFile(path, checksum string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	content, err := readStream(f, checksum)
	if err != nil {
		return nil, errors.Wrapf(err, "reading file %q failed", path)
	}
	return content, nil
}

func readStream(r io.Reader, checksum string) ([]byte, error) {
	if checksum == "" {
		content, err := io.ReadAll(r)
		return content, errors.WithStack(err)
	}

	reader, err := archive.NewHashingReader(r, checksum)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, reader); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := reader.ValidateChecksum(); err != nil {
		return nil, errors.Wrapf(ErrArchiveCorrupt, "%s", err)
	}
	return buf.Bytes(), nil
}
