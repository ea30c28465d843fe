// Package linguist fetches languages.yml from the GitHub Linguist
// repository.
package linguist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/linguist/pkg/cache"
	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/integrations"
	core "github.com/matzehuels/linguist/pkg/linguist"
	"github.com/matzehuels/linguist/pkg/observability"
)

const (
	// DefaultURL is the raw languages.yml on Linguist's main branch.
	DefaultURL = "https://raw.githubusercontent.com/github-linguist/linguist/main/lib/linguist/languages.yml"

	// DefaultAPIURL is the GitHub REST API root used for revision lookups.
	DefaultAPIURL = "https://api.github.com"

	repository  = "github-linguist/linguist"
	datasetPath = "lib/linguist/languages.yml"
)

// Client downloads and validates the upstream dataset.
type Client struct {
	*integrations.Client
	url    string
	apiURL string
}

// NewClient creates a client for the document at url (DefaultURL when
// empty). Downloads are cached in backend for ttl under "linguist:<url>".
func NewClient(backend cache.Cache, ttl time.Duration, url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		Client: integrations.NewClient(backend, "linguist:", ttl, nil),
		url:    url,
		apiURL: DefaultAPIURL,
	}
}

// URL returns the document location.
func (c *Client) URL() string { return c.url }

// SetAPIURL overrides the GitHub API root.
func (c *Client) SetAPIURL(u string) { c.apiURL = u }

// FetchRaw returns the document bytes. Documents that do not parse as a
// Linguist dataset are rejected with INVALID_DATASET and never cached.
func (c *Client) FetchRaw(ctx context.Context, refresh bool) ([]byte, error) {
	data, err := c.Cached(ctx, c.url, refresh, func() ([]byte, error) {
		data, err := c.GetBytes(ctx, c.url)
		if err != nil {
			return nil, err
		}
		if _, err := core.Parse(data); err != nil {
			return nil, err
		}
		return data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.url, err)
	}
	return data, nil
}

// FetchIndex downloads the document and builds an index from it.
func (c *Client) FetchIndex(ctx context.Context, refresh bool) (*core.Index, error) {
	start := time.Now()
	idx, err := c.fetchIndex(ctx, refresh)
	n := 0
	if idx != nil {
		n = idx.Len()
	}
	observability.Dataset().OnDatasetLoad(ctx, c.url, n, time.Since(start), err)
	return idx, err
}

func (c *Client) fetchIndex(ctx context.Context, refresh bool) (*core.Index, error) {
	data, err := c.FetchRaw(ctx, refresh)
	if err != nil {
		return nil, err
	}
	idx, err := core.Load(data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidDataset, err, "build index from %s", c.url)
	}
	return idx, nil
}

// Revision identifies the upstream commit that last touched languages.yml.
type Revision struct {
	SHA     string    `json:"sha"`
	Date    time.Time `json:"date"`
	Message string    `json:"message"`
	URL     string    `json:"url"`
}

type commitResponse struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message   string `json:"message"`
		Committer struct {
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// LatestRevision asks the GitHub API for the most recent commit touching
// languages.yml on the main branch.
func (c *Client) LatestRevision(ctx context.Context, refresh bool) (*Revision, error) {
	var rev Revision
	err := c.CachedJSON(ctx, "revision:"+datasetPath, refresh, &rev, func() error {
		var commits []commitResponse
		url := fmt.Sprintf("%s/repos/%s/commits?path=%s&per_page=1", c.apiURL, repository, datasetPath)
		if err := c.Get(ctx, url, &commits); err != nil {
			return err
		}
		if len(commits) == 0 {
			return fmt.Errorf("%w: no commits for %s", integrations.ErrNotFound, datasetPath)
		}
		cm := commits[0]
		subject, _, _ := strings.Cut(cm.Commit.Message, "\n")
		rev = Revision{
			SHA:     cm.SHA,
			Date:    cm.Commit.Committer.Date,
			Message: subject,
			URL:     cm.HTMLURL,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rev, nil
}
