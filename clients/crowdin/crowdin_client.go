package crowdin

//go:generate mockgen -source=crowdin_client.go -destination=crowdinMock.go -package=crowdin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/pkg/errors"

	"github.com/libretro/crowdin-progress/models"
)

const (
	DefaultHost = "https://api.crowdin.com/api/v2"
	apiPath     = "/api/v2"

	// ProgressPageLimit is the single page size used for language progress.
	ProgressPageLimit = 100
)

type (
	ClientInterface interface {
		ListBranches(ctx context.Context, projectID string) ([]models.Branch, error)
		ListLanguagesProgress(ctx context.Context, projectID string, branchID models.ID, limit int) ([]models.LanguageProgress, error)
		GetLanguage(ctx context.Context, languageID string) (*models.Language, error)
	}

	Client struct {
		host       string       // base url, including the api version path
		token      string       // personal access token sent as a bearer token
		httpClient *http.Client // store a reference to the http client so we can reuse it
	}

	ClientBuilder struct {
		host       string
		token      string
		httpClient *http.Client
	}

	// StatusError is returned for any response that is not a 200.
	StatusError struct {
		Code int
		URL  string
	}

	resource[T any] struct {
		Data T `json:"data"`
	}

	resourceList[T any] struct {
		Data []resource[T] `json:"data"`
	}
)

var _ ClientInterface = (*Client)(nil)

func NewCrowdinClientBuilder() *ClientBuilder {
	return &ClientBuilder{}
}

// WithHost set the host
func (b *ClientBuilder) WithHost(host string) *ClientBuilder {
	b.host = host
	return b
}

// WithToken set the API token
func (b *ClientBuilder) WithToken(token string) *ClientBuilder {
	b.token = token
	return b
}

// WithHTTPClient set the HTTP client
func (b *ClientBuilder) WithHTTPClient(httpClient *http.Client) *ClientBuilder {
	b.httpClient = httpClient
	return b
}

// Build return client from builder
func (b *ClientBuilder) Build() *Client {
	if b.host == "" {
		b.host = DefaultHost
	}
	if b.token == "" {
		panic("Crowdin client requires a token to be set")
	}
	if b.httpClient == nil {
		b.httpClient = http.DefaultClient
	}

	return &Client{
		host:       withAPIPath(b.host),
		token:      b.token,
		httpClient: b.httpClient,
	}
}

// withAPIPath appends the API version path to a bare host such as the
// "https://api.crowdin.com" base_url found in crowdin.yaml files.
func withAPIPath(host string) string {
	u, err := url.Parse(host)
	if err != nil || (u.Path != "" && u.Path != "/") {
		return host
	}
	u.Path = apiPath
	return u.String()
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unknown response code %d from service[%s]", e.Code, e.URL)
}

func (client *Client) getHost() (*url.URL, error) {
	theURL, err := url.Parse(client.host)
	if err != nil {
		return nil, fmt.Errorf("unable to parse urlString[%s]", client.host)
	}
	return theURL, nil
}

func (client *Client) ListBranches(ctx context.Context, projectID string) ([]models.Branch, error) {
	var list resourceList[models.Branch]
	if err := client.get(ctx, &list, nil, "projects", projectID, "branches"); err != nil {
		return nil, errors.Wrap(err, "ListBranches")
	}

	branches := make([]models.Branch, 0, len(list.Data))
	for _, item := range list.Data {
		branches = append(branches, item.Data)
	}
	return branches, nil
}

func (client *Client) ListLanguagesProgress(ctx context.Context, projectID string, branchID models.ID, limit int) ([]models.LanguageProgress, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var list resourceList[models.LanguageProgress]
	if err := client.get(ctx, &list, query, "projects", projectID, "branches", branchID.String(), "languages", "progress"); err != nil {
		return nil, errors.Wrap(err, "ListLanguagesProgress")
	}

	progress := make([]models.LanguageProgress, 0, len(list.Data))
	for _, item := range list.Data {
		if err := item.Data.Validate(); err != nil {
			return nil, models.WithKindf(models.ErrNetwork, err, "ListLanguagesProgress: malformed response")
		}
		progress = append(progress, item.Data)
	}
	return progress, nil
}

func (client *Client) GetLanguage(ctx context.Context, languageID string) (*models.Language, error) {
	var res resource[models.Language]
	if err := client.get(ctx, &res, nil, "languages", languageID); err != nil {
		return nil, errors.Wrap(err, "GetLanguage")
	}
	return &res.Data, nil
}

// get issues an authenticated GET on the path built from segments and decodes
// the JSON body into out. Every failure is tagged models.ErrNetwork.
func (client *Client) get(ctx context.Context, out interface{}, query url.Values, segments ...string) error {
	host, err := client.getHost()
	if err != nil {
		return models.WithKind(models.ErrNetwork, err)
	}
	for _, segment := range segments {
		if segment == "" {
			return models.WithKind(models.ErrNetwork, fmt.Errorf("empty path segment in %v", segments))
		}
	}
	host.Path = path.Join(append([]string{"/", host.Path}, segments...)...)
	if query != nil {
		host.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, host.String(), nil)
	if err != nil {
		return models.WithKindf(models.ErrNetwork, err, "error formatting request")
	}
	req.Header.Add("Authorization", "Bearer "+client.token)
	req.Header.Add("Accept", "application/json")

	res, err := client.httpClient.Do(req)
	if err != nil {
		return models.WithKindf(models.ErrNetwork, err, "failure to reach Crowdin")
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return models.WithKindf(models.ErrNetwork, err, "error parsing JSON results")
		}
		return nil
	default:
		return models.WithKind(models.ErrNetwork, &StatusError{Code: res.StatusCode, URL: req.URL.String()})
	}
}
