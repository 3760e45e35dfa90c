// Package progress fetches per-language translation progress from Crowdin
// and turns it into the generated progress header.
package progress

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/libretro/crowdin-progress/clients/crowdin"
	"github.com/libretro/crowdin-progress/infrastructure"
	"github.com/libretro/crowdin-progress/models"
)

// Fetcher walks branches, progress and languages of one project, in that
// order. Each call depends on the previous one so nothing runs concurrently.
type Fetcher struct {
	client    crowdin.ClientInterface
	projectID string
	logger    *zap.SugaredLogger
}

func NewFetcher(client crowdin.ClientInterface, projectID string, logger *zap.SugaredLogger) *Fetcher {
	return &Fetcher{
		client:    client,
		projectID: projectID,
		logger:    logger.With("projectId", projectID),
	}
}

func fetcherProvider(client crowdin.ClientInterface, config infrastructure.Config, logger *zap.SugaredLogger) (*Fetcher, error) {
	credentials, err := config.Credentials()
	if err != nil {
		return nil, err
	}
	return NewFetcher(client, credentials.ProjectID, logger), nil
}

// Fetch returns the progress of every language of the first branch, in the
// order Crowdin lists them.
func (f *Fetcher) Fetch(ctx context.Context) ([]models.ProgressEntry, error) {
	branches, err := f.client.ListBranches(ctx, f.projectID)
	if err != nil {
		return nil, err
	}
	if len(branches) == 0 {
		return nil, errors.Wrapf(models.ErrNoBranches, "project %s", f.projectID)
	}
	branch := branches[0]
	logger := f.logger.With("branchId", branch.ID.String())
	logger.Debugw("using first branch", "name", branch.Name, "branches", len(branches))

	progress, err := f.client.ListLanguagesProgress(ctx, f.projectID, branch.ID, crowdin.ProgressPageLimit)
	if err != nil {
		return nil, err
	}
	logger.Debugw("fetched languages progress", "languages", len(progress))

	entries := make([]models.ProgressEntry, 0, len(progress))
	for _, p := range progress {
		lang, err := f.client.GetLanguage(ctx, p.LanguageID)
		if err != nil {
			return nil, err
		}
		name := lang.Name
		if name == "" {
			name = displayName(p.LanguageID)
			logger.Warnw("language without a name, using fallback", "languageId", p.LanguageID, "name", name)
		}
		entries = append(entries, models.ProgressEntry{LanguageProgress: p, Name: name})
	}
	return entries, nil
}

// displayName is the English name of a language tag, or the id itself when
// the tag is unknown.
func displayName(languageID string) string {
	tag, err := language.Parse(languageID)
	if err != nil {
		return languageID
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return languageID
}
