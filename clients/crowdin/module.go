package crowdin

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/libretro/crowdin-progress/infrastructure"
)

func clientProvider(config infrastructure.Config, httpClient *http.Client) (ClientInterface, error) {
	credentials, err := config.Credentials()
	if err != nil {
		return nil, err
	}
	return NewCrowdinClientBuilder().
		WithHost(config.BaseURL).
		WithToken(credentials.APIToken).
		WithHTTPClient(httpClient).
		Build(), nil
}

// Module provides a ClientInterface built from the loaded configuration.
var Module = fx.Options(fx.Provide(clientProvider))
