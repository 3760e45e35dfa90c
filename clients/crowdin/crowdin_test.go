package crowdin

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/libretro/crowdin-progress/models"
	"github.com/libretro/crowdin-progress/testutil"
)

const (
	testToken     = "a.b.c"
	testProjectID = "380544"
)

func buildServer(t *testing.T) *testutil.FakeCrowdin {
	return testutil.NewFakeCrowdin(t, testutil.FakeProject{
		Token:     testToken,
		ProjectID: testProjectID,
		BranchIDs: []string{`12`, `"13"`},
		Progress: []models.LanguageProgress{
			{LanguageID: "es-ES", TranslationProgress: 87, ApprovalProgress: 42},
			{LanguageID: "fr", TranslationProgress: 100, ApprovalProgress: 3},
		},
		Languages: map[string]string{
			"es-ES": "Spanish",
			"fr":    "French",
		},
	})
}

func TestListBranches(t *testing.T) {
	srvr := buildServer(t)
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken(testToken).
		Build()

	branches, err := crowdinClient.ListBranches(context.Background(), testProjectID)
	if err != nil {
		t.Fatalf("Failed ListBranches with error[%v]", err)
	}
	if len(branches) != 2 {
		t.Fatalf("Failed ListBranches returned %v elements expected %v", len(branches), 2)
	}
	if branches[0].ID != "12" || branches[1].ID != "13" {
		t.Errorf("Failed ListBranches wrong ids returned: %v", branches)
	}
	if branches[0].ProjectID != testProjectID {
		t.Errorf("Failed ListBranches wrong project id returned: %v", branches[0])
	}

	requests := srvr.Requests()
	if len(requests) != 1 || requests[0] != "/api/v2/projects/380544/branches" {
		t.Errorf("Unexpected requests %v", requests)
	}
}

func TestListLanguagesProgress(t *testing.T) {
	srvr := buildServer(t)
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken(testToken).
		Build()

	progress, err := crowdinClient.ListLanguagesProgress(context.Background(), testProjectID, "12", ProgressPageLimit)
	if err != nil {
		t.Fatalf("Failed ListLanguagesProgress with error[%v]", err)
	}
	if len(progress) != 2 {
		t.Fatalf("Failed ListLanguagesProgress returned %v elements expected %v", len(progress), 2)
	}
	expected := models.LanguageProgress{LanguageID: "es-ES", TranslationProgress: 87, ApprovalProgress: 42}
	if progress[0] != expected {
		t.Errorf("Failed ListLanguagesProgress wrong data returned, first element: %v", progress[0])
	}
	if progress[1].LanguageID != "fr" {
		t.Errorf("Failed ListLanguagesProgress order not preserved, second element: %v", progress[1])
	}

	requests := srvr.Requests()
	if len(requests) != 1 || requests[0] != "/api/v2/projects/380544/branches/12/languages/progress?limit=100" {
		t.Errorf("Unexpected requests %v", requests)
	}
}

func TestGetLanguage(t *testing.T) {
	srvr := buildServer(t)
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken(testToken).
		Build()

	language, err := crowdinClient.GetLanguage(context.Background(), "es-ES")
	if err != nil {
		t.Fatalf("Failed GetLanguage with error[%v]", err)
	}
	if language.ID != "es-ES" || language.Name != "Spanish" {
		t.Errorf("Failed GetLanguage wrong data returned: %v", language)
	}

	_, err = crowdinClient.GetLanguage(context.Background(), "xx")
	if err == nil {
		t.Fatalf("Failed GetLanguage should have returned an error for an unknown language")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Errorf("Failed GetLanguage should have returned a 404 status error, got [%v]", err)
	}
	if !errors.Is(err, models.ErrNetwork) {
		t.Errorf("Failed GetLanguage error should be a network error, got [%v]", err)
	}
}

func TestWrongToken(t *testing.T) {
	srvr := buildServer(t)
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken("wrong").
		Build()

	_, err := crowdinClient.ListBranches(context.Background(), testProjectID)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Code != http.StatusUnauthorized {
		t.Errorf("Failed ListBranches should have returned a 401 status error, got [%v]", err)
	}
}

func TestMalformedResponses(t *testing.T) {
	srvr := testutil.NewFakeCrowdin(t, testutil.FakeProject{
		Token:     testToken,
		ProjectID: testProjectID,
		BranchIDs: []string{`12`},
		RawBodies: map[string]string{
			"/api/v2/projects/380544/branches":                      `{"data": [`,
			"/api/v2/projects/380544/branches/12/languages/progress": `{"data": [{"data": {"languageId": "de", "translationProgress": 140, "approvalProgress": 0}}]}`,
		},
		FailPaths: map[string]int{
			"/api/v2/languages/de": http.StatusInternalServerError,
		},
	})
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken(testToken).
		Build()

	_, err := crowdinClient.ListBranches(context.Background(), testProjectID)
	if err == nil || !strings.Contains(err.Error(), "error parsing JSON results") {
		t.Errorf("Failed ListBranches should have thrown a JSON parsing error but did not: %v", err)
	}

	_, err = crowdinClient.ListLanguagesProgress(context.Background(), testProjectID, "12", ProgressPageLimit)
	if err == nil || !errors.Is(err, models.ErrNetwork) || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("Failed ListLanguagesProgress should have rejected an out of range value: %v", err)
	}

	_, err = crowdinClient.GetLanguage(context.Background(), "de")
	if err == nil || !strings.Contains(err.Error(), "unknown response code 500") {
		t.Errorf("Failed GetLanguage should have thrown an unknown response code error: %v", err)
	}
}

func TestEmptySegment(t *testing.T) {
	srvr := buildServer(t)
	crowdinClient := NewCrowdinClientBuilder().
		WithHost(srvr.BaseURL()).
		WithToken(testToken).
		Build()

	if _, err := crowdinClient.ListBranches(context.Background(), ""); err == nil {
		t.Errorf("Failed ListBranches should refuse an empty project id")
	}
	if len(srvr.Requests()) != 0 {
		t.Errorf("No request should reach the server, got %v", srvr.Requests())
	}
}

func TestBuildRequiresToken(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Build should panic without a token")
		}
	}()
	NewCrowdinClientBuilder().Build()
}

func TestBuildDefaultHost(t *testing.T) {
	crowdinClient := NewCrowdinClientBuilder().WithToken(testToken).Build()
	if crowdinClient.host != DefaultHost {
		t.Errorf("Expected default host [%s] but got [%s]", DefaultHost, crowdinClient.host)
	}
	if crowdinClient.httpClient != http.DefaultClient {
		t.Errorf("Expected the default http client")
	}
}

func TestBuildAddsAPIPath(t *testing.T) {
	tests := []struct {
		Host     string
		Expected string
	}{
		{"https://api.crowdin.com", "https://api.crowdin.com/api/v2"},
		{"https://libretro.api.crowdin.com/", "https://libretro.api.crowdin.com/api/v2"},
		{"https://api.crowdin.com/api/v2", "https://api.crowdin.com/api/v2"},
		{"http://127.0.0.1:8080/custom", "http://127.0.0.1:8080/custom"},
	}
	for _, test := range tests {
		crowdinClient := NewCrowdinClientBuilder().WithHost(test.Host).WithToken(testToken).Build()
		if crowdinClient.host != test.Expected {
			t.Errorf("Host [%s] expected [%s] but got [%s]", test.Host, test.Expected, crowdinClient.host)
		}
	}
}
