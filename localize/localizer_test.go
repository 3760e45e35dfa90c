package localize

import (
	"os"
	"strings"
	"testing"
)

func Test_CreateLocalizerBundle(t *testing.T) {
	localizer, err := NewI18nLocalizer()
	if err != nil || localizer == nil {
		t.Fatalf("Failed to create bundle: %v", err)
	}
}

func Test_GetLocalizedPart(t *testing.T) {
	localizer, err := NewI18nLocalizer()
	if localizer == nil {
		t.Fatalf("Failed to create bundle: %v", err)
	}

	data := map[string]interface{}{"Count": 2, "Expected": 3}
	english, err := localizer.Localize("MissingArguments", "en", data)
	if err != nil {
		t.Fatalf("Failed to localize: %v", err)
	}
	if !strings.HasPrefix(english, "Please provide the Crowdin API token") || !strings.Contains(english, "2 of 3 arguments") {
		t.Fatalf("Wrong localized content, found %s", english)
	}

	french, err := localizer.Localize("MissingArguments", "fr-FR", data)
	if err != nil {
		t.Fatalf("Failed to localize: %v", err)
	}
	if !strings.HasPrefix(french, "Veuillez fournir") {
		t.Fatalf("Wrong french content, found %s", french)
	}

	fallback, _ := localizer.Localize("UploadWorkflowShort", "ja", nil)
	if fallback != "Convert the options of a core and push them to Crowdin" {
		t.Fatalf("Unknown locales should fall back to english, found %s", fallback)
	}

	missing, err := localizer.Localize("wrongKey", "en", nil)
	if err == nil {
		t.Fatalf("Localization should have failed when called with a wrong key")
	}
	if missing != "<< Cannot find translation for item wrongKey >>" {
		t.Fatalf("Unexpected placeholder %s", missing)
	}
}

func Test_EveryLocaleHasEveryMessage(t *testing.T) {
	localizer, err := NewI18nLocalizer()
	if err != nil {
		t.Fatalf("Failed to create bundle: %v", err)
	}
	english, err := localeFS.ReadFile("locales/en.yaml")
	if err != nil {
		t.Fatal(err)
	}

	for _, line := range strings.Split(string(english), "\n") {
		key, _, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		msg, err := localizer.Localize(key, "fr", map[string]interface{}{"Count": 0, "Expected": 3, "Config": "c", "Output": "o"})
		if err != nil {
			t.Errorf("Message %s: %v", key, err)
			continue
		}
		english, _ := localizer.Localize(key, "en", map[string]interface{}{"Count": 0, "Expected": 3, "Config": "c", "Output": "o"})
		if msg == english {
			t.Errorf("Message %s is not translated in french", key)
		}
	}
}

func Test_LocaleFromEnv(t *testing.T) {
	tests := []struct {
		LcAll    string
		Lang     string
		Expected string
	}{
		{"", "", DefaultLocale},
		{"", "fr_FR.UTF-8", "fr-FR"},
		{"de_DE@euro", "fr_FR.UTF-8", "de-DE"},
		{"", "C", DefaultLocale},
		{"", "POSIX", DefaultLocale},
		{"", "C.UTF-8", DefaultLocale},
		{"", "pt_BR", "pt-BR"},
		{"", "!!", DefaultLocale},
	}

	for _, test := range tests {
		t.Setenv("LC_ALL", test.LcAll)
		t.Setenv("LC_MESSAGES", "")
		t.Setenv("LANG", test.Lang)
		if test.LcAll == "" {
			os.Unsetenv("LC_ALL")
		}
		if locale := LocaleFromEnv(); locale != test.Expected {
			t.Errorf("LC_ALL=%q LANG=%q expected %s but got %s", test.LcAll, test.Lang, test.Expected, locale)
		}
	}
}

func Test_MockLocalizer(t *testing.T) {
	localizer := NewMockLocalizer(map[string]string{"MissingArguments": "missing"})
	if msg := Message(localizer, "MissingArguments", "en", nil); msg != "missing" {
		t.Errorf("Unexpected message %s", msg)
	}
	if _, err := localizer.Localize("other", "en", nil); err == nil {
		t.Errorf("Unknown keys should fail")
	}
}
